package handler

import (
	"net/http"
	"time"

	"github.com/rbfernandes/classificados-api/internal/usecases/promoting"
	"github.com/rbfernandes/classificados-api/pkg/apiErrors"
)

// GetVisibleBanners resolve o conjunto de banners exibível agora para a
// categoria, já com a lista padrão aplicada quando não há promoção visível.
// Rota pública, consumida pelo carrossel do site.
func GetVisibleBanners(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		banners := service.VisibleBanners(category, time.Now())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(banners); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
