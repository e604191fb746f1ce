package handler

import (
	"net/http"

	"github.com/rbfernandes/classificados-api/internal/scheduler"
	"github.com/rbfernandes/classificados-api/pkg/apiErrors"
	"github.com/rbfernandes/classificados-api/pkg/log"
)

// RunPromotionSync dispara manualmente a sincronização de promoções
func RunPromotionSync(service *scheduler.PromotionSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.RunNow(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro na execução manual da sincronização de promoções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao sincronizar promoções", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetCronStatus retorna o estado atual do agendador de sincronização
func GetCronStatus(service *scheduler.PromotionSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
