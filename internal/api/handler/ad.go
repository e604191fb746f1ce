package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rbfernandes/classificados-api/infrastructure/repository"
	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/internal/usecases/advertising"
	"github.com/rbfernandes/classificados-api/pkg/apiErrors"
	"github.com/rbfernandes/classificados-api/pkg/log"
)

// ListAds lista os anúncios para o painel de moderação, com o status já
// traduzido para a enumeração do cliente
func ListAds(service advertising.AdService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := repository.AdFilters{}

		if rawCategory := r.URL.Query().Get("category"); rawCategory != "" {
			category, err := domain.ParseCategory(rawCategory)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
				return
			}
			filters.Category = &category
		}

		if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
			filters.RawStatuses = strings.Split(rawStatus, ",")
		}

		if rawOwner := r.URL.Query().Get("owner_id"); rawOwner != "" {
			ownerID, err := strconv.Atoi(rawOwner)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "owner_id deve ser numérico", nil)
				return
			}
			filters.OwnerID = &ownerID
		}

		ads, err := service.ListAds(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar anúncios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar anúncios no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ads); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetAdSummary retorna a contagem de anúncios por status normalizado
func GetAdSummary(service advertising.AdService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao resumir anúncios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar anúncios no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
