package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/internal/usecases/promoting"
	"github.com/rbfernandes/classificados-api/pkg/apiErrors"
	"github.com/rbfernandes/classificados-api/pkg/log"
)

// categoryFromRequest valida o segmento :category da rota
func categoryFromRequest(r *http.Request) (domain.Category, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("category")
	return domain.ParseCategory(raw)
}

// writePromotionError traduz as falhas de validação do motor de promoções
// para os códigos padronizados da API
func writePromotionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, promoting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrPromotionDateRange, "Data final deve ser posterior à data inicial", nil)

	case errors.Is(err, promoting.ErrCapacityExceeded):
		apiErrors.WriteError(w, apiErrors.ErrPromotionCapacity, "Limite de promoções ativas da categoria atingido", nil)

	case errors.Is(err, promoting.ErrAlreadyExpired):
		apiErrors.WriteError(w, apiErrors.ErrPromotionExpired, "Não é possível ativar uma promoção com período encerrado", nil)

	case errors.Is(err, promoting.ErrPromotionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPromotionNotFound, "Promoção não encontrada", nil)

	case errors.Is(err, promoting.ErrImageRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Imagem da promoção é obrigatória", nil)

	case errors.Is(err, promoting.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido, use AAAA-MM-DD", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar promoção", nil)
	}
}

// ListPromotions retorna a coleção completa da categoria para o painel
func ListPromotions(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.List(category)); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreatePromotion(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		var req domain.CreatePromotionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		promotion, err := service.Create(r.Context(), category, &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao criar promoção")
			writePromotionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(promotion); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdatePromotion(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da promoção é obrigatório", nil)
			return
		}

		var req domain.UpdatePromotionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		promotion, err := service.Update(r.Context(), category, id, &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao atualizar promoção")
			writePromotionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(promotion); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeletePromotion(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.Delete(r.Context(), category, id); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao remover promoção")
			writePromotionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func TogglePromotion(service promoting.PromotionManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCategory, "Categoria desconhecida", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		promotion, err := service.ToggleActive(r.Context(), category, id)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao alternar ativação da promoção")
			writePromotionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(promotion); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
