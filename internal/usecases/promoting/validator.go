package promoting

import (
	"time"

	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/pkg/utils"
)

// As três validações abaixo são funções puras: recebem tudo o que precisam
// por parâmetro e nunca tocam o banco. Elas rodam antes de qualquer mutação
// chegar à coleção; em caso de falha a mutação é abortada sem escrita parcial.

// ValidateDateOrder exige data final estritamente posterior à inicial
func ValidateDateOrder(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateActivationCap conta as promoções ativas da coleção, ignorando a que
// está sendo editada, e rejeita a ativação quando o limite já foi atingido
func ValidateActivationCap(existing []domain.Promotion, excludingID string, maxActive int) error {
	active := 0
	for _, p := range existing {
		if p.ID == excludingID {
			continue
		}
		if p.Active {
			active++
		}
	}

	if active >= maxActive {
		return ErrCapacityExceeded
	}
	return nil
}

// ValidateNotExpired rejeita a ativação de uma promoção cujo último dia de
// exibição já passou. A comparação é feita em granularidade de dia: o fim do
// dia da data final contra o início do dia atual.
func ValidateNotExpired(end, now time.Time) error {
	if utils.EndOfDay(end).Before(utils.StartOfDay(now)) {
		return ErrAlreadyExpired
	}
	return nil
}
