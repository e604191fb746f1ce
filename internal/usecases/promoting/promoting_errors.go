package promoting

import "errors"

// Erros específicos para o contexto de promoções
var (
	// Erros de validação de invariantes
	ErrInvalidDateRange = errors.New("data final deve ser posterior à data inicial")
	ErrCapacityExceeded = errors.New("limite de promoções ativas atingido")
	ErrAlreadyExpired   = errors.New("promoção com período já encerrado")

	// Erros de requisição
	ErrPromotionNotFound = errors.New("promoção não encontrada")
	ErrImageRequired     = errors.New("imagem da promoção é obrigatória")
	ErrInvalidDate       = errors.New("data em formato inválido")

	// Erros de persistência
	ErrLoadCollection = errors.New("erro ao carregar coleção de promoções")
)
