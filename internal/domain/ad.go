package domain

import (
	"strings"
	"time"
)

// AdStatus é a enumeração fechada de status de anúncio usada pelo painel.
// A coluna de status do banco acumulou valores livres em português e inglês
// ao longo do tempo; NormalizeAdStatus faz a tradução para este conjunto.
type AdStatus string

const (
	AdStatusActive   AdStatus = "active"
	AdStatusInactive AdStatus = "inactive"
	AdStatusSold     AdStatus = "sold"
	AdStatusBought   AdStatus = "bought"
	AdStatusPending  AdStatus = "pending"
	AdStatusRejected AdStatus = "rejected"
)

// statusByRawValue mapeia os valores históricos observados na coluna de status
var statusByRawValue = map[string]AdStatus{
	"ativo":     AdStatusActive,
	"active":    AdStatusActive,
	"inativo":   AdStatusInactive,
	"inactive":  AdStatusInactive,
	"paused":    AdStatusInactive,
	"vendido":   AdStatusSold,
	"sold":      AdStatusSold,
	"comprado":  AdStatusBought,
	"pendente":  AdStatusPending,
	"pending":   AdStatusPending,
	"rejeitado": AdStatusRejected,
	"rejected":  AdStatusRejected,
}

// backingValueByStatus é o mapeamento reverso para o valor canônico persistido
var backingValueByStatus = map[AdStatus]string{
	AdStatusActive:   "ativo",
	AdStatusInactive: "inativo",
	AdStatusSold:     "vendido",
	AdStatusBought:   "comprado",
	AdStatusPending:  "pendente",
	AdStatusRejected: "rejeitado",
}

// NormalizeAdStatus traduz o valor bruto da coluna de status para a enumeração
// do painel. Valores não reconhecidos caem em Pending: um anúncio com status
// desconhecido é tratado como aguardando moderação, nunca como erro de dados.
func NormalizeAdStatus(raw string) AdStatus {
	if status, ok := statusByRawValue[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status
	}
	return AdStatusPending
}

// BackingValue retorna a string canônica gravada no banco para este status
func (s AdStatus) BackingValue() string {
	return backingValueByStatus[s]
}

// Ad é um anúncio do marketplace como retornado pelo banco, com o status
// ainda no valor bruto da coluna
type Ad struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	OwnerID   int       `json:"owner_id"`
	RawStatus string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdResponse é o anúncio com o status já normalizado para o painel
type AdResponse struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	OwnerID   int       `json:"owner_id"`
	Status    AdStatus  `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdSummary agrega a contagem de anúncios por status normalizado
type AdSummary struct {
	Total    int              `json:"total"`
	ByStatus map[AdStatus]int `json:"by_status"`
}
