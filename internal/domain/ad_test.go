package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAdStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AdStatus
	}{
		{name: "ativo em português", raw: "ativo", want: AdStatusActive},
		{name: "active em inglês", raw: "active", want: AdStatusActive},
		{name: "inativo em português", raw: "inativo", want: AdStatusInactive},
		{name: "inactive em inglês", raw: "inactive", want: AdStatusInactive},
		{name: "paused legado mapeia para inactive", raw: "paused", want: AdStatusInactive},
		{name: "vendido em português", raw: "vendido", want: AdStatusSold},
		{name: "sold em inglês", raw: "sold", want: AdStatusSold},
		{name: "comprado", raw: "comprado", want: AdStatusBought},
		{name: "pendente em português", raw: "pendente", want: AdStatusPending},
		{name: "pending em inglês", raw: "pending", want: AdStatusPending},
		{name: "rejeitado em português", raw: "rejeitado", want: AdStatusRejected},
		{name: "rejected em inglês", raw: "rejected", want: AdStatusRejected},
		{name: "maiúsculas são normalizadas", raw: "ATIVO", want: AdStatusActive},
		{name: "espaços ao redor são ignorados", raw: "  vendido  ", want: AdStatusSold},
		{name: "valor desconhecido cai em pending", raw: "em análise", want: AdStatusPending},
		{name: "string vazia cai em pending", raw: "", want: AdStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAdStatus(tt.raw))
		})
	}
}

func TestAdStatusBackingValue(t *testing.T) {
	tests := []struct {
		status AdStatus
		want   string
	}{
		{AdStatusActive, "ativo"},
		{AdStatusInactive, "inativo"},
		{AdStatusSold, "vendido"},
		{AdStatusBought, "comprado"},
		{AdStatusPending, "pendente"},
		{AdStatusRejected, "rejeitado"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.BackingValue())
		})
	}
}

// Todo valor bruto conhecido deve sobreviver a uma ida e volta pelo par
// normalização/valor canônico
func TestAdStatusRoundTrip(t *testing.T) {
	for raw := range statusByRawValue {
		normalized := NormalizeAdStatus(raw)
		assert.Equal(t, normalized, NormalizeAdStatus(normalized.BackingValue()), "valor bruto %q", raw)
	}
}

func TestParseCategory(t *testing.T) {
	for _, category := range Categories {
		parsed, err := ParseCategory(string(category))
		assert.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	_, err := ParseCategory("eletronicos")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// A comparação é sensível a maiúsculas: o segmento de rota chega em minúsculas
	_, err = ParseCategory("Veiculos")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
