package promoting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rbfernandes/classificados-api/internal/domain"
)

func TestResolveVisible_DayBoundaries(t *testing.T) {
	// Janela de exibição: 1 a 3 de junho, inclusiva nas duas pontas
	collection := []domain.Promotion{
		{
			ID:        "promo-1",
			Active:    true,
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	tests := []struct {
		name        string
		now         time.Time
		wantVisible bool
	}{
		{
			name:        "Véspera do início - invisível",
			now:         time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC),
			wantVisible: false,
		},
		{
			name:        "Primeiro instante do dia inicial - visível",
			now:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantVisible: true,
		},
		{
			name:        "Meio da janela - visível",
			now:         time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC),
			wantVisible: true,
		},
		{
			name:        "Último instante do dia final - visível",
			now:         time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC),
			wantVisible: true,
		},
		{
			name:        "Dia seguinte ao final - invisível",
			now:         time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			wantVisible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			banners := resolveVisible(collection, tt.now, "Saiba mais")

			if tt.wantVisible {
				assert.Len(t, banners, 1)
				assert.Equal(t, "promo-1", banners[0].ID)
				return
			}
			assert.Empty(t, banners)
		})
	}
}

func TestResolveVisible_FiltersInactive(t *testing.T) {
	now := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	window := func(id string, active bool) domain.Promotion {
		return domain.Promotion{
			ID:        id,
			Active:    active,
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	banners := resolveVisible([]domain.Promotion{
		window("ativa", true),
		window("desligada", false),
	}, now, "Saiba mais")

	assert.Len(t, banners, 1)
	assert.Equal(t, "ativa", banners[0].ID)
}

func TestResolveVisible_StableOrder(t *testing.T) {
	now := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	item := func(id string, order int) domain.Promotion {
		return domain.Promotion{
			ID:        id,
			Active:    true,
			Order:     order,
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	// Empates em Order devem preservar a ordem de inserção da coleção
	banners := resolveVisible([]domain.Promotion{
		item("c", 2),
		item("a1", 1),
		item("a2", 1),
		item("b", 0),
	}, now, "Saiba mais")

	ids := make([]string, 0, len(banners))
	for _, b := range banners {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b", "a1", "a2", "c"}, ids)
}

func TestResolveVisible_BannerShape(t *testing.T) {
	now := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	banners := resolveVisible([]domain.Promotion{
		{
			ID:        "promo-1",
			Active:    true,
			Title:     "Semana do Imóvel",
			Subtitle:  "Descontos em destaque",
			Image:     "/banners/semana-imovel.webp",
			Link:      "https://classificados.app.br/imoveis",
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}, now, "Saiba mais")

	assert.Len(t, banners, 1)
	assert.Equal(t, domain.Banner{
		ID:       "promo-1",
		Title:    "Semana do Imóvel",
		Subtitle: "Descontos em destaque",
		Image:    "/banners/semana-imovel.webp",
		CTALabel: "Saiba mais",
		Link:     "https://classificados.app.br/imoveis",
	}, banners[0])
}

func TestWithFallback(t *testing.T) {
	resolved := []domain.Banner{{ID: "promo-1"}}

	t.Run("Resultado não vazio passa adiante sem modificação", func(t *testing.T) {
		out := withFallback(domain.CategoryVehicles, resolved)
		assert.Equal(t, resolved, out)
	})

	t.Run("Resultado vazio cai na lista padrão da categoria", func(t *testing.T) {
		out := withFallback(domain.CategoryVehicles, nil)

		assert.NotEmpty(t, out)
		assert.Equal(t, defaultBanners[domain.CategoryVehicles], out)
	})

	t.Run("Toda categoria tem lista padrão não vazia", func(t *testing.T) {
		for _, category := range domain.Categories {
			assert.NotEmpty(t, withFallback(category, nil), "categoria %s", category)
		}
	})

	t.Run("A lista padrão retornada é uma cópia", func(t *testing.T) {
		out := withFallback(domain.CategoryDashboard, nil)
		out[0].Title = "mutado"

		assert.NotEqual(t, "mutado", defaultBanners[domain.CategoryDashboard][0].Title)
	})
}
