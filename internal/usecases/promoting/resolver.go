package promoting

import (
	"sort"
	"time"

	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/pkg/utils"
)

// resolveVisible calcula o subconjunto de promoções exibível no momento `now`.
// A janela de exibição é inclusiva em nível de dia nas duas pontas: a promoção
// aparece durante todo o dia da data inicial e todo o dia da data final,
// independente do horário. O resultado é recalculado a cada chamada; nada é
// cacheado e promoções expiradas nunca são mutadas aqui.
func resolveVisible(collection []domain.Promotion, now time.Time, ctaLabel string) []domain.Banner {
	today := utils.StartOfDay(now)

	visible := make([]domain.Promotion, 0, len(collection))
	for _, p := range collection {
		if !p.Active {
			continue
		}
		if today.Before(utils.StartOfDay(p.StartDate)) {
			continue
		}
		if today.After(utils.EndOfDay(p.EndDate)) {
			continue
		}
		visible = append(visible, p)
	}

	// Ordenação estável: empates em Order preservam a ordem da coleção
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	banners := make([]domain.Banner, 0, len(visible))
	for _, p := range visible {
		banners = append(banners, domain.Banner{
			ID:       p.ID,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Image:    p.Image,
			CTALabel: ctaLabel,
			Link:     p.Link,
		})
	}

	return banners
}
