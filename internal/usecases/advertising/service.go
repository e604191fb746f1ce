package advertising

import (
	"context"

	"github.com/rbfernandes/classificados-api/infrastructure/repository"
	"github.com/rbfernandes/classificados-api/internal/domain"
)

// AdService expõe a listagem de anúncios para o painel, traduzindo os valores
// livres da coluna de status para a enumeração fechada do cliente
type AdService interface {
	ListAds(ctx context.Context, filters repository.AdFilters) ([]domain.AdResponse, error)
	Summary(ctx context.Context) (*domain.AdSummary, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) AdService {
	return &Service{
		adRepo: adRepo,
	}
}

func (s *Service) ListAds(ctx context.Context, filters repository.AdFilters) ([]domain.AdResponse, error) {
	ads, err := s.adRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.AdResponse, 0, len(ads))
	for _, ad := range ads {
		responses = append(responses, domain.AdResponse{
			ID:        ad.ID,
			Category:  ad.Category,
			Title:     ad.Title,
			Price:     ad.Price,
			OwnerID:   ad.OwnerID,
			Status:    domain.NormalizeAdStatus(ad.RawStatus),
			CreatedAt: ad.CreatedAt,
			UpdatedAt: ad.UpdatedAt,
		})
	}

	return responses, nil
}

// Summary agrega as contagens brutas do banco sob o status normalizado;
// valores desconhecidos somam em pending, seguindo a política de moderação
func (s *Service) Summary(ctx context.Context) (*domain.AdSummary, error) {
	rawCounts, err := s.adRepo.CountByRawStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.AdSummary{
		ByStatus: make(map[domain.AdStatus]int),
	}

	for rawStatus, count := range rawCounts {
		summary.ByStatus[domain.NormalizeAdStatus(rawStatus)] += count
		summary.Total += count
	}

	return summary, nil
}
