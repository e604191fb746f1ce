package promoting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rbfernandes/classificados-api/infrastructure/repository"
	"github.com/rbfernandes/classificados-api/internal/config"
	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/pkg/utils"
)

// PromotionManager gerencia as coleções de promoções das quatro categorias.
// A coleção em memória é a fonte de verdade durante a sessão; o banco é a
// cópia durável, sincronizada por escritas explícitas disparadas após cada
// mutação aceita.
type PromotionManager interface {
	Load(ctx context.Context) error
	List(category domain.Category) []domain.Promotion
	Create(ctx context.Context, category domain.Category, req *domain.CreatePromotionRequest) (*domain.Promotion, error)
	Update(ctx context.Context, category domain.Category, id string, req *domain.UpdatePromotionRequest) (*domain.Promotion, error)
	Delete(ctx context.Context, category domain.Category, id string) error
	ToggleActive(ctx context.Context, category domain.Category, id string) (*domain.Promotion, error)
	VisibleBanners(category domain.Category, now time.Time) []domain.Banner
	Flush(ctx context.Context) error
	ExpiredActive(now time.Time) map[domain.Category]int
}

type Service struct {
	repo repository.PromotionRepository
	cfg  config.Promotion

	mu         sync.Mutex
	byCategory map[domain.Category][]domain.Promotion
	dirty      map[domain.Category]bool

	persistWG sync.WaitGroup
	now       func() time.Time
}

func NewService(repo repository.PromotionRepository, cfg *config.Config) *Service {
	return &Service{
		repo:       repo,
		cfg:        cfg.Promotion,
		byCategory: make(map[domain.Category][]domain.Promotion),
		dirty:      make(map[domain.Category]bool),
		now:        time.Now,
	}
}

// Load carrega as coleções de todas as categorias do banco para a memória.
// Deve ser chamado uma vez na subida do processo.
func (s *Service) Load(ctx context.Context) error {
	loaded := make(map[domain.Category][]domain.Promotion, len(domain.Categories))

	for _, category := range domain.Categories {
		collection, err := s.repo.ListByCategory(ctx, category)
		if err != nil {
			return fmt.Errorf("%w: categoria %s: %v", ErrLoadCollection, category, err)
		}
		loaded[category] = collection
	}

	s.mu.Lock()
	s.byCategory = loaded
	s.dirty = make(map[domain.Category]bool)
	s.mu.Unlock()

	return nil
}

// List retorna uma cópia da coleção completa da categoria, na ordem de inserção
func (s *Service) List(category domain.Category) []domain.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(category)
}

func (s *Service) Create(ctx context.Context, category domain.Category, req *domain.CreatePromotionRequest) (*domain.Promotion, error) {
	if req.Image == "" {
		return nil, ErrImageRequired
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q", ErrInvalidDate, req.StartDate)
	}

	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrInvalidDate, req.EndDate)
	}

	if err := ValidateDateOrder(start, end); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.byCategory[category]
	now := s.now()

	if req.Active {
		if err := ValidateActivationCap(collection, "", s.cfg.MaxActive); err != nil {
			return nil, err
		}
		if err := ValidateNotExpired(end, now); err != nil {
			return nil, err
		}
	}

	id, err := utils.GeneratePromotionID(string(category))
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da promoção: %w", err)
	}

	order := len(collection)
	if req.Order != nil {
		order = *req.Order
	}

	link := req.Link
	if link == "" {
		link = s.cfg.DefaultLink
	}

	promotion := domain.Promotion{
		ID:        id,
		Category:  category,
		Image:     req.Image,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Link:      link,
		StartDate: start,
		EndDate:   end,
		Active:    req.Active,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.byCategory[category] = append(collection, promotion)
	s.markDirtyAndPersistLocked(category)

	return &promotion, nil
}

// Update aplica um patch em nível de campo sobre o registro existente e valida
// o estado candidato resultante da mesclagem. Em caso de rejeição, o registro
// armazenado permanece intocado.
func (s *Service) Update(ctx context.Context, category domain.Category, id string, req *domain.UpdatePromotionRequest) (*domain.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.byCategory[category]
	idx := indexByID(collection, id)
	if idx < 0 {
		return nil, ErrPromotionNotFound
	}

	candidate := collection[idx]

	if req.Image != nil {
		candidate.Image = *req.Image
	}
	if req.Title != nil {
		candidate.Title = *req.Title
	}
	if req.Subtitle != nil {
		candidate.Subtitle = *req.Subtitle
	}
	if req.Link != nil {
		candidate.Link = *req.Link
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date %q", ErrInvalidDate, *req.StartDate)
		}
		candidate.StartDate = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date %q", ErrInvalidDate, *req.EndDate)
		}
		candidate.EndDate = end
	}
	if req.Active != nil {
		candidate.Active = *req.Active
	}
	if req.Order != nil {
		candidate.Order = *req.Order
	}

	if err := ValidateDateOrder(candidate.StartDate, candidate.EndDate); err != nil {
		return nil, err
	}

	now := s.now()

	if candidate.Active {
		if err := ValidateActivationCap(collection, id, s.cfg.MaxActive); err != nil {
			return nil, err
		}
		// A checagem de expiração só se aplica quando a flag está sendo ligada
		if !collection[idx].Active {
			if err := ValidateNotExpired(candidate.EndDate, now); err != nil {
				return nil, err
			}
		}
	}

	candidate.UpdatedAt = now
	collection[idx] = candidate
	s.markDirtyAndPersistLocked(category)

	return &candidate, nil
}

// Delete remove o registro de forma definitiva; a exclusão nunca viola as
// invariantes e por isso não passa pelo validador
func (s *Service) Delete(ctx context.Context, category domain.Category, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.byCategory[category]
	idx := indexByID(collection, id)
	if idx < 0 {
		return ErrPromotionNotFound
	}

	s.byCategory[category] = append(collection[:idx], collection[idx+1:]...)
	s.markDirtyAndPersistLocked(category)

	return nil
}

func (s *Service) ToggleActive(ctx context.Context, category domain.Category, id string) (*domain.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.byCategory[category]
	idx := indexByID(collection, id)
	if idx < 0 {
		return nil, ErrPromotionNotFound
	}

	promotion := collection[idx]

	// Desligar é sempre permitido; ligar passa pelo limite e pela expiração
	if !promotion.Active {
		if err := ValidateActivationCap(collection, id, s.cfg.MaxActive); err != nil {
			return nil, err
		}
		if err := ValidateNotExpired(promotion.EndDate, s.now()); err != nil {
			return nil, err
		}
	}

	promotion.Active = !promotion.Active
	promotion.UpdatedAt = s.now()
	collection[idx] = promotion
	s.markDirtyAndPersistLocked(category)

	return &promotion, nil
}

// VisibleBanners resolve o conjunto visível da categoria para o instante
// informado e aplica a lista padrão quando o resultado é vazio
func (s *Service) VisibleBanners(category domain.Category, now time.Time) []domain.Banner {
	s.mu.Lock()
	collection := s.snapshotLocked(category)
	s.mu.Unlock()

	return withFallback(category, resolveVisible(collection, now, s.cfg.CTALabel))
}

// Flush grava de forma síncrona todas as coleções com mutações pendentes.
// Usado pelo agendador de sincronização como rede de segurança para as
// escritas assíncronas que falharam silenciosamente.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := make(map[domain.Category][]domain.Promotion)
	for category, isDirty := range s.dirty {
		if isDirty {
			pending[category] = s.snapshotLocked(category)
		}
	}
	s.mu.Unlock()

	for category, collection := range pending {
		if err := s.repo.ReplaceCollection(ctx, category, collection); err != nil {
			return fmt.Errorf("erro ao gravar coleção da categoria %s: %w", category, err)
		}

		s.mu.Lock()
		s.dirty[category] = false
		s.mu.Unlock()
	}

	return nil
}

// ExpiredActive conta, por categoria, os registros que continuam com
// active=true mas cuja janela de exibição já terminou. Nenhuma mutação
// automática é feita sobre eles; o resolver apenas os ignora.
func (s *Service) ExpiredActive(now time.Time) map[domain.Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.Category]int)
	for _, category := range domain.Categories {
		for _, p := range s.byCategory[category] {
			if p.Active && utils.EndOfDay(p.EndDate).Before(utils.StartOfDay(now)) {
				counts[category]++
			}
		}
	}

	return counts
}

func (s *Service) snapshotLocked(category domain.Category) []domain.Promotion {
	collection := s.byCategory[category]
	out := make([]domain.Promotion, len(collection))
	copy(out, collection)
	return out
}

// markDirtyAndPersistLocked dispara a escrita durável da coleção em segundo
// plano. A escrita é fire-and-forget: falhas são apenas logadas e o estado em
// memória segue autoritativo pelo resto da sessão.
func (s *Service) markDirtyAndPersistLocked(category domain.Category) {
	s.dirty[category] = true
	snapshot := s.snapshotLocked(category)

	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()

		if err := s.repo.ReplaceCollection(context.Background(), category, snapshot); err != nil {
			logrus.WithError(err).WithField("category", category).
				Error("Falha ao persistir coleção de promoções")
			return
		}

		s.mu.Lock()
		s.dirty[category] = false
		s.mu.Unlock()
	}()
}

func indexByID(collection []domain.Promotion, id string) int {
	for i, p := range collection {
		if p.ID == id {
			return i
		}
	}
	return -1
}
