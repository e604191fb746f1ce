package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbfernandes/classificados-api/internal/config"
	"github.com/rbfernandes/classificados-api/internal/domain"
	"github.com/rbfernandes/classificados-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// fakePromotionManager implementa promoting.PromotionManager com os dois
// métodos que o agendador exercita; o restante é inerte
type fakePromotionManager struct {
	flushCalls   int
	flushErr     error
	expiredCalls int
	expired      map[domain.Category]int
}

func (f *fakePromotionManager) Flush(ctx context.Context) error {
	f.flushCalls++
	return f.flushErr
}

func (f *fakePromotionManager) ExpiredActive(now time.Time) map[domain.Category]int {
	f.expiredCalls++
	return f.expired
}

func (f *fakePromotionManager) Load(ctx context.Context) error { return nil }
func (f *fakePromotionManager) List(category domain.Category) []domain.Promotion {
	return nil
}
func (f *fakePromotionManager) Create(ctx context.Context, category domain.Category, req *domain.CreatePromotionRequest) (*domain.Promotion, error) {
	return nil, nil
}
func (f *fakePromotionManager) Update(ctx context.Context, category domain.Category, id string, req *domain.UpdatePromotionRequest) (*domain.Promotion, error) {
	return nil, nil
}
func (f *fakePromotionManager) Delete(ctx context.Context, category domain.Category, id string) error {
	return nil
}
func (f *fakePromotionManager) ToggleActive(ctx context.Context, category domain.Category, id string) (*domain.Promotion, error) {
	return nil, nil
}
func (f *fakePromotionManager) VisibleBanners(category domain.Category, now time.Time) []domain.Banner {
	return nil
}

func newSyncService(manager *fakePromotionManager) *PromotionSyncService {
	return NewPromotionSyncService(manager, &config.Config{
		PromotionSync: config.PromotionSync{
			CronSchedule: "0 */6 * * *",
			Enabled:      true,
		},
	})
}

func TestPromotionSyncService_RunNow(t *testing.T) {
	manager := &fakePromotionManager{
		expired: map[domain.Category]int{domain.CategoryVehicles: 2},
	}
	service := newSyncService(manager)

	require.NoError(t, service.RunNow(context.Background()))

	assert.Equal(t, 1, manager.flushCalls)
	assert.Equal(t, 1, manager.expiredCalls)

	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.False(t, status.LastCompletedAt.Before(*status.LastStartedAt))
}

func TestPromotionSyncService_RunNow_FlushFailure(t *testing.T) {
	manager := &fakePromotionManager{flushErr: errors.New("banco indisponível")}
	service := newSyncService(manager)

	err := service.RunNow(context.Background())
	assert.Error(t, err)

	// A falha no Flush interrompe a execução antes do relatório de expiradas
	assert.Zero(t, manager.expiredCalls)

	// A execução seguinte não fica bloqueada pela flag de andamento
	manager.flushErr = nil
	require.NoError(t, service.RunNow(context.Background()))
	assert.Equal(t, 2, manager.flushCalls)
}

func TestPromotionSyncService_Status_BeforeFirstRun(t *testing.T) {
	service := newSyncService(&fakePromotionManager{})

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}
