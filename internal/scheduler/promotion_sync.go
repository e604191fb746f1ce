// Package scheduler contém os serviços de agendamento de sincronização
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rbfernandes/classificados-api/internal/config"
	"github.com/rbfernandes/classificados-api/internal/usecases/promoting"
)

type PromotionSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// SyncStatus descreve a execução do agendador para o endpoint de status
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// PromotionSyncService regrava periodicamente as coleções de promoções com
// mutações pendentes. As escritas disparadas pelas mutações são
// fire-and-forget; este agendador é a rede de segurança para as que falharam.
// Promoções expiradas mas ainda ativas são apenas reportadas, nunca mutadas.
type PromotionSyncService struct {
	scheduler    *gocron.Scheduler
	promoService promoting.PromotionManager
	config       PromotionSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPromotionSyncService(
	promoService promoting.PromotionManager,
	cfg *config.Config,
) *PromotionSyncService {
	syncConfig := PromotionSyncConfig{
		CronSchedule: cfg.PromotionSync.CronSchedule,
		Enabled:      cfg.PromotionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de sincronização de promoções carregada")

	return &PromotionSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		promoService: promoService,
		config:       syncConfig,
	}
}

func (s *PromotionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de sincronização de promoções desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de promoções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de promoções")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de promoções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de promoções")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma sincronização imediata; chamadas concorrentes são
// descartadas enquanto uma execução está em andamento
func (s *PromotionSyncService) RunNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de promoções já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de promoções")

	if err := s.promoService.Flush(ctx); err != nil {
		return err
	}

	s.reportExpiredActive()

	logrus.Info("Sincronização de promoções concluída")
	return nil
}

func (s *PromotionSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *PromotionSyncService) reportExpiredActive() {
	for category, count := range s.promoService.ExpiredActive(time.Now()) {
		if count > 0 {
			logrus.WithFields(logrus.Fields{
				"category": category,
				"count":    count,
			}).Warn("Promoções expiradas ainda marcadas como ativas")
		}
	}
}
