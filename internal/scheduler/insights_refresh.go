// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type InsightsRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type InsightsRefreshService struct {
	scheduler           *gocron.Scheduler
	insighter           insighting.Insighter
	config              InsightsRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          domain.InsightRefresh
}

func NewInsightsRefreshService(insighter insighting.Insighter, cfg *config.Config) *InsightsRefreshService {
	refreshConfig := InsightsRefreshConfig{
		CronSchedule: cfg.InsightsRefresh.CronSchedule,
		SyncEnabled:  cfg.InsightsRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightsRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		insighter: insighter,
		config:    refreshConfig,
	}
}

func (s *InsightsRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron de atualização de insights desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de atualização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshInsights regenera o cache de insights de todos os clientes
func (s *InsightsRefreshService) RefreshInsights(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Atualização de insights já está em execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	log.L.Info("Iniciando atualização de insights")

	result := s.insighter.RefreshAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"clients":   result.Clients,
		"generated": result.Generated,
		"fallbacks": result.Fallbacks,
	}).Info("Atualização de insights concluída")
}

// TriggerManualSync inicia manualmente uma atualização de insights
func (s *InsightsRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Atualização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando atualização manual de insights")
	go s.RefreshInsights(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *InsightsRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
