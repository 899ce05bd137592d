package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type ContractWatchConfig struct {
	CronSchedule string
	SyncEnabled  bool
	WarningDays  int
}

// ExpiringContract é um cliente com contrato vencido ou perto de vencer
type ExpiringContract struct {
	ClientID    string      `json:"clientId"`
	CompanyName string      `json:"companyName"`
	ExpiryDate  domain.Date `json:"expiryDate"`
	DaysLeft    int         `json:"daysLeft"`
	Expired     bool        `json:"expired"`
}

type ContractWatchService struct {
	scheduler           *gocron.Scheduler
	manager             managing.Manager
	config              ContractWatchConfig
	today               func() domain.Date
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          []ExpiringContract
}

func NewContractWatchService(manager managing.Manager, cfg *config.Config) *ContractWatchService {
	watchConfig := ContractWatchConfig{
		CronSchedule: cfg.ContractWatch.CronSchedule,
		SyncEnabled:  cfg.ContractWatch.Enabled,
		WarningDays:  cfg.ContractWatch.WarningDays,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"warning_days":  watchConfig.WarningDays,
	}).Info("Configuração do agendador de contratos carregada")

	return &ContractWatchService{
		scheduler:  gocron.NewScheduler(time.Local),
		manager:    manager,
		config:     watchConfig,
		today:      domain.Today,
		lastResult: []ExpiringContract{},
	}
}

func (s *ContractWatchService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron de verificação de contratos desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de verificação de contratos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.CheckContracts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de contratos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de verificação de contratos")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckContracts lista os contratos a vencer e registra um aviso para cada um
func (s *ContractWatchService) CheckContracts() []ExpiringContract {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Verificação de contratos já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	expiring := findExpiringContracts(s.manager.ListClients(), s.today(), s.config.WarningDays)
	for _, contract := range expiring {
		log.L.WithFields(log.Fields{
			"client_id":   contract.ClientID,
			"company":     contract.CompanyName,
			"expiry_date": contract.ExpiryDate.String(),
			"days_left":   contract.DaysLeft,
		}).Warn("Contrato de cliente vencido ou perto do vencimento")
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = expiring
	s.syncMutex.Unlock()

	log.L.WithField("expiring", len(expiring)).Info("Verificação de contratos concluída")

	return expiring
}

// findExpiringContracts ignora clientes sem data de vencimento; ordena pelo vencimento mais próximo
func findExpiringContracts(clients []*domain.ClientProfile, today domain.Date, warningDays int) []ExpiringContract {
	expiring := make([]ExpiringContract, 0)
	for _, client := range clients {
		expiry := client.KYC.ContractExpiryDate
		if expiry.IsZero() {
			continue
		}

		daysLeft := expiry.DaysUntil(today)
		if daysLeft > warningDays {
			continue
		}

		expiring = append(expiring, ExpiringContract{
			ClientID:    client.ID,
			CompanyName: client.KYC.CompanyName,
			ExpiryDate:  expiry,
			DaysLeft:    daysLeft,
			Expired:     daysLeft < 0,
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysLeft < expiring[j].DaysLeft
	})

	return expiring
}

// TriggerManualSync inicia manualmente uma verificação de contratos
func (s *ContractWatchService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Verificação de contratos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando verificação manual de contratos")
	go s.CheckContracts()
}

// GetStatus retorna o status atual do agendador
func (s *ContractWatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"warning_days":           s.config.WarningDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"expiring_contracts":     s.lastResult,
	}
}
