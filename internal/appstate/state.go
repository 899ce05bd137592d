// Package appstate é o dono único do estado do console: clientes, sessão, configurações e cliente selecionado
package appstate

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/metrics"
)

const persistTimeout = 5 * time.Second

type AppState struct {
	mu       sync.RWMutex
	current  *Snapshot
	repo     repository.StateRepository
	seedDemo bool
}

type Option func(*AppState)

// WithDemoSeed popula o cliente de demonstração quando não há estado gravado
func WithDemoSeed(enabled bool) Option {
	return func(a *AppState) {
		a.seedDemo = enabled
	}
}

func New(repo repository.StateRepository, opts ...Option) *AppState {
	a := &AppState{
		repo: repo,
		current: &Snapshot{
			Clients:  []*domain.ClientProfile{},
			Session:  domain.Session{UserRole: domain.RoleClient},
			Settings: domain.DefaultSettings(),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reidrata o estado a partir do armazenamento; chamado uma vez na inicialização
func (a *AppState) Load(ctx context.Context) error {
	state, err := a.repo.LoadDashboardState(ctx)
	if err != nil {
		return err
	}

	settings, err := a.repo.LoadSettings(ctx)
	if err != nil {
		return err
	}

	next := &Snapshot{
		Clients:  []*domain.ClientProfile{},
		Session:  domain.Session{UserRole: domain.RoleClient},
		Settings: domain.DefaultSettings(),
	}

	switch {
	case state != nil:
		if state.Clients != nil {
			next.Clients = state.Clients
		}
		next.Session.IsLoggedIn = state.IsLoggedIn
		if state.UserRole.IsValid() {
			next.Session.UserRole = state.UserRole
		}
	case a.seedDemo:
		next.Clients = DemoClients()
		log.L.Info("Nenhum estado gravado, carregando cliente de demonstração")
	}

	if settings != nil {
		next.Settings = *settings
	}

	if len(next.Clients) > 0 {
		next.SelectedClientID = next.Clients[0].ID
	}

	a.mu.Lock()
	a.current = next
	a.mu.Unlock()

	log.L.WithFields(log.Fields{
		"client_count": len(next.Clients),
		"user_role":    next.Session.UserRole,
	}).Info("Estado do painel carregado")

	return nil
}

// Snapshot retorna uma cópia profunda do estado atual
func (a *AppState) Snapshot() *Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.current.Clone()
}

// Mutate aplica fn sobre uma cópia; só troca o estado (e persiste) se fn não retornar erro.
// Falhas de persistência são registradas e não desfazem a mutação.
func (a *AppState) Mutate(ctx context.Context, fn func(draft *Snapshot) error) (*Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	draft := a.current.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	a.current = draft
	a.persist(ctx, draft)

	return draft.Clone(), nil
}

func (a *AppState) persist(ctx context.Context, snapshot *Snapshot) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	err := a.repo.SaveSnapshot(ctx, snapshot.durable(), snapshot.Settings)
	metrics.PersistenceWrites.WithLabelValues(repository.DashboardStateKey, metrics.Result(err)).Inc()
	metrics.PersistenceWrites.WithLabelValues(repository.AdminSettingsKey, metrics.Result(err)).Inc()

	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao persistir estado do painel")
	}
}

// RememberUsername grava ou remove o usuário lembrado (terceira entrada, independente do snapshot)
func (a *AppState) RememberUsername(ctx context.Context, username string, remember bool) {
	var err error
	if remember {
		err = a.repo.SaveUsername(ctx, username)
	} else {
		err = a.repo.ForgetUsername(ctx)
	}

	metrics.PersistenceWrites.WithLabelValues(repository.SavedUsernameKey, metrics.Result(err)).Inc()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gravar usuário lembrado")
	}
}

func (a *AppState) RememberedUsername(ctx context.Context) string {
	username, err := a.repo.LoadSavedUsername(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao ler usuário lembrado")
		return ""
	}
	return username
}
