package repository

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Chaves do layout durável herdado do painel no navegador
const (
	DashboardStateKey = "aw_dashboard_state"
	AdminSettingsKey  = "aw_admin_settings"
	SavedUsernameKey  = "aw_saved_username"
)

//go:generate mockgen -source=state.go -destination=mocks/state.go -package=mocks
type StateRepository interface {
	// LoadDashboardState retorna nil, nil quando a entrada não existe
	LoadDashboardState(ctx context.Context) (*domain.DashboardState, error)
	LoadSettings(ctx context.Context) (*domain.AdminSettings, error)
	// SaveSnapshot regrava as duas entradas principais juntas
	SaveSnapshot(ctx context.Context, state domain.DashboardState, settings domain.AdminSettings) error
	LoadSavedUsername(ctx context.Context) (string, error)
	SaveUsername(ctx context.Context, username string) error
	ForgetUsername(ctx context.Context) error
}

type stateRepository struct {
	store kvstore.Store
}

func NewStateRepository(store kvstore.Store) StateRepository {
	return &stateRepository{store: store}
}

func (r *stateRepository) LoadDashboardState(ctx context.Context) (*domain.DashboardState, error) {
	state := &domain.DashboardState{}
	found, err := r.load(ctx, DashboardStateKey, state)
	if err != nil || !found {
		return nil, err
	}

	return state, nil
}

func (r *stateRepository) LoadSettings(ctx context.Context) (*domain.AdminSettings, error) {
	settings := &domain.AdminSettings{}
	found, err := r.load(ctx, AdminSettingsKey, settings)
	if err != nil || !found {
		return nil, err
	}

	return settings, nil
}

func (r *stateRepository) load(ctx context.Context, key string, target any) (bool, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao ler %s: %w", key, err)
	}

	if err := json.UnmarshalFromString(raw, target); err != nil {
		return false, fmt.Errorf("conteúdo inválido em %s: %w", key, err)
	}

	return true, nil
}

func (r *stateRepository) SaveSnapshot(ctx context.Context, state domain.DashboardState, settings domain.AdminSettings) error {
	rawState, err := json.MarshalToString(state)
	if err != nil {
		return fmt.Errorf("erro ao serializar %s: %w", DashboardStateKey, err)
	}

	rawSettings, err := json.MarshalToString(settings)
	if err != nil {
		return fmt.Errorf("erro ao serializar %s: %w", AdminSettingsKey, err)
	}

	return r.store.SetMany(ctx, map[string]string{
		DashboardStateKey: rawState,
		AdminSettingsKey:  rawSettings,
	})
}

func (r *stateRepository) LoadSavedUsername(ctx context.Context) (string, error) {
	username, err := r.store.Get(ctx, SavedUsernameKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return username, nil
}

func (r *stateRepository) SaveUsername(ctx context.Context, username string) error {
	return r.store.Set(ctx, SavedUsernameKey, username)
}

func (r *stateRepository) ForgetUsername(ctx context.Context) error {
	return r.store.Delete(ctx, SavedUsernameKey)
}
