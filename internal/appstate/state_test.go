package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func TestAppState_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(repo repository.StateRepository)
		seed     bool
		validate func(t *testing.T, s *Snapshot)
	}{
		{
			name: "sem estado gravado e com seed carrega o cliente de demonstração",
			seed: true,
			validate: func(t *testing.T, s *Snapshot) {
				require.Len(t, s.Clients, 1)
				assert.Equal(t, "client-001", s.Clients[0].ID)
				assert.Equal(t, "client-001", s.SelectedClientID)
				assert.False(t, s.Session.IsLoggedIn)
				assert.Equal(t, domain.RoleClient, s.Session.UserRole)
				assert.Equal(t, domain.DefaultSettings(), s.Settings)
			},
		},
		{
			name: "sem estado gravado e sem seed começa vazio",
			validate: func(t *testing.T, s *Snapshot) {
				assert.Empty(t, s.Clients)
				assert.Empty(t, s.SelectedClientID)
				assert.Nil(t, s.SelectedClient())
			},
		},
		{
			name: "estado gravado tem precedência sobre o seed",
			seed: true,
			setup: func(repo repository.StateRepository) {
				settings := domain.DefaultSettings()
				settings.DefaultCurrency = "EUR"
				client := demoClient()
				client.ID = "client-777"
				state := domain.DashboardState{Clients: []*domain.ClientProfile{client}, IsLoggedIn: true, UserRole: domain.RoleAdmin}
				require.NoError(t, repo.SaveSnapshot(ctx, state, settings))
			},
			validate: func(t *testing.T, s *Snapshot) {
				require.Len(t, s.Clients, 1)
				assert.Equal(t, "client-777", s.Clients[0].ID)
				assert.True(t, s.Session.IsLoggedIn)
				assert.Equal(t, domain.RoleAdmin, s.Session.UserRole)
				assert.Equal(t, "EUR", s.Settings.DefaultCurrency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewStateRepository(kvstore.NewMemoryStore())
			if tt.setup != nil {
				tt.setup(repo)
			}

			state := New(repo, WithDemoSeed(tt.seed))
			require.NoError(t, state.Load(ctx))

			tt.validate(t, state.Snapshot())
		})
	}
}

func TestAppState_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStateRepository(ctrl)
	repo.EXPECT().LoadDashboardState(gomock.Any()).Return(nil, errors.New("corrompido"))

	err := New(repo).Load(context.Background())
	assert.Error(t, err)
}

func TestAppState_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("mutação bem sucedida é persistida e visível em nova carga", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		repo := repository.NewStateRepository(store)
		state := New(repo, WithDemoSeed(true))
		require.NoError(t, state.Load(ctx))

		updated, err := state.Mutate(ctx, func(draft *Snapshot) error {
			draft.Clients[0].KYC.CompanyName = "Emaar Hospitality"
			draft.Session.IsLoggedIn = true
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Emaar Hospitality", updated.Clients[0].KYC.CompanyName)

		reloaded := New(repository.NewStateRepository(store))
		require.NoError(t, reloaded.Load(ctx))
		assert.Equal(t, "Emaar Hospitality", reloaded.Snapshot().Clients[0].KYC.CompanyName)
		assert.True(t, reloaded.Snapshot().Session.IsLoggedIn)
	})

	t.Run("erro na função descarta o rascunho", func(t *testing.T) {
		state := New(repository.NewStateRepository(kvstore.NewMemoryStore()), WithDemoSeed(true))
		require.NoError(t, state.Load(ctx))

		_, err := state.Mutate(ctx, func(draft *Snapshot) error {
			draft.Clients[0].KYC.CompanyName = "rascunho"
			return errors.New("inválido")
		})
		require.Error(t, err)
		assert.Equal(t, "Emaar Properties", state.Snapshot().Clients[0].KYC.CompanyName)
	})

	t.Run("falha de persistência não desfaz a mutação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStateRepository(ctrl)
		repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("quota excedida"))

		state := New(repo)
		_, err := state.Mutate(ctx, func(draft *Snapshot) error {
			draft.Settings.DefaultCurrency = "GBP"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "GBP", state.Snapshot().Settings.DefaultCurrency)
	})

	t.Run("snapshot retornado não compartilha memória com o estado", func(t *testing.T) {
		state := New(repository.NewStateRepository(kvstore.NewMemoryStore()), WithDemoSeed(true))
		require.NoError(t, state.Load(ctx))

		snapshot := state.Snapshot()
		snapshot.Clients[0].Data.Rankings[0].Keyword = "alterado"

		assert.NotEqual(t, "alterado", state.Snapshot().Clients[0].Data.Rankings[0].Keyword)
	})
}

func TestAppState_RememberUsername(t *testing.T) {
	ctx := context.Background()
	state := New(repository.NewStateRepository(kvstore.NewMemoryStore()))

	state.RememberUsername(ctx, "ahmed", true)
	assert.Equal(t, "ahmed", state.RememberedUsername(ctx))

	state.RememberUsername(ctx, "ahmed", false)
	assert.Empty(t, state.RememberedUsername(ctx))
}

func TestSnapshot_SelectedClient(t *testing.T) {
	first := demoClient()
	second := demoClient()
	second.ID = "client-002"

	s := &Snapshot{Clients: []*domain.ClientProfile{first, second}, SelectedClientID: "client-002"}
	assert.Equal(t, "client-002", s.SelectedClient().ID)

	s.SelectedClientID = "removido"
	assert.Equal(t, "client-001", s.SelectedClient().ID)
}

func TestDemoClients(t *testing.T) {
	client := DemoClients()[0]

	assert.Len(t, client.Data.Rankings, demoRankingCount)
	assert.Len(t, client.Data.OtherKPIs, 20)
	assert.ElementsMatch(t, domain.AllServices, client.AssignedServices)
	assert.Equal(t, domain.KpiStatusBehind, client.Data.KPIs[0].Status)
	assert.Equal(t, domain.KpiStatusAtRisk, client.Data.KPIs[1].Status)
	for _, r := range client.Data.Rankings {
		assert.Equal(t, r.PreviousRank-r.CurrentRank, r.Change)
	}
}
