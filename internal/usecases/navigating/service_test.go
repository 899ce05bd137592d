package navigating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T, services []domain.ServiceTag) *Service {
	t.Helper()
	state := appstate.New(repository.NewStateRepository(kvstore.NewMemoryStore()), appstate.WithDemoSeed(true))
	require.NoError(t, state.Load(context.Background()))

	if services != nil {
		_, err := state.Mutate(context.Background(), func(draft *appstate.Snapshot) error {
			draft.Clients[0].AssignedServices = services
			return nil
		})
		require.NoError(t, err)
	}
	return NewService(state)
}

func tabIDs(entries []domain.TabEntry) []domain.Tab {
	ids := make([]domain.Tab, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestVisibleTabs(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.UserRole
		services []domain.ServiceTag
		want     []domain.Tab
	}{
		{
			name: "administrador vê as quatro seções fixas",
			role: domain.RoleAdmin,
			want: []domain.Tab{domain.TabAdminClients, domain.TabAdminSync, domain.TabAdminSetup, domain.TabAdminReportSetup},
		},
		{
			name:     "cliente com todos os serviços",
			role:     domain.RoleClient,
			services: domain.AllServices,
			want: []domain.Tab{
				domain.TabOverview, domain.TabRankings, domain.TabKPIs, domain.TabGoogle, domain.TabMeta,
				domain.TabOtherKPIs, domain.TabApprovals, domain.TabRoadmap, domain.TabReporting,
			},
		},
		{
			name:     "cliente sem serviços vê apenas abas livres",
			role:     domain.RoleClient,
			services: []domain.ServiceTag{},
			want:     []domain.Tab{domain.TabOverview, domain.TabReporting},
		},
		{
			name:     "ordem fixa independe da ordem dos serviços",
			role:     domain.RoleClient,
			services: []domain.ServiceTag{domain.ServiceRoadmap, domain.ServiceMeta},
			want:     []domain.Tab{domain.TabOverview, domain.TabMeta, domain.TabRoadmap, domain.TabReporting},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &domain.ClientProfile{AssignedServices: tt.services}
			assert.Equal(t, tt.want, tabIDs(VisibleTabs(tt.role, client)))
		})
	}
}

// todo serviço contratado expõe exatamente a aba que depende dele
func TestVisibleTabs_ServiceGating(t *testing.T) {
	for _, service := range domain.AllServices {
		t.Run(string(service), func(t *testing.T) {
			without := &domain.ClientProfile{AssignedServices: []domain.ServiceTag{}}
			with := &domain.ClientProfile{AssignedServices: []domain.ServiceTag{service}}

			for _, entry := range domain.ClientTabs {
				if entry.RequiredService != service {
					continue
				}
				assert.False(t, IsVisible(domain.RoleClient, without, entry.ID))
				assert.True(t, IsVisible(domain.RoleClient, with, entry.ID))
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	s := newTestService(t, nil)

	nav, err := s.Navigation(domain.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOverview, nav.DefaultTab)
	assert.Equal(t, []domain.Tab{domain.TabProfile}, tabIDs(nav.Secondary))
	assert.Len(t, nav.Primary, 9)

	nav, err = s.Navigation(domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.TabAdminClients, nav.DefaultTab)
	assert.Empty(t, nav.Secondary)

	_, err = s.Navigation("root")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		services []domain.ServiceTag
		request  ViewRequest
		wantTab  domain.Tab
		wantErr  error
		validate func(t *testing.T, view *View)
	}{
		{
			name:    "aba desconhecida do cliente cai na visão geral",
			request: ViewRequest{Role: domain.RoleClient, Tab: "inexistente"},
			wantTab: domain.TabOverview,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(OverviewView)
				assert.Equal(t, "Emaar Properties", content.CompanyName)
				assert.Equal(t, float64(4000), content.Summary.TotalAdSpend)
				assert.Equal(t, 1, content.Summary.PendingApprovals)
				require.NotNil(t, content.CurrentPhase)
				assert.Equal(t, "Aggressive Link Building", content.CurrentPhase.Title)
			},
		},
		{
			name:     "aba fora dos serviços cai na visão geral",
			services: []domain.ServiceTag{domain.ServiceMeta},
			request:  ViewRequest{Role: domain.RoleClient, Tab: domain.TabGoogle},
			wantTab:  domain.TabOverview,
		},
		{
			name:    "rankings paginados",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabRankings, Page: 2},
			wantTab: domain.TabRankings,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(RankingsView)
				assert.Equal(t, 2, content.Page)
				assert.Equal(t, 2, content.TotalPages)
				assert.Len(t, content.Rankings, 20)
				assert.Equal(t, "Strategic Property Keyword #31", content.Rankings[0].Keyword)
				assert.True(t, view.ShowPeriodPicker)
			},
		},
		{
			name:    "página acima do limite é ajustada",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabRankings, Page: 99},
			wantTab: domain.TabRankings,
			validate: func(t *testing.T, view *View) {
				assert.Equal(t, 2, view.Content.(RankingsView).Page)
			},
		},
		{
			name:    "outras kpis com porcentagem de conclusão",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabOtherKPIs},
			wantTab: domain.TabOtherKPIs,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(OtherKpisView)
				assert.Equal(t, 14, content.Completed)
				assert.Equal(t, 20, content.Total)
				assert.Equal(t, 70, content.CompletionPercentage)
			},
		},
		{
			name:    "aprovações sem seletor de período",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabApprovals},
			wantTab: domain.TabApprovals,
			validate: func(t *testing.T, view *View) {
				assert.False(t, view.ShowPeriodPicker)
				assert.Equal(t, 1, view.Content.(ApprovalsView).PendingCount)
			},
		},
		{
			name:    "relatório usa o período pedido",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabReporting, Period: domain.ReportingPeriod{Period: "Q1 2024"}},
			wantTab: domain.TabReporting,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(ReportingView)
				assert.Equal(t, "Q1 2024", content.Report.Period.Period)
				assert.Equal(t, "Previous Month", content.Report.Period.Compare)
			},
		},
		{
			name:    "perfil é acessível ao cliente",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabProfile},
			wantTab: domain.TabProfile,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(ProfileView)
				assert.False(t, content.Documents.TradeLicense)
				assert.Equal(t, "My Profile", view.Label)
			},
		},
		{
			name:    "cliente não acessa abas do administrador",
			request: ViewRequest{Role: domain.RoleClient, Tab: domain.TabAdminClients},
			wantTab: domain.TabOverview,
		},
		{
			name:    "administrador lista clientes",
			request: ViewRequest{Role: domain.RoleAdmin, Tab: domain.TabAdminClients},
			wantTab: domain.TabAdminClients,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(AdminClientsView)
				require.Len(t, content.Clients, 1)
				assert.True(t, content.Clients[0].Selected)
			},
		},
		{
			name:    "sincronização mostra contagem por tipo",
			request: ViewRequest{Role: domain.RoleAdmin, Tab: domain.TabAdminSync},
			wantTab: domain.TabAdminSync,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(DataSyncView)
				assert.Equal(t, 50, content.RowCounts[domain.DatasetRankings])
				assert.Equal(t, 1, content.RowCounts[domain.DatasetMeta])
			},
		},
		{
			name:    "montagem de relatório lista as seções",
			request: ViewRequest{Role: domain.RoleAdmin, Tab: domain.TabAdminReportSetup},
			wantTab: domain.TabAdminReportSetup,
			validate: func(t *testing.T, view *View) {
				content := view.Content.(ReportBuilderView)
				assert.Len(t, content.Sections, 5)
			},
		},
		{
			name:    "aba desconhecida do administrador é erro",
			request: ViewRequest{Role: domain.RoleAdmin, Tab: domain.TabOverview},
			wantErr: ErrUnknownTab,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.services)

			view, err := s.Dispatch(ctx, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTab, view.Tab)
			if tt.validate != nil {
				tt.validate(t, view)
			}
		})
	}
}

// o despacho nunca mostra conteúdo de uma aba que o menu esconde
func TestDispatch_AgreesWithMenu(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, []domain.ServiceTag{domain.ServiceKPIs, domain.ServiceApprovals})
	client := s.state.Snapshot().SelectedClient()

	for _, entry := range domain.ClientTabs {
		view, err := s.Dispatch(ctx, ViewRequest{Role: domain.RoleClient, Tab: entry.ID})
		require.NoError(t, err)
		if IsVisible(domain.RoleClient, client, entry.ID) {
			assert.Equal(t, entry.ID, view.Tab)
		} else {
			assert.Equal(t, domain.TabOverview, view.Tab)
		}
	}
}

func TestRankingsView_Empty(t *testing.T) {
	view := rankingsView(nil, 0)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Empty(t, view.Rankings)
}
