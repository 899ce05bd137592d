package navigating

import (
	"context"

	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type Navigator interface {
	Navigation(role domain.UserRole) (Navigation, error)
	Dispatch(ctx context.Context, request ViewRequest) (*View, error)
}

type ViewRequest struct {
	Role   domain.UserRole
	Tab    domain.Tab
	Period domain.ReportingPeriod
	Page   int
}

// View é o conteúdo de uma aba; Tab é a aba efetivamente exibida (pode diferir da pedida)
type View struct {
	Tab              domain.Tab             `json:"tab"`
	Label            string                 `json:"label"`
	ShowPeriodPicker bool                   `json:"showPeriodPicker"`
	Period           domain.ReportingPeriod `json:"period"`
	Content          any                    `json:"content"`
}

type viewInput struct {
	snapshot *appstate.Snapshot
	client   *domain.ClientProfile
	period   domain.ReportingPeriod
	page     int
}

type producer func(in viewInput) any

type Service struct {
	state       *appstate.AppState
	clientViews map[domain.Tab]producer
	adminViews  map[domain.Tab]producer
}

func NewService(state *appstate.AppState) *Service {
	return &Service{
		state:       state,
		clientViews: clientRegistry(),
		adminViews:  adminRegistry(),
	}
}

func clientRegistry() map[domain.Tab]producer {
	return map[domain.Tab]producer{
		domain.TabOverview: func(in viewInput) any { return overviewView(in.client) },
		domain.TabRankings: func(in viewInput) any { return rankingsView(in.client.Data.Rankings, in.page) },
		domain.TabKPIs:     func(in viewInput) any { return kpiView(in.client.Data.KPIs) },
		domain.TabGoogle:   func(in viewInput) any { return adsView(domain.ServiceGoogle, in.client) },
		domain.TabMeta:     func(in viewInput) any { return adsView(domain.ServiceMeta, in.client) },
		domain.TabOtherKPIs: func(in viewInput) any {
			return otherKpisView(in.client.Data.OtherKPIs)
		},
		domain.TabRoadmap: func(in viewInput) any {
			return RoadmapView{Items: in.client.Data.Roadmap, Current: currentPhase(in.client.Data.Roadmap)}
		},
		domain.TabApprovals: func(in viewInput) any {
			return ApprovalsView{
				Approvals:    in.client.ContentApprovals,
				PendingCount: domain.CountPendingApprovals(in.client.ContentApprovals),
			}
		},
		domain.TabReporting: func(in viewInput) any {
			return ReportingView{
				Report:           reporting.Compose(in.client, in.snapshot.Settings, in.period),
				ReportingPeriods: domain.ReportingPeriods,
				ComparePeriods:   domain.ComparePeriods,
			}
		},
		domain.TabProfile: func(in viewInput) any { return profileView(in.client) },
	}
}

func adminRegistry() map[domain.Tab]producer {
	return map[domain.Tab]producer{
		domain.TabAdminClients: func(in viewInput) any {
			return adminClientsView(in.snapshot.Clients, selectedID(in.client))
		},
		domain.TabAdminSync:  func(in viewInput) any { return dataSyncView(in.client) },
		domain.TabAdminSetup: func(in viewInput) any { return platformSetupView(in.snapshot.Settings) },
		domain.TabAdminReportSetup: func(in viewInput) any {
			view := ReportBuilderView{ReportSettings: in.snapshot.Settings.ReportSettings}
			if in.client != nil {
				view.Sections = reporting.Compose(in.client, in.snapshot.Settings, in.period).Kinds()
			}
			return view
		},
	}
}

func selectedID(client *domain.ClientProfile) string {
	if client == nil {
		return ""
	}
	return client.ID
}

func (s *Service) Navigation(role domain.UserRole) (Navigation, error) {
	if !role.IsValid() {
		return Navigation{}, NewNavigationError(ErrInvalidRole, apiErrors.ErrInvalidRole, "")
	}
	return BuildNavigation(role, s.state.Snapshot().SelectedClient()), nil
}

// Dispatch é total para clientes: aba desconhecida ou fora do conjunto visível cai na visão geral.
// Para o administrador o conjunto é fechado.
func (s *Service) Dispatch(ctx context.Context, request ViewRequest) (*View, error) {
	snapshot := s.state.Snapshot()
	in := viewInput{
		snapshot: snapshot,
		client:   snapshot.SelectedClient(),
		period:   request.Period.WithDefaults(),
		page:     request.Page,
	}

	tab := request.Tab
	var produce producer

	switch request.Role {
	case domain.RoleAdmin:
		var ok bool
		produce, ok = s.adminViews[tab]
		if !ok {
			return nil, NewNavigationError(ErrUnknownTab, apiErrors.ErrUnknownTab, string(tab))
		}
	case domain.RoleClient:
		if in.client == nil {
			return nil, NewNavigationError(ErrNoClient, apiErrors.ErrClientNotFound, string(tab))
		}
		if !IsVisible(domain.RoleClient, in.client, tab) || s.clientViews[tab] == nil {
			if tab != domain.TabOverview {
				log.ForContext(ctx).WithField("tab", tab).Debug("Aba indisponível, exibindo visão geral")
			}
			tab = domain.TabOverview
		}
		produce = s.clientViews[tab]
	default:
		return nil, NewNavigationError(ErrInvalidRole, apiErrors.ErrInvalidRole, string(tab))
	}

	return &View{
		Tab:              tab,
		Label:            label(tab),
		ShowPeriodPicker: tab.ShowsPeriodPicker(),
		Period:           in.period,
		Content:          produce(in),
	}, nil
}
