package domain

type Tab string

const (
	TabOverview         Tab = "overview"
	TabRankings         Tab = "rankings"
	TabKPIs             Tab = "kpis"
	TabGoogle           Tab = "google"
	TabMeta             Tab = "meta"
	TabOtherKPIs        Tab = "other_kpis"
	TabRoadmap          Tab = "roadmap"
	TabApprovals        Tab = "approvals"
	TabReporting        Tab = "reporting"
	TabProfile          Tab = "profile"
	TabAdminClients     Tab = "admin_clients"
	TabAdminSync        Tab = "admin_sync"
	TabAdminSetup       Tab = "admin_setup"
	TabAdminReportSetup Tab = "admin_report_setup"
)

// TabEntry é um item de menu, opcionalmente condicionado a um serviço contratado
type TabEntry struct {
	ID              Tab        `json:"id"`
	Label           string     `json:"label"`
	RequiredService ServiceTag `json:"requiredService,omitempty"`
}

var AdminTabs = []TabEntry{
	{ID: TabAdminClients, Label: "Clients & KYC"},
	{ID: TabAdminSync, Label: "Data Sync"},
	{ID: TabAdminSetup, Label: "Platform Setup"},
	{ID: TabAdminReportSetup, Label: "Report Builder"},
}

var ClientTabs = []TabEntry{
	{ID: TabOverview, Label: "Overview"},
	{ID: TabRankings, Label: "SEO Rankings", RequiredService: ServiceRankings},
	{ID: TabKPIs, Label: "Performance", RequiredService: ServiceKPIs},
	{ID: TabGoogle, Label: "Google Ads", RequiredService: ServiceGoogle},
	{ID: TabMeta, Label: "Meta Ads", RequiredService: ServiceMeta},
	{ID: TabOtherKPIs, Label: "Other KPIs", RequiredService: ServiceOtherKPIs},
	{ID: TabApprovals, Label: "Creative Approvals", RequiredService: ServiceApprovals},
	{ID: TabRoadmap, Label: "Roadmap", RequiredService: ServiceRoadmap},
	{ID: TabReporting, Label: "Download Report"},
}

var ProfileTab = TabEntry{ID: TabProfile, Label: "My Profile"}

// periodlessTabs não exibem o seletor de período
var periodlessTabs = map[Tab]struct{}{
	TabApprovals: {},
	TabReporting: {},
	TabRoadmap:   {},
	TabProfile:   {},
}

func (t Tab) ShowsPeriodPicker() bool {
	_, hidden := periodlessTabs[t]
	return !hidden
}

// DefaultTab é a aba ativa logo após o login
func DefaultTab(role UserRole) Tab {
	if role == RoleAdmin {
		return TabAdminClients
	}
	return TabOverview
}
