package navigating

import (
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

const RankingsPerPage = 30

type OverviewView struct {
	CompanyName    string                 `json:"companyName"`
	Currency       string                 `json:"currency"`
	Summary        domain.OverviewSummary `json:"summary"`
	KpiCounts      domain.KpiStatusCounts `json:"kpiCounts"`
	Rankings       domain.RankingSummary  `json:"rankings"`
	CurrentPhase   *domain.RoadmapItem    `json:"currentPhase,omitempty"`
	Services       []domain.ServiceTag    `json:"services"`
	TaskCompletion int                    `json:"taskCompletion"`
}

type RankingsView struct {
	Rankings   []domain.SeoRanking   `json:"rankings"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"perPage"`
	TotalPages int                   `json:"totalPages"`
	Total      int                   `json:"total"`
	Summary    domain.RankingSummary `json:"summary"`
}

type KpiRow struct {
	domain.KpiMetric
	Progress float64 `json:"progress"`
}

type KpiView struct {
	KPIs   []KpiRow               `json:"kpis"`
	Counts domain.KpiStatusCounts `json:"counts"`
}

type AdsView struct {
	Platform  domain.ServiceTag        `json:"platform"`
	Currency  string                   `json:"currency"`
	Campaigns []domain.AdPerformance   `json:"campaigns"`
	Summary   domain.AdPlatformSummary `json:"summary"`
}

type OtherKpisView struct {
	Tasks                []domain.TechnicalTask `json:"tasks"`
	Completed            int                    `json:"completed"`
	Total                int                    `json:"total"`
	CompletionPercentage int                    `json:"completionPercentage"`
}

type RoadmapView struct {
	Items   []domain.RoadmapItem `json:"items"`
	Current *domain.RoadmapItem  `json:"current,omitempty"`
}

type ApprovalsView struct {
	Approvals    []domain.ContentApproval `json:"approvals"`
	PendingCount int                      `json:"pendingCount"`
}

type ReportingView struct {
	Report           domain.Report `json:"report"`
	ReportingPeriods []string      `json:"reportingPeriods"`
	ComparePeriods   []string      `json:"comparePeriods"`
}

type Documents struct {
	TradeLicense   bool `json:"tradeLicense"`
	BrandBook      bool `json:"brandBook"`
	VATCertificate bool `json:"vatCertificate"`
}

type ProfileView struct {
	ClientID  string         `json:"clientId"`
	KYC       domain.KYCData `json:"kyc"`
	Documents Documents      `json:"documents"`
}

type ClientRow struct {
	ID                 string              `json:"id"`
	CompanyName        string              `json:"companyName"`
	ContactPerson      string              `json:"contactPerson"`
	Email              string              `json:"email"`
	Status             domain.KYCStatus    `json:"status"`
	Currency           string              `json:"currency"`
	ContractExpiryDate domain.Date         `json:"contractExpiryDate"`
	Services           []domain.ServiceTag `json:"services"`
	Selected           bool                `json:"selected"`
}

type AdminClientsView struct {
	Clients    []ClientRow         `json:"clients"`
	Currencies []string            `json:"currencies"`
	Services   []domain.ServiceTag `json:"services"`
}

type DataSyncView struct {
	ClientID    string                     `json:"clientId,omitempty"`
	CompanyName string                     `json:"companyName,omitempty"`
	RowCounts   map[domain.DatasetKind]int `json:"rowCounts"`
	Data        *domain.DashboardData      `json:"data,omitempty"`
}

type PlatformSetupView struct {
	AgencyLogo      string   `json:"agencyLogo"`
	URLSlug         string   `json:"urlSlug"`
	FooterCredit    string   `json:"footerCredit"`
	PrimaryColor    string   `json:"primaryColor"`
	DefaultCurrency string   `json:"defaultCurrency"`
	Currencies      []string `json:"currencies"`
}

type ReportBuilderView struct {
	ReportSettings domain.ReportSettings `json:"reportSettings"`
	Sections       []domain.SectionKind  `json:"sections,omitempty"`
}

func overviewView(client *domain.ClientProfile) OverviewView {
	return OverviewView{
		CompanyName:    client.KYC.CompanyName,
		Currency:       client.KYC.Currency,
		Summary:        domain.SummarizeClient(client),
		KpiCounts:      domain.CountKpiStatuses(client.Data.KPIs),
		Rankings:       domain.SummarizeRankings(client.Data.Rankings),
		CurrentPhase:   currentPhase(client.Data.Roadmap),
		Services:       client.AssignedServices,
		TaskCompletion: domain.TaskCompletionPercentage(client.Data.OtherKPIs),
	}
}

// rankingsView pagina 30 por página; páginas fora do intervalo são ajustadas para o limite
func rankingsView(rankings []domain.SeoRanking, page int) RankingsView {
	totalPages := max(1, (len(rankings)+RankingsPerPage-1)/RankingsPerPage)
	page = min(max(page, 1), totalPages)

	start := min((page-1)*RankingsPerPage, len(rankings))
	end := min(start+RankingsPerPage, len(rankings))

	return RankingsView{
		Rankings:   append([]domain.SeoRanking{}, rankings[start:end]...),
		Page:       page,
		PerPage:    RankingsPerPage,
		TotalPages: totalPages,
		Total:      len(rankings),
		Summary:    domain.SummarizeRankings(rankings),
	}
}

func kpiView(kpis []domain.KpiMetric) KpiView {
	rows := make([]KpiRow, 0, len(kpis))
	for _, k := range kpis {
		rows = append(rows, KpiRow{KpiMetric: k, Progress: domain.KpiProgress(k)})
	}
	return KpiView{KPIs: rows, Counts: domain.CountKpiStatuses(kpis)}
}

func adsView(platform domain.ServiceTag, client *domain.ClientProfile) AdsView {
	ads := client.Data.GoogleAds
	if platform == domain.ServiceMeta {
		ads = client.Data.MetaAds
	}
	return AdsView{
		Platform:  platform,
		Currency:  client.KYC.Currency,
		Campaigns: ads,
		Summary:   domain.SummarizeAds(ads),
	}
}

func otherKpisView(tasks []domain.TechnicalTask) OtherKpisView {
	return OtherKpisView{
		Tasks:                tasks,
		Completed:            domain.CountCompletedTasks(tasks),
		Total:                len(tasks),
		CompletionPercentage: domain.TaskCompletionPercentage(tasks),
	}
}

func currentPhase(items []domain.RoadmapItem) *domain.RoadmapItem {
	for _, item := range items {
		if item.Status == domain.RoadmapStatusCurrent {
			current := item
			return &current
		}
	}
	return nil
}

func profileView(client *domain.ClientProfile) ProfileView {
	return ProfileView{
		ClientID: client.ID,
		KYC:      client.KYC,
		Documents: Documents{
			TradeLicense:   client.KYC.TradeLicenseURL != "",
			BrandBook:      client.KYC.BrandBookURL != "",
			VATCertificate: client.KYC.VATCertificateURL != "",
		},
	}
}

func adminClientsView(clients []*domain.ClientProfile, selectedID string) AdminClientsView {
	rows := make([]ClientRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, ClientRow{
			ID:                 c.ID,
			CompanyName:        c.KYC.CompanyName,
			ContactPerson:      c.KYC.ContactPerson,
			Email:              c.KYC.Email,
			Status:             c.KYC.Status,
			Currency:           c.KYC.Currency,
			ContractExpiryDate: c.KYC.ContractExpiryDate,
			Services:           c.AssignedServices,
			Selected:           c.ID == selectedID,
		})
	}
	return AdminClientsView{
		Clients:    rows,
		Currencies: domain.Currencies,
		Services:   domain.AllServices,
	}
}

func dataSyncView(client *domain.ClientProfile) DataSyncView {
	view := DataSyncView{RowCounts: map[domain.DatasetKind]int{}}
	if client == nil {
		return view
	}

	data := client.Data
	view.ClientID = client.ID
	view.CompanyName = client.KYC.CompanyName
	view.Data = &data
	view.RowCounts[domain.DatasetRankings] = len(data.Rankings)
	view.RowCounts[domain.DatasetKPIs] = len(data.KPIs)
	view.RowCounts[domain.DatasetGoogle] = len(data.GoogleAds)
	view.RowCounts[domain.DatasetMeta] = len(data.MetaAds)
	return view
}

func platformSetupView(settings domain.AdminSettings) PlatformSetupView {
	return PlatformSetupView{
		AgencyLogo:      settings.AgencyLogo,
		URLSlug:         settings.URLSlug,
		FooterCredit:    settings.FooterCredit,
		PrimaryColor:    settings.PrimaryColor,
		DefaultCurrency: settings.DefaultCurrency,
		Currencies:      domain.Currencies,
	}
}
