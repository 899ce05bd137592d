package appstate

import (
	"fmt"
	"time"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

const demoRankingCount = 50

// DemoClients retorna o cliente de demonstração usado quando não há estado gravado
func DemoClients() []*domain.ClientProfile {
	return []*domain.ClientProfile{demoClient()}
}

func demoClient() *domain.ClientProfile {
	return &domain.ClientProfile{
		ID: "client-001",
		KYC: domain.KYCData{
			CompanyName:        "Emaar Properties",
			ContactPerson:      "Ahmed Hassan",
			Email:              "ahmed@emaar.ae",
			Phone:              "+971 50 123 4567",
			ContractSigned:     true,
			RegistrationDate:   domain.NewDate(2024, time.January, 15),
			ContractStartDate:  domain.NewDate(2024, time.January, 1),
			ContractExpiryDate: domain.NewDate(2025, time.December, 31),
			Status:             domain.KYCStatusApproved,
			Currency:           "AED",
		},
		AssignedServices: append([]domain.ServiceTag{}, domain.AllServices...),
		Data: domain.DashboardData{
			Rankings: demoRankings(),
			KPIs: []domain.KpiMetric{
				domain.NewKpiMetric("Lead Gen", "Qualified Leads", 100, 70),
				domain.NewKpiMetric("Digital", "Website Traffic", 10000, 8500),
			},
			GoogleAds: []domain.AdPerformance{
				{Campaign: "Search - Dubai Core", Impressions: 700000, Clicks: 200, CTR: 0.03, CPC: 10, Spend: 2000, Conversions: 50, ROAS: 4.5},
			},
			MetaAds: []domain.AdPerformance{
				{Campaign: "Social Retargeting", Impressions: 700000, Clicks: 200, CTR: 0.03, CPC: 10, Spend: 2000, Conversions: 50, ROAS: 5.2},
			},
			OtherKPIs: demoTechnicalTasks(),
			Roadmap: []domain.RoadmapItem{
				{Phase: "Phase 1", Title: "Technical Audit & Setup", Status: domain.RoadmapStatusCompleted, Date: "Jan 2024"},
				{Phase: "Phase 2", Title: "Content Strategy & Launch", Status: domain.RoadmapStatusCompleted, Date: "Feb 2024"},
				{Phase: "Phase 3", Title: "Aggressive Link Building", Status: domain.RoadmapStatusCurrent, Date: "Mar 2024"},
				{Phase: "Phase 4", Title: "Conversion Optimization", Status: domain.RoadmapStatusUpcoming, Date: "Apr 2024"},
			},
			Visibility:        52,
			OptimizationScore: 92,
		},
		ContentApprovals: []domain.ContentApproval{
			{
				ID:          "app-001",
				Title:       "Q2 Social Media Campaign Assets",
				CanvaLink:   "https://www.canva.com/design/DAF...",
				Status:      domain.ApprovalStatusPending,
				DateCreated: domain.NewDate(2024, time.May, 10),
				Notes:       "Please review the new visual style for Instagram Stories.",
			},
		},
	}
}

// posições determinísticas para que o cliente de demonstração seja estável entre reinícios
func demoRankings() []domain.SeoRanking {
	rankings := make([]domain.SeoRanking, 0, demoRankingCount)
	for i := 0; i < demoRankingCount; i++ {
		rankings = append(rankings, domain.NewSeoRanking(
			fmt.Sprintf("Strategic Property Keyword #%d", i+1),
			(i*7)%20+1,
			(i*11)%20+3,
			500+(i*397)%5000,
			"/properties",
		))
	}
	return rankings
}

func demoTechnicalTasks() []domain.TechnicalTask {
	return []domain.TechnicalTask{
		{Task: "Website Visibility [SEMrush]", Goal: "Increase to 15%", Status: "Currently 8.4%", IsCompleted: false},
		{Task: "Backlink Goal", Goal: "50 High DA Links", Status: "32 Links Built", IsCompleted: false},
		{Task: "Article Posting", Goal: "4 per Month", Status: "4 Posted", IsCompleted: true},
		{Task: "Google Ads", Goal: "Campaign Optimization", Status: "Active & Scaling", IsCompleted: true},
		{Task: "Content Humanization Check", Goal: "100% Pass", Status: "In Progress", IsCompleted: false},
		{Task: "Content & Image Updates", Goal: "Bi-weekly", Status: "Batch 2 Pending", IsCompleted: false},
		{Task: "Google Analytics Setup", Goal: "GA4 Config", Status: "Connected", IsCompleted: true},
		{Task: "Google Search Console Setup", Goal: "Verified", Status: "Active", IsCompleted: true},
		{Task: "Sitemap Setup", Goal: "XML Validated", Status: "Indexed", IsCompleted: true},
		{Task: "Re-indexing Pages into GSC", Goal: "Priority Pages", Status: "80% Complete", IsCompleted: false},
		{Task: "Write Image Alt Tag", Goal: "Site-wide", Status: "Completed", IsCompleted: true},
		{Task: "Keyword Mapping Sheet Creation", Goal: "Core Pages", Status: "Approved", IsCompleted: true},
		{Task: "SEO Mapping Sheet Implementation", Goal: "On-page Sync", Status: "Live", IsCompleted: true},
		{Task: "Bing Webmaster Tools Setup", Goal: "Verified", Status: "Active", IsCompleted: true},
		{Task: "Yandex Search Engine Setup", Goal: "Connected", Status: "Active", IsCompleted: true},
		{Task: "Google Ads Setup", Goal: "Conversion Tracking", Status: "Operational", IsCompleted: true},
		{Task: "Title & Meta Writing", Goal: "Top 50 Pages", Status: "45/50 Done", IsCompleted: false},
		{Task: "Keyword Research & Finalization", Goal: "Main Pillars", Status: "Signed Off", IsCompleted: true},
		{Task: "Robots.txt File Setup", Goal: "Optimized", Status: "Live", IsCompleted: true},
		{Task: "Removed Unused Image", Goal: "Speed Optimization", Status: "Completed", IsCompleted: true},
	}
}
