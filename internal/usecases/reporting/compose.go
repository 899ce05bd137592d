package reporting

import (
	"strings"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

const (
	topRankingsInReport  = 15
	topCampaignsInReport = 5
	activeStatus         = "Active"
)

var sectionTitles = map[domain.SectionKind]string{
	domain.SectionCover:    "Cover",
	domain.SectionSecurity: "Security",
	domain.SectionOverview: "Overview",
	domain.SectionSEO:      "Organic Growth",
	domain.SectionPaidAds:  "Performance Ads",
}

// Compose projeta o relatório imprimível do cliente; não altera nenhum dos argumentos.
// A numeração das páginas considera apenas as seções emitidas.
func Compose(client *domain.ClientProfile, settings domain.AdminSettings, period domain.ReportingPeriod) domain.Report {
	rs := settings.ReportSettings
	report := domain.Report{
		ClientID:     client.ID,
		CompanyName:  client.KYC.CompanyName,
		MainTitle:    rs.MainTitle,
		AgencyLogo:   settings.AgencyLogo,
		FooterCredit: settings.FooterCredit,
		PrimaryColor: settings.PrimaryColor,
		Period:       period,
		Sections:     []domain.ReportSection{},
	}

	add := func(section domain.ReportSection) {
		section.Number = len(report.Sections) + 1
		section.Title = sectionTitles[section.Kind]
		report.Sections = append(report.Sections, section)
	}

	add(domain.ReportSection{
		Kind: domain.SectionCover,
		Cover: &domain.CoverSection{
			MainTitle:       rs.MainTitle,
			CoverImage:      rs.CoverImage,
			Heading:         rs.P1Heading,
			SubHeading:      rs.P1SubHeading,
			CompanyName:     client.KYC.CompanyName,
			ProfilePhotoURL: client.KYC.ProfilePhotoURL,
			AgencyLogo:      settings.AgencyLogo,
			Period:          period.Period,
		},
	})

	if rs.ShowSecurityPage {
		add(domain.ReportSection{
			Kind: domain.SectionSecurity,
			Security: &domain.SecuritySection{
				Heading: rs.P2Heading,
				Body:    rs.P2Body,
				Agency:  AgencyName(settings.FooterCredit),
			},
		})
	}

	add(domain.ReportSection{Kind: domain.SectionOverview, Overview: overviewSection(client)})

	if client.HasService(domain.ServiceRankings) {
		add(domain.ReportSection{Kind: domain.SectionSEO, SEO: seoSection(client.Data.Rankings)})
	}

	if client.HasService(domain.ServiceGoogle) || client.HasService(domain.ServiceMeta) {
		add(domain.ReportSection{Kind: domain.SectionPaidAds, PaidAds: paidAdsSection(client)})
	}

	return report
}

// AgencyName é o crédito do rodapé antes do símbolo de copyright
func AgencyName(footerCredit string) string {
	name, _, _ := strings.Cut(footerCredit, " ©")
	return name
}

func overviewSection(client *domain.ClientProfile) *domain.OverviewSection {
	summary := domain.SummarizeClient(client)
	section := &domain.OverviewSection{
		Status:            activeStatus,
		Currency:          client.KYC.Currency,
		TotalAdSpend:      summary.TotalAdSpend,
		TotalLeads:        summary.TotalLeads,
		Visibility:        client.Data.Visibility,
		OptimizationScore: client.Data.OptimizationScore,
		TargetKeywords:    len(client.Data.Rankings),
		ShowKeyMetrics:    client.HasService(domain.ServiceKPIs),
	}

	if section.ShowKeyMetrics {
		section.KPIs = append([]domain.KpiMetric{}, client.Data.KPIs...)
	}

	return section
}

func seoSection(rankings []domain.SeoRanking) *domain.SeoSection {
	summary := domain.SummarizeRankings(rankings)
	top := rankings[:min(len(rankings), topRankingsInReport)]

	return &domain.SeoSection{
		TopRankings:        append([]domain.SeoRanking{}, top...),
		AverageCurrentRank: summary.AverageCurrentRank,
		TotalVolume:        summary.TotalVolume,
	}
}

func paidAdsSection(client *domain.ClientProfile) *domain.PaidAdsSection {
	section := &domain.PaidAdsSection{
		Currency:     client.KYC.Currency,
		TopCampaigns: []domain.AdPerformance{},
	}

	var campaigns []domain.AdPerformance
	if client.HasService(domain.ServiceGoogle) {
		google := domain.SummarizeAds(client.Data.GoogleAds)
		section.Google = &google
		campaigns = append(campaigns, client.Data.GoogleAds...)
	}
	if client.HasService(domain.ServiceMeta) {
		meta := domain.SummarizeAds(client.Data.MetaAds)
		section.Meta = &meta
		campaigns = append(campaigns, client.Data.MetaAds...)
	}

	section.TopCampaigns = append(section.TopCampaigns, campaigns[:min(len(campaigns), topCampaignsInReport)]...)
	return section
}
