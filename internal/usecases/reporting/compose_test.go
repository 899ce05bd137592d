package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

func demoClient() *domain.ClientProfile {
	return appstate.DemoClients()[0]
}

func TestCompose(t *testing.T) {
	period := domain.DefaultReportingPeriod()

	tests := []struct {
		name     string
		setup    func(client *domain.ClientProfile, settings *domain.AdminSettings)
		kinds    []domain.SectionKind
		validate func(t *testing.T, report domain.Report)
	}{
		{
			name: "todos os serviços e página de segurança",
			kinds: []domain.SectionKind{
				domain.SectionCover, domain.SectionSecurity, domain.SectionOverview, domain.SectionSEO, domain.SectionPaidAds,
			},
			validate: func(t *testing.T, report domain.Report) {
				security := report.Sections[1].Security
				assert.Equal(t, "Aspiration Worx", security.Agency)

				overview := report.Sections[2].Overview
				assert.Equal(t, "Active", overview.Status)
				assert.Equal(t, float64(4000), overview.TotalAdSpend)
				assert.Equal(t, 100, overview.TotalLeads)
				assert.Equal(t, 50, overview.TargetKeywords)
				assert.True(t, overview.ShowKeyMetrics)
				assert.Len(t, overview.KPIs, 2)

				seo := report.Sections[3].SEO
				assert.Len(t, seo.TopRankings, 15)
				assert.Equal(t, "Strategic Property Keyword #1", seo.TopRankings[0].Keyword)

				ads := report.Sections[4].PaidAds
				require.NotNil(t, ads.Google)
				require.NotNil(t, ads.Meta)
				assert.Len(t, ads.TopCampaigns, 2)
				assert.Equal(t, "AED", ads.Currency)
			},
		},
		{
			name: "sem página de segurança a numeração continua sequencial",
			setup: func(client *domain.ClientProfile, settings *domain.AdminSettings) {
				settings.ReportSettings.ShowSecurityPage = false
			},
			kinds: []domain.SectionKind{domain.SectionCover, domain.SectionOverview, domain.SectionSEO, domain.SectionPaidAds},
		},
		{
			name: "sem serviços emite apenas capa e visão geral",
			setup: func(client *domain.ClientProfile, settings *domain.AdminSettings) {
				client.AssignedServices = nil
				settings.ReportSettings.ShowSecurityPage = false
			},
			kinds: []domain.SectionKind{domain.SectionCover, domain.SectionOverview},
			validate: func(t *testing.T, report domain.Report) {
				overview := report.Sections[1].Overview
				assert.False(t, overview.ShowKeyMetrics)
				assert.Empty(t, overview.KPIs)
			},
		},
		{
			name: "apenas meta mostra só o resumo da meta",
			setup: func(client *domain.ClientProfile, settings *domain.AdminSettings) {
				client.AssignedServices = []domain.ServiceTag{domain.ServiceMeta}
			},
			kinds: []domain.SectionKind{domain.SectionCover, domain.SectionSecurity, domain.SectionOverview, domain.SectionPaidAds},
			validate: func(t *testing.T, report domain.Report) {
				ads := report.Sections[3].PaidAds
				assert.Nil(t, ads.Google)
				require.NotNil(t, ads.Meta)
				require.Len(t, ads.TopCampaigns, 1)
				assert.Equal(t, "Social Retargeting", ads.TopCampaigns[0].Campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := demoClient()
			settings := domain.DefaultSettings()
			if tt.setup != nil {
				tt.setup(client, &settings)
			}

			report := Compose(client, settings, period)

			assert.Equal(t, tt.kinds, report.Kinds())
			for i, section := range report.Sections {
				assert.Equal(t, i+1, section.Number)
			}
			if tt.validate != nil {
				tt.validate(t, report)
			}
		})
	}
}

func TestCompose_Pure(t *testing.T) {
	client := demoClient()
	settings := domain.DefaultSettings()
	before := client.Clone()

	first := Compose(client, settings, domain.DefaultReportingPeriod())
	second := Compose(client, settings, domain.DefaultReportingPeriod())

	assert.Equal(t, first, second)
	assert.Equal(t, before, client)

	first.Sections[3].SEO.TopRankings[0].Keyword = "alterado"
	assert.Equal(t, "Strategic Property Keyword #1", client.Data.Rankings[0].Keyword)
}

func TestAgencyName(t *testing.T) {
	assert.Equal(t, "Aspiration Worx", AgencyName("Aspiration Worx © 2011-2026"))
	assert.Equal(t, "Sem Copyright", AgencyName("Sem Copyright"))
}

func TestRenderPDF(t *testing.T) {
	report := Compose(demoClient(), domain.DefaultSettings(), domain.DefaultReportingPeriod())

	content, err := RenderPDF(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b int
	}{
		{input: "#4f46e5", r: 79, g: 70, b: 229},
		{input: "#fff", r: 255, g: 255, b: 255},
		{input: "azul", r: 79, g: 70, b: 229},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, g, b := hexToRGB(tt.input)
			assert.Equal(t, []int{tt.r, tt.g, tt.b}, []int{r, g, b})
		})
	}
}
