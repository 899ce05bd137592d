package importing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.DatasetKind
		text     string
		wantErr  error
		validate func(t *testing.T, dataset *domain.Dataset)
	}{
		{
			name: "rankings com variação calculada",
			kind: domain.DatasetRankings,
			text: "dubai marina apartments\t3\t10\t1200\t/marina\nbusiness bay offices\t12\t8\t900\t/bay",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.Rankings, 2)
				assert.Equal(t, domain.SeoRanking{Keyword: "dubai marina apartments", CurrentRank: 3, PreviousRank: 10, Change: 7, Volume: 1200, URL: "/marina"}, dataset.Rankings[0])
				assert.Equal(t, -4, dataset.Rankings[1].Change)
			},
		},
		{
			name: "kpis com status derivado",
			kind: domain.DatasetKPIs,
			text: "Lead Gen\tQualified Leads\t100\t85\nDigital\tTraffic\t100\t100\nBrand\tMentions\t100\t79.9",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.KPIs, 3)
				assert.Equal(t, domain.KpiStatusAtRisk, dataset.KPIs[0].Status)
				assert.Equal(t, domain.KpiStatusOnTrack, dataset.KPIs[1].Status)
				assert.Equal(t, domain.KpiStatusBehind, dataset.KPIs[2].Status)
			},
		},
		{
			name: "anúncios google",
			kind: domain.DatasetGoogle,
			text: "Search - Dubai Core\t700000\t200\t0.03\t10\t2000\t50\t4.5",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.Ads, 1)
				assert.Equal(t, domain.AdPerformance{Campaign: "Search - Dubai Core", Impressions: 700000, Clicks: 200, CTR: 0.03, CPC: 10, Spend: 2000, Conversions: 50, ROAS: 4.5}, dataset.Ads[0])
			},
		},
		{
			name: "números inválidos viram zero e colunas ausentes ficam vazias",
			kind: domain.DatasetMeta,
			text: "Reels\tmuitas\t3.7\tabc",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.Ads, 1)
				ad := dataset.Ads[0]
				assert.Equal(t, "Reels", ad.Campaign)
				assert.Zero(t, ad.Impressions)
				assert.Equal(t, 3, ad.Clicks)
				assert.Zero(t, ad.CTR)
				assert.Zero(t, ad.ROAS)
			},
		},
		{
			name: "quebras de linha do windows e linhas em branco",
			kind: domain.DatasetRankings,
			text: "a\t1\t2\t3\t/a\r\n\r\n\t\t\r\nb\t4\t5\t6\t/b\r\n",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.Rankings, 2)
				assert.Equal(t, "/a", dataset.Rankings[0].URL)
				assert.Equal(t, "/b", dataset.Rankings[1].URL)
			},
		},
		{
			name: "colunas extras são ignoradas",
			kind: domain.DatasetKPIs,
			text: "Lead Gen\tLeads\t10\t10\textra\tmais",
			validate: func(t *testing.T, dataset *domain.Dataset) {
				require.Len(t, dataset.KPIs, 1)
				assert.Equal(t, float64(10), dataset.KPIs[0].Actual)
			},
		},
		{
			name:    "tipo desconhecido",
			kind:    "tiktok",
			text:    "a\t1",
			wantErr: ErrUnknownKind,
		},
		{
			name:    "texto vazio",
			kind:    domain.DatasetRankings,
			text:    "  \n\t\n",
			wantErr: ErrNoRows,
		},
		{
			name:    "utf-8 inválido",
			kind:    domain.DatasetRankings,
			text:    "a\t\xff\t2",
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "linhas demais",
			kind:    domain.DatasetRankings,
			text:    strings.Repeat("k\t1\t2\t3\t/u\n", MaxRows+1),
			wantErr: ErrTooManyRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset, err := Parse(tt.kind, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsImportError(err))
				assert.Nil(t, dataset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, dataset.Kind)
			tt.validate(t, dataset)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := "a\t1\t2\t3\t/a\nb\t4\t5\t6\t/b"

	first, err := Parse(domain.DatasetRankings, text)
	require.NoError(t, err)
	second, err := Parse(domain.DatasetRankings, text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
