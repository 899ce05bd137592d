package gemini

import (
	"context"
	"fmt"

	"github.com/vfg2006/client-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/utils"
)

const promptTemplate = `
    Act as a senior digital marketing strategist. Analyze the following dashboard data and provide 3-4 bullet points of high-level strategic insights.

    SEO Rankings: %s
    KPIs: %s
    Google Ads: %s
    Meta Ads: %s

    Format the response with bullet points and bold key terms. Keep it professional and actionable. Focus on cross-channel opportunities.
  `

type GeminiIntegrator struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) *GeminiIntegrator {
	return &GeminiIntegrator{
		Client: client,
	}
}

// BuildPrompt monta o prompt com os quatro datasets serializados em JSON
func BuildPrompt(data domain.DashboardData) string {
	return fmt.Sprintf(promptTemplate,
		utils.CompactJSON(data.Rankings),
		utils.CompactJSON(data.KPIs),
		utils.CompactJSON(data.GoogleAds),
		utils.CompactJSON(data.MetaAds),
	)
}

func (g *GeminiIntegrator) GenerateInsights(ctx context.Context, data domain.DashboardData) (string, error) {
	text, err := g.Client.GenerateText(ctx, BuildPrompt(data))
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"error": err.Error(),
		}).Error("gemini: falha ao gerar insights")
		return "", err
	}

	return text, nil
}
