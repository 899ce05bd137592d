package insighting

import (
	"context"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

// InsightGenerator produz o resumo estratégico a partir dos dados do painel
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, data domain.DashboardData) (string, error)
}

// Insighter expõe os insights para a API e para o agendador
type Insighter interface {
	// GetInsights nunca falha: erros viram a mensagem de fallback
	GetInsights(ctx context.Context, client *domain.ClientProfile) domain.Insight
	ForSelected(ctx context.Context) (domain.Insight, error)
	CachedInsights(clientID string) (domain.Insight, bool)
	RefreshAll(ctx context.Context) domain.InsightRefresh
}
