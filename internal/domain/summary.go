package domain

import (
	"math"

	"github.com/vfg2006/client-dashboard-api/pkg/utils"
)

// AdPlatformSummary agrega as campanhas de uma plataforma de anúncios
type AdPlatformSummary struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalLeads       int     `json:"totalLeads"`
	TotalImpressions int     `json:"totalImpressions"`
	TotalClicks      int     `json:"totalClicks"`
	AverageROAS      float64 `json:"averageRoas"`
	AverageCTR       float64 `json:"averageCtr"`
	Campaigns        int     `json:"campaigns"`
}

func SummarizeAds(ads []AdPerformance) AdPlatformSummary {
	summary := AdPlatformSummary{Campaigns: len(ads)}

	var roas, ctr float64
	for _, ad := range ads {
		summary.TotalSpend += ad.Spend
		summary.TotalLeads += ad.Conversions
		summary.TotalImpressions += ad.Impressions
		summary.TotalClicks += ad.Clicks
		roas += ad.ROAS
		ctr += ad.CTR
	}

	divisor := float64(max(len(ads), 1))
	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)
	summary.AverageROAS = utils.RoundWithTwoDecimalPlace(roas / divisor)
	summary.AverageCTR = utils.RoundWithTwoDecimalPlace(ctr / divisor)

	return summary
}

// OverviewSummary são os números do cartão de resumo do cliente
type OverviewSummary struct {
	TotalAdSpend      float64 `json:"totalAdSpend"`
	TotalLeads        int     `json:"totalLeads"`
	TotalImpressions  int     `json:"totalImpressions"`
	PendingApprovals  int     `json:"pendingApprovals"`
	CompletedTasks    int     `json:"completedTasks"`
	TotalTasks        int     `json:"totalTasks"`
	Visibility        float64 `json:"visibility"`
	OptimizationScore float64 `json:"optimizationScore"`
}

func SummarizeClient(client *ClientProfile) OverviewSummary {
	google := SummarizeAds(client.Data.GoogleAds)
	meta := SummarizeAds(client.Data.MetaAds)

	return OverviewSummary{
		TotalAdSpend:      utils.RoundWithTwoDecimalPlace(google.TotalSpend + meta.TotalSpend),
		TotalLeads:        google.TotalLeads + meta.TotalLeads,
		TotalImpressions:  google.TotalImpressions + meta.TotalImpressions,
		PendingApprovals:  CountPendingApprovals(client.ContentApprovals),
		CompletedTasks:    CountCompletedTasks(client.Data.OtherKPIs),
		TotalTasks:        len(client.Data.OtherKPIs),
		Visibility:        client.Data.Visibility,
		OptimizationScore: client.Data.OptimizationScore,
	}
}

func CountCompletedTasks(tasks []TechnicalTask) int {
	count := 0
	for _, t := range tasks {
		if t.IsCompleted {
			count++
		}
	}
	return count
}

// TaskCompletionPercentage retorna a porcentagem arredondada de tarefas concluídas
func TaskCompletionPercentage(tasks []TechnicalTask) int {
	if len(tasks) == 0 {
		return 0
	}
	return int(math.Round(float64(CountCompletedTasks(tasks)) / float64(len(tasks)) * 100))
}

type KpiStatusCounts struct {
	OnTrack int `json:"onTrack"`
	AtRisk  int `json:"atRisk"`
	Behind  int `json:"behind"`
}

func CountKpiStatuses(kpis []KpiMetric) KpiStatusCounts {
	var counts KpiStatusCounts
	for _, k := range kpis {
		switch k.Status {
		case KpiStatusOnTrack:
			counts.OnTrack++
		case KpiStatusAtRisk:
			counts.AtRisk++
		case KpiStatusBehind:
			counts.Behind++
		}
	}
	return counts
}

// KpiProgress retorna actual/target em porcentagem, limitado a 100
func KpiProgress(k KpiMetric) float64 {
	if k.Target <= 0 {
		if k.Actual > 0 {
			return 100
		}
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(math.Min(100, k.Actual/k.Target*100))
}

type RankingSummary struct {
	TotalKeywords      int     `json:"totalKeywords"`
	AverageCurrentRank float64 `json:"averageCurrentRank"`
	TotalVolume        int     `json:"totalVolume"`
	Improved           int     `json:"improved"`
	Declined           int     `json:"declined"`
}

func SummarizeRankings(rankings []SeoRanking) RankingSummary {
	summary := RankingSummary{TotalKeywords: len(rankings)}
	if len(rankings) == 0 {
		return summary
	}

	currentSum := 0
	for _, r := range rankings {
		currentSum += r.CurrentRank
		summary.TotalVolume += r.Volume
		switch {
		case r.Change > 0:
			summary.Improved++
		case r.Change < 0:
			summary.Declined++
		}
	}

	summary.AverageCurrentRank = math.Round(float64(currentSum)/float64(len(rankings))*10) / 10

	return summary
}
