package domain

type SeoRanking struct {
	Keyword      string `json:"keyword"`
	CurrentRank  int    `json:"currentRank"`
	PreviousRank int    `json:"previousRank"`
	Change       int    `json:"change"`
	Volume       int    `json:"volume"`
	URL          string `json:"url"`
}

// NewSeoRanking calcula a variação como previous - current (positivo = melhora)
func NewSeoRanking(keyword string, currentRank, previousRank, volume int, url string) SeoRanking {
	return SeoRanking{
		Keyword:      keyword,
		CurrentRank:  currentRank,
		PreviousRank: previousRank,
		Change:       previousRank - currentRank,
		Volume:       volume,
		URL:          url,
	}
}

type KpiStatus string

const (
	KpiStatusOnTrack KpiStatus = "on-track"
	KpiStatusAtRisk  KpiStatus = "at-risk"
	KpiStatusBehind  KpiStatus = "behind"
)

const kpiAtRiskThreshold = 0.8

func DeriveKpiStatus(target, actual float64) KpiStatus {
	switch {
	case actual >= target:
		return KpiStatusOnTrack
	case actual >= kpiAtRiskThreshold*target:
		return KpiStatusAtRisk
	default:
		return KpiStatusBehind
	}
}

type KpiMetric struct {
	Category string    `json:"category"`
	Metric   string    `json:"metric"`
	Target   float64   `json:"target"`
	Actual   float64   `json:"actual"`
	Status   KpiStatus `json:"status"`
}

func NewKpiMetric(category, metric string, target, actual float64) KpiMetric {
	return KpiMetric{
		Category: category,
		Metric:   metric,
		Target:   target,
		Actual:   actual,
		Status:   DeriveKpiStatus(target, actual),
	}
}

type AdPerformance struct {
	Campaign    string  `json:"campaign"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

type TechnicalTask struct {
	Task        string `json:"task"`
	Goal        string `json:"goal"`
	Status      string `json:"status"`
	IsCompleted bool   `json:"isCompleted"`
}

type RoadmapStatus string

const (
	RoadmapStatusCompleted RoadmapStatus = "completed"
	RoadmapStatusCurrent   RoadmapStatus = "current"
	RoadmapStatusUpcoming  RoadmapStatus = "upcoming"
)

type RoadmapItem struct {
	Phase  string        `json:"phase"`
	Title  string        `json:"title"`
	Status RoadmapStatus `json:"status"`
	Date   string        `json:"date"`
}

type DashboardData struct {
	Rankings          []SeoRanking    `json:"rankings"`
	KPIs              []KpiMetric     `json:"kpis"`
	GoogleAds         []AdPerformance `json:"googleAds"`
	MetaAds           []AdPerformance `json:"metaAds"`
	OtherKPIs         []TechnicalTask `json:"otherKpis"`
	Roadmap           []RoadmapItem   `json:"roadmap"`
	Visibility        float64         `json:"visibility"`
	OptimizationScore float64         `json:"optimizationScore"`
}

// EmptyDashboardData retorna um conjunto de dados com todas as listas vazias (nunca nil)
func EmptyDashboardData() DashboardData {
	return DashboardData{
		Rankings:  []SeoRanking{},
		KPIs:      []KpiMetric{},
		GoogleAds: []AdPerformance{},
		MetaAds:   []AdPerformance{},
		OtherKPIs: []TechnicalTask{},
		Roadmap:   []RoadmapItem{},
	}
}

func (d DashboardData) Clone() DashboardData {
	clone := d
	clone.Rankings = append([]SeoRanking{}, d.Rankings...)
	clone.KPIs = append([]KpiMetric{}, d.KPIs...)
	clone.GoogleAds = append([]AdPerformance{}, d.GoogleAds...)
	clone.MetaAds = append([]AdPerformance{}, d.MetaAds...)
	clone.OtherKPIs = append([]TechnicalTask{}, d.OtherKPIs...)
	clone.Roadmap = append([]RoadmapItem{}, d.Roadmap...)
	return clone
}

// Normalized devolve uma cópia com os campos derivados recalculados (status dos KPIs e variação das posições)
func (d DashboardData) Normalized() DashboardData {
	clone := d.Clone()
	for i, kpi := range clone.KPIs {
		clone.KPIs[i].Status = DeriveKpiStatus(kpi.Target, kpi.Actual)
	}
	for i, ranking := range clone.Rankings {
		clone.Rankings[i].Change = ranking.PreviousRank - ranking.CurrentRank
	}
	return clone
}

// IsPercentage indica se o valor está no intervalo 0..100
func IsPercentage(v float64) bool {
	return v >= 0 && v <= 100
}

// DatasetKind identifica qual lista do DashboardData uma importação substitui
type DatasetKind string

const (
	DatasetRankings DatasetKind = "rankings"
	DatasetKPIs     DatasetKind = "kpis"
	DatasetGoogle   DatasetKind = "google"
	DatasetMeta     DatasetKind = "meta"
)

var DatasetKinds = []DatasetKind{DatasetRankings, DatasetKPIs, DatasetGoogle, DatasetMeta}

func (k DatasetKind) IsValid() bool {
	for _, kind := range DatasetKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Dataset é o resultado tipado de uma importação; apenas o slice do Kind é preenchido
type Dataset struct {
	Kind     DatasetKind     `json:"kind"`
	Rankings []SeoRanking    `json:"rankings,omitempty"`
	KPIs     []KpiMetric     `json:"kpis,omitempty"`
	Ads      []AdPerformance `json:"ads,omitempty"`
}

func (d Dataset) Len() int {
	switch d.Kind {
	case DatasetRankings:
		return len(d.Rankings)
	case DatasetKPIs:
		return len(d.KPIs)
	case DatasetGoogle, DatasetMeta:
		return len(d.Ads)
	}
	return 0
}

// ReplaceDataset troca a lista inteira correspondente ao Kind, sem mesclar linhas
func (d *DashboardData) ReplaceDataset(dataset Dataset) bool {
	switch dataset.Kind {
	case DatasetRankings:
		d.Rankings = append([]SeoRanking{}, dataset.Rankings...)
	case DatasetKPIs:
		d.KPIs = append([]KpiMetric{}, dataset.KPIs...)
	case DatasetGoogle:
		d.GoogleAds = append([]AdPerformance{}, dataset.Ads...)
	case DatasetMeta:
		d.MetaAds = append([]AdPerformance{}, dataset.Ads...)
	default:
		return false
	}
	return true
}
