package domain

var (
	ReportingPeriods = []string{"May 2024", "April 2024", "Q1 2024", "Year to Date"}
	ComparePeriods   = []string{"Previous Month", "Previous Quarter", "Previous Year"}
)

type ReportingPeriod struct {
	Period  string `json:"period"`
	Compare string `json:"compare"`
}

func DefaultReportingPeriod() ReportingPeriod {
	return ReportingPeriod{Period: ReportingPeriods[0], Compare: ComparePeriods[0]}
}

// WithDefaults preenche os campos vazios com o período padrão
func (p ReportingPeriod) WithDefaults() ReportingPeriod {
	defaults := DefaultReportingPeriod()
	if p.Period == "" {
		p.Period = defaults.Period
	}
	if p.Compare == "" {
		p.Compare = defaults.Compare
	}
	return p
}

type SectionKind string

const (
	SectionCover    SectionKind = "cover"
	SectionSecurity SectionKind = "security"
	SectionOverview SectionKind = "overview"
	SectionSEO      SectionKind = "seo"
	SectionPaidAds  SectionKind = "paid_ads"
)

type CoverSection struct {
	MainTitle       string `json:"mainTitle"`
	CoverImage      string `json:"coverImage"`
	Heading         string `json:"heading"`
	SubHeading      string `json:"subHeading"`
	CompanyName     string `json:"companyName"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	AgencyLogo      string `json:"agencyLogo"`
	Period          string `json:"period"`
}

type SecuritySection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Agency  string `json:"agency"`
}

type OverviewSection struct {
	Status            string      `json:"status"`
	Currency          string      `json:"currency"`
	TotalAdSpend      float64     `json:"totalAdSpend"`
	TotalLeads        int         `json:"totalLeads"`
	Visibility        float64     `json:"visibility"`
	OptimizationScore float64     `json:"optimizationScore"`
	TargetKeywords    int         `json:"targetKeywords"`
	ShowKeyMetrics    bool        `json:"showKeyMetrics"`
	KPIs              []KpiMetric `json:"kpis,omitempty"`
}

type SeoSection struct {
	TopRankings        []SeoRanking `json:"topRankings"`
	AverageCurrentRank float64      `json:"averageCurrentRank"`
	TotalVolume        int          `json:"totalVolume"`
}

type PaidAdsSection struct {
	Currency     string             `json:"currency"`
	Google       *AdPlatformSummary `json:"google,omitempty"`
	Meta         *AdPlatformSummary `json:"meta,omitempty"`
	TopCampaigns []AdPerformance    `json:"topCampaigns"`
}

// ReportSection é uma página do relatório; apenas o bloco correspondente ao Kind é preenchido
type ReportSection struct {
	Number   int              `json:"number"`
	Kind     SectionKind      `json:"kind"`
	Title    string           `json:"title"`
	Cover    *CoverSection    `json:"cover,omitempty"`
	Security *SecuritySection `json:"security,omitempty"`
	Overview *OverviewSection `json:"overview,omitempty"`
	SEO      *SeoSection      `json:"seo,omitempty"`
	PaidAds  *PaidAdsSection  `json:"paidAds,omitempty"`
}

type Report struct {
	ClientID     string          `json:"clientId"`
	CompanyName  string          `json:"companyName"`
	MainTitle    string          `json:"mainTitle"`
	AgencyLogo   string          `json:"agencyLogo"`
	FooterCredit string          `json:"footerCredit"`
	PrimaryColor string          `json:"primaryColor"`
	Period       ReportingPeriod `json:"period"`
	Sections     []ReportSection `json:"sections"`
}

func (r Report) Kinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(r.Sections))
	for _, s := range r.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}
