package domain

type ReportSettings struct {
	MainTitle        string `json:"mainTitle"`
	CoverImage       string `json:"coverImage"`
	P1Heading        string `json:"p1Heading"`
	P1SubHeading     string `json:"p1SubHeading"`
	P2Heading        string `json:"p2Heading"`
	P2Body           string `json:"p2Body"`
	ShowSecurityPage bool   `json:"showSecurityPage"`
}

// AdminSettings é a configuração única (por agência) de marca e relatório
type AdminSettings struct {
	AgencyLogo      string         `json:"agencyLogo"`
	URLSlug         string         `json:"urlSlug"`
	FooterCredit    string         `json:"footerCredit"`
	PrimaryColor    string         `json:"primaryColor"`
	DefaultCurrency string         `json:"defaultCurrency"`
	ReportSettings  ReportSettings `json:"reportSettings"`
}

func DefaultSettings() AdminSettings {
	return AdminSettings{
		AgencyLogo:      "https://aspirationworx.com/wp-content/uploads/2020/09/Aspiration-Worx-Logo.svg",
		URLSlug:         "aspiration-worx",
		FooterCredit:    "Aspiration Worx © 2011-2026",
		PrimaryColor:    "#4f46e5",
		DefaultCurrency: "AED",
		ReportSettings: ReportSettings{
			MainTitle:        "Performance report",
			CoverImage:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=2426&q=80",
			P1Heading:        "SEARCH ENGINE OPTIMISATION",
			P1SubHeading:     "DIGITAL MARKETING",
			P2Heading:        "Your website is secured by Godaddy Pro Partner Aspiration Worx",
			P2Body:           "Strategic infrastructure ensures high availability and secure data distribution.",
			ShowSecurityPage: true,
		},
	}
}
