package domain

// ServiceTag identifica um módulo opcional do painel contratado pelo cliente
type ServiceTag string

const (
	ServiceRankings  ServiceTag = "rankings"
	ServiceKPIs      ServiceTag = "kpis"
	ServiceGoogle    ServiceTag = "google"
	ServiceMeta      ServiceTag = "meta"
	ServiceOtherKPIs ServiceTag = "other_kpis"
	ServiceRoadmap   ServiceTag = "roadmap"
	ServiceApprovals ServiceTag = "approvals"
)

var AllServices = []ServiceTag{
	ServiceRankings,
	ServiceKPIs,
	ServiceGoogle,
	ServiceMeta,
	ServiceOtherKPIs,
	ServiceRoadmap,
	ServiceApprovals,
}

func (s ServiceTag) IsValid() bool {
	for _, tag := range AllServices {
		if tag == s {
			return true
		}
	}
	return false
}

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
)

func (s KYCStatus) IsValid() bool {
	return s == KYCStatusPending || s == KYCStatusApproved
}

var Currencies = []string{"USD", "AED", "EUR", "GBP", "INR", "SAR", "QAR", "KWD"}

func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

type KYCData struct {
	CompanyName        string    `json:"companyName"`
	ContactPerson      string    `json:"contactPerson"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	TradeLicenseURL    string    `json:"tradeLicenseUrl,omitempty"`
	BrandBookURL       string    `json:"brandBookUrl,omitempty"`
	VATCertificateURL  string    `json:"vatCertificateUrl,omitempty"`
	ProfilePhotoURL    string    `json:"profilePhotoUrl,omitempty"`
	ContractSigned     bool      `json:"contractSigned"`
	RegistrationDate   Date      `json:"registrationDate"`
	ContractStartDate  Date      `json:"contractStartDate"`
	ContractExpiryDate Date      `json:"contractExpiryDate"`
	Status             KYCStatus `json:"status"`
	Currency           string    `json:"currency"`
}

type ClientProfile struct {
	ID               string            `json:"id"`
	KYC              KYCData           `json:"kyc"`
	AssignedServices []ServiceTag      `json:"assignedServices"`
	Data             DashboardData     `json:"data"`
	ContentApprovals []ContentApproval `json:"contentApprovals"`
}

func (c *ClientProfile) HasService(tag ServiceTag) bool {
	for _, s := range c.AssignedServices {
		if s == tag {
			return true
		}
	}
	return false
}

// ApprovalIndex retorna a posição da aprovação com o id informado ou -1
func (c *ClientProfile) ApprovalIndex(approvalID string) int {
	for i, approval := range c.ContentApprovals {
		if approval.ID == approvalID {
			return i
		}
	}
	return -1
}

// Clone faz uma cópia profunda do cliente
func (c *ClientProfile) Clone() *ClientProfile {
	if c == nil {
		return nil
	}

	clone := *c
	clone.AssignedServices = append([]ServiceTag(nil), c.AssignedServices...)
	clone.Data = c.Data.Clone()
	clone.ContentApprovals = append([]ContentApproval(nil), c.ContentApprovals...)

	return &clone
}

func CloneClients(clients []*ClientProfile) []*ClientProfile {
	cloned := make([]*ClientProfile, 0, len(clients))
	for _, c := range clients {
		cloned = append(cloned, c.Clone())
	}
	return cloned
}
