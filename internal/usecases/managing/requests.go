package managing

import "github.com/vfg2006/client-dashboard-api/internal/domain"

// NewClientRequest reflete o formulário de cadastro do painel administrativo
type NewClientRequest struct {
	CompanyName        string              `json:"companyName" validate:"required"`
	ContactPerson      string              `json:"contactPerson" validate:"required"`
	Email              string              `json:"email" validate:"required,email"`
	Phone              string              `json:"phone"`
	ContractStartDate  domain.Date         `json:"startDate"`
	ContractExpiryDate domain.Date         `json:"expiryDate"`
	Currency           string              `json:"currency" validate:"omitempty,currency"`
	Services           []domain.ServiceTag `json:"services" validate:"omitempty,dive,service_tag"`
}

// UpdateClientRequest é uma atualização parcial; campos nil são mantidos (AssignedServices nil inclusive)
type UpdateClientRequest struct {
	CompanyName        *string              `json:"companyName" validate:"omitempty,min=1"`
	ContactPerson      *string              `json:"contactPerson" validate:"omitempty,min=1"`
	Email              *string              `json:"email" validate:"omitempty,email"`
	Phone              *string              `json:"phone"`
	TradeLicenseURL    *string              `json:"tradeLicenseUrl" validate:"omitempty,url"`
	BrandBookURL       *string              `json:"brandBookUrl" validate:"omitempty,url"`
	VATCertificateURL  *string              `json:"vatCertificateUrl" validate:"omitempty,url"`
	ProfilePhotoURL    *string              `json:"profilePhotoUrl" validate:"omitempty,url"`
	ContractSigned     *bool                `json:"contractSigned"`
	ContractStartDate  *domain.Date         `json:"contractStartDate"`
	ContractExpiryDate *domain.Date         `json:"contractExpiryDate"`
	Status             *domain.KYCStatus    `json:"status" validate:"omitempty,kyc_status"`
	Currency           *string              `json:"currency" validate:"omitempty,currency"`
	AssignedServices   []domain.ServiceTag  `json:"assignedServices" validate:"omitempty,dive,service_tag"`
}

// ProfilePhotoRequest é a única alteração que o próprio cliente faz no seu cadastro
type ProfilePhotoRequest struct {
	ProfilePhotoURL string `json:"profilePhotoUrl" validate:"required,url"`
}

type NewApprovalRequest struct {
	Title     string `json:"title" validate:"required"`
	CanvaLink string `json:"canvaLink" validate:"required,url"`
	Notes     string `json:"notes"`
}

type UpdateReportSettingsRequest struct {
	MainTitle        *string `json:"mainTitle"`
	CoverImage       *string `json:"coverImage" validate:"omitempty,url"`
	P1Heading        *string `json:"p1Heading"`
	P1SubHeading     *string `json:"p1SubHeading"`
	P2Heading        *string `json:"p2Heading"`
	P2Body           *string `json:"p2Body"`
	ShowSecurityPage *bool   `json:"showSecurityPage"`
}

type UpdateSettingsRequest struct {
	AgencyLogo      *string                      `json:"agencyLogo" validate:"omitempty,url"`
	URLSlug         *string                      `json:"urlSlug"`
	FooterCredit    *string                      `json:"footerCredit"`
	PrimaryColor    *string                      `json:"primaryColor" validate:"omitempty,hexcolor"`
	DefaultCurrency *string                      `json:"defaultCurrency" validate:"omitempty,currency"`
	ReportSettings  *UpdateReportSettingsRequest `json:"reportSettings"`
}
