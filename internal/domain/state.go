package domain

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Session é o estado do portão de autenticação
type Session struct {
	IsLoggedIn bool     `json:"isLoggedIn"`
	UserRole   UserRole `json:"userRole"`
	Username   string   `json:"-"`
}

// DashboardState é o layout durável da entrada principal do armazenamento
type DashboardState struct {
	Clients    []*ClientProfile `json:"clients"`
	IsLoggedIn bool             `json:"isLoggedIn"`
	UserRole   UserRole         `json:"userRole"`
}
