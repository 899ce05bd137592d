package appstate

import "github.com/vfg2006/client-dashboard-api/internal/domain"

// Snapshot é uma versão completa e imutável do estado do console
type Snapshot struct {
	Clients          []*domain.ClientProfile
	Session          domain.Session
	Settings         domain.AdminSettings
	SelectedClientID string
}

func (s *Snapshot) Clone() *Snapshot {
	clone := *s
	clone.Clients = domain.CloneClients(s.Clients)
	return &clone
}

// Client retorna o cliente com o id informado e sua posição, ou nil e -1
func (s *Snapshot) Client(id string) (*domain.ClientProfile, int) {
	for i, c := range s.Clients {
		if c.ID == id {
			return c, i
		}
	}
	return nil, -1
}

// SelectedClient retorna o cliente selecionado; se o id não existir mais, o primeiro da lista
func (s *Snapshot) SelectedClient() *domain.ClientProfile {
	if client, _ := s.Client(s.SelectedClientID); client != nil {
		return client
	}
	if len(s.Clients) > 0 {
		return s.Clients[0]
	}
	return nil
}

func (s *Snapshot) durable() domain.DashboardState {
	return domain.DashboardState{
		Clients:    s.Clients,
		IsLoggedIn: s.Session.IsLoggedIn,
		UserRole:   s.Session.UserRole,
	}
}
