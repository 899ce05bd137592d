package navigating

import "github.com/vfg2006/client-dashboard-api/internal/domain"

// Navigation é o menu completo para o papel atual
type Navigation struct {
	Role       domain.UserRole   `json:"role"`
	Primary    []domain.TabEntry `json:"primary"`
	Secondary  []domain.TabEntry `json:"secondary"`
	DefaultTab domain.Tab        `json:"defaultTab"`
}

// VisibleTabs é o único filtro de abas: o menu e o despacho de conteúdo usam o mesmo resultado
func VisibleTabs(role domain.UserRole, client *domain.ClientProfile) []domain.TabEntry {
	if role == domain.RoleAdmin {
		return append([]domain.TabEntry{}, domain.AdminTabs...)
	}

	visible := make([]domain.TabEntry, 0, len(domain.ClientTabs))
	for _, entry := range domain.ClientTabs {
		if entry.RequiredService == "" || (client != nil && client.HasService(entry.RequiredService)) {
			visible = append(visible, entry)
		}
	}
	return visible
}

func secondaryTabs(role domain.UserRole) []domain.TabEntry {
	if role == domain.RoleAdmin {
		return []domain.TabEntry{}
	}
	return []domain.TabEntry{domain.ProfileTab}
}

// IsVisible considera as abas primárias e a secundária (perfil) do papel
func IsVisible(role domain.UserRole, client *domain.ClientProfile, tab domain.Tab) bool {
	for _, entry := range VisibleTabs(role, client) {
		if entry.ID == tab {
			return true
		}
	}
	for _, entry := range secondaryTabs(role) {
		if entry.ID == tab {
			return true
		}
	}
	return false
}

func BuildNavigation(role domain.UserRole, client *domain.ClientProfile) Navigation {
	return Navigation{
		Role:       role,
		Primary:    VisibleTabs(role, client),
		Secondary:  secondaryTabs(role),
		DefaultTab: domain.DefaultTab(role),
	}
}

func label(tab domain.Tab) string {
	for _, group := range [][]domain.TabEntry{domain.ClientTabs, domain.AdminTabs, {domain.ProfileTab}} {
		for _, entry := range group {
			if entry.ID == tab {
				return entry.Label
			}
		}
	}
	return string(tab)
}
