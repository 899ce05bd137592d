package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/middleware"
)

func periodFromQuery(r *http.Request) domain.ReportingPeriod {
	query := r.URL.Query()
	return domain.ReportingPeriod{
		Period:  query.Get("period"),
		Compare: query.Get("compare"),
	}.WithDefaults()
}

func currentRole(w http.ResponseWriter, r *http.Request) (domain.UserRole, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.Role, true
}

func GetNavigation(service navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := currentRole(w, r)
		if !ok {
			return
		}

		navigation, err := service.Navigation(role)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar navegação")
			return
		}

		writeJSON(w, http.StatusOK, navigation)
	}
}

// GetView devolve o conteúdo da aba; para clientes a aba pode ser trocada pela visão geral
func GetView(service navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := currentRole(w, r)
		if !ok {
			return
		}

		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Página inválida", nil)
				return
			}
			page = parsed
		}

		view, err := service.Dispatch(r.Context(), navigating.ViewRequest{
			Role:   role,
			Tab:    domain.Tab(httprouter.ParamsFromContext(r.Context()).ByName("tab")),
			Period: periodFromQuery(r),
			Page:   page,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar aba")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
