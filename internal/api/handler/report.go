package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/middleware"
)

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// buildReport usa clientId da query apenas para administradores
func buildReport(service reporting.Reporter, r *http.Request) (*domain.Report, error) {
	period := periodFromQuery(r)

	clientID := r.URL.Query().Get("clientId")
	claims, _ := middleware.ClaimsFromContext(r.Context())
	if clientID != "" && claims != nil && claims.Role == domain.RoleAdmin {
		return service.Build(clientID, period)
	}

	return service.BuildForSelected(period)
}

func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := buildReport(service, r)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetReportPDF(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := buildReport(service, r)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório")
			return
		}

		pdf, err := service.RenderPDF(r.Context(), report)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar PDF do relatório")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(report)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar PDF do relatório")
		}
	}
}

func reportFilename(report *domain.Report) string {
	name := strings.Trim(unsafeFilename.ReplaceAllString(report.CompanyName+" "+report.Period.Period, "-"), "-")
	if name == "" {
		name = "report"
	}
	return strings.ToLower(name) + ".pdf"
}
