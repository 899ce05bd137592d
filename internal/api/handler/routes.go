package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/client-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/middleware"
)

type guard = func(http.Handler) http.Handler

func adminOnly() []guard { return []guard{middleware.AdminOnly()} }
func allRoles() []guard  { return []guard{middleware.AllRoles()} }
func clientOnly() []guard {
	return []guard{middleware.ClientOnly()}
}

func Healthcheck(store Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Session(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{Path: "/v1/session", Method: http.MethodGet, Handler: GetSession(service)},
		{Path: "/v1/session/challenge", Method: http.MethodPost, Handler: RegenerateChallenge(service)},
		{Path: "/v1/session/challenge/answer", Method: http.MethodPut, Handler: AnswerChallenge(service)},
		{Path: "/v1/session/login", Method: http.MethodPost, Handler: Login(service)},
		{Path: "/v1/session/account-request/open", Method: http.MethodPost, Handler: OpenAccountRequest(service)},
		{Path: "/v1/session/account-request/cancel", Method: http.MethodPost, Handler: CancelAccountRequest(service)},
		{Path: "/v1/session/account-request", Method: http.MethodPost, Handler: SubmitAccountRequest(service)},
		{
			Path:        "/v1/session/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: allRoles(),
		},
	}
}

func Navigation(service navigating.Navigator) []router.Route {
	return []router.Route{
		{Path: "/v1/navigation", Method: http.MethodGet, Handler: GetNavigation(service), Middlewares: allRoles()},
		{Path: "/v1/views/:tab", Method: http.MethodGet, Handler: GetView(service), Middlewares: allRoles()},
	}
}

func Clients(service managing.Manager) []router.Route {
	return []router.Route{
		{Path: "/v1/clients", Method: http.MethodGet, Handler: ListClients(service), Middlewares: adminOnly()},
		{Path: "/v1/clients", Method: http.MethodPost, Handler: CreateClient(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id", Method: http.MethodGet, Handler: GetClient(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id", Method: http.MethodPut, Handler: UpdateClient(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id/data", Method: http.MethodPut, Handler: UpdateClientData(service), Middlewares: adminOnly()},
		{
			Path:        "/v1/clients/:id/services/:service/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleService(service),
			Middlewares: adminOnly(),
		},
		{Path: "/v1/selected-client", Method: http.MethodPut, Handler: SelectClient(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id/tasks", Method: http.MethodPost, Handler: CreateTask(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id/tasks/:index", Method: http.MethodPut, Handler: UpdateTask(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id/tasks/:index", Method: http.MethodDelete, Handler: DeleteTask(service), Middlewares: adminOnly()},
		{Path: "/v1/clients/:id/approvals", Method: http.MethodPost, Handler: CreateApproval(service), Middlewares: adminOnly()},
		{
			Path:        "/v1/clients/:id/approvals/:approval_id/status",
			Method:      http.MethodPut,
			Handler:     UpdateApprovalStatus(service),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/approvals/:approval_id/status",
			Method:      http.MethodPut,
			Handler:     UpdateSelectedApprovalStatus(service),
			Middlewares: allRoles(),
		},
		{Path: "/v1/profile/photo", Method: http.MethodPut, Handler: UpdateProfilePhoto(service), Middlewares: clientOnly()},
		{Path: "/v1/settings", Method: http.MethodGet, Handler: GetSettings(service), Middlewares: adminOnly()},
		{Path: "/v1/settings", Method: http.MethodPut, Handler: UpdateSettings(service), Middlewares: adminOnly()},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{Path: "/v1/clients/:id/imports/:kind", Method: http.MethodPost, Handler: ImportText(service), Middlewares: adminOnly()},
		{
			Path:        "/v1/clients/:id/imports/:kind/xlsx",
			Method:      http.MethodPost,
			Handler:     ImportSpreadsheet(service),
			Middlewares: adminOnly(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{Path: "/v1/report", Method: http.MethodGet, Handler: GetReport(service), Middlewares: allRoles()},
		{Path: "/v1/report/pdf", Method: http.MethodGet, Handler: GetReportPDF(service), Middlewares: allRoles()},
	}
}

func Insights(service insighting.Insighter, manager managing.Manager) []router.Route {
	return []router.Route{
		{Path: "/v1/insights", Method: http.MethodGet, Handler: GetInsights(service, manager), Middlewares: allRoles()},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(services), Middlewares: adminOnly()},
		{Path: "/v1/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services), Middlewares: adminOnly()},
	}
}
