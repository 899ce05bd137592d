package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/api/handler"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

var js = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	state   *appstate.AppState
	store   kvstore.Store
}

type fakeCron struct {
	triggered int
}

func (f *fakeCron) TriggerManualSync()        { f.triggered++ }
func (f *fakeCron) GetStatus() map[string]any { return map[string]any{"triggered": f.triggered} }

func newTestAPI(t *testing.T, cron *fakeCron) *testAPI {
	t.Helper()

	cfg := &config.Config{
		App: config.App{AllowedOrigins: []string{"http://localhost:5173"}},
		Auth: config.Auth{
			TokenTTL:          time.Hour,
			DemoUsername:      "demo",
			DemoPassword:      "demo",
			MinPasswordLength: 4,
			Permissive:        true,
		},
		SecretKey: "segredo-de-teste",
	}

	store := kvstore.NewMemoryStore()
	state := appstate.New(repository.NewStateRepository(store), appstate.WithDemoSeed(true))
	require.NoError(t, state.Load(context.Background()))

	manager := managing.NewService(state)
	services := Services{
		Authenticator: authenticating.NewService(state, cfg, authenticating.WithRandom(func(int) int { return 1 })),
		Manager:       manager,
		Importer:      importing.NewService(manager),
		Navigator:     navigating.NewService(state),
		Reporter:      reporting.NewService(manager),
		Insighter:     insighting.NewService(nil, manager),
		CronJobs:      handler.CronJobServices{InsightsRefreshService: cron},
		Store:         store,
	}

	return &testAPI{t: t, handler: NewHandler(cfg, services), state: state, store: store}
}

func (a *testAPI) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	a.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := js.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}
	return a.do(method, path, token, reader, "application/json")
}

// login resolve o desafio (sempre 2 + 2 com o gerador fixo) e devolve o token
func (a *testAPI) login(role domain.UserRole) string {
	a.t.Helper()

	rec := a.doJSON(http.MethodPut, "/v1/session/challenge/answer", "", map[string]string{"answer": "4"})
	require.Equal(a.t, http.StatusOK, rec.Code)

	rec = a.doJSON(http.MethodPost, "/v1/session/login", "", authenticating.LoginRequest{
		Username: "demo", Password: "demo", Role: role,
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var result authenticating.LoginResult
	require.NoError(a.t, js.Unmarshal(rec.Body.Bytes(), &result))
	return result.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, js.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthcheckAndMetrics(t *testing.T) {
	api := newTestAPI(t, &fakeCron{})

	rec := api.do(http.MethodGet, "/healthcheck", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSessionFlow(t *testing.T) {
	api := newTestAPI(t, &fakeCron{})

	t.Run("sessão inicial deslogada com desafio", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/session", "", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		session := decode[authenticating.SessionView](t, rec)
		assert.False(t, session.IsLoggedIn)
		assert.Equal(t, 2, session.Challenge.A)
		assert.Equal(t, 2, session.Challenge.B)
	})

	t.Run("login sem resolver o desafio é recusado", func(t *testing.T) {
		api.doJSON(http.MethodPost, "/v1/session/challenge", "", nil)

		rec := api.doJSON(http.MethodPost, "/v1/session/login", "", authenticating.LoginRequest{
			Username: "demo", Password: "demo", Role: domain.RoleClient,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrChallengeUnsolved, decode[apiErrors.APIError](t, rec).Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/v1/session/login", "", strings.NewReader("{"), "application/json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login e logout revogam o token", func(t *testing.T) {
		token := api.login(domain.RoleClient)

		rec := api.do(http.MethodGet, "/v1/navigation", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(http.MethodPost, "/v1/session/logout", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(http.MethodGet, "/v1/navigation", token, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("solicitação de conta", func(t *testing.T) {
		rec := api.doJSON(http.MethodPost, "/v1/session/account-request/open", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[authenticating.SessionView](t, rec).RequestingAccount)

		rec = api.doJSON(http.MethodPost, "/v1/session/account-request", "", authenticating.AccountRequest{
			CompanyName: "Nova Empresa", Email: "contato@nova.ae",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, authenticating.InquiryTransmittedMessage, decode[map[string]string](t, rec)["message"])
	})
}

func TestAuthorization(t *testing.T) {
	api := newTestAPI(t, &fakeCron{})

	tests := []struct {
		name   string
		role   domain.UserRole
		method string
		path   string
		status int
	}{
		{name: "sem token", method: http.MethodGet, path: "/v1/clients", status: http.StatusUnauthorized},
		{name: "cliente não lista clientes", role: domain.RoleClient, method: http.MethodGet, path: "/v1/clients", status: http.StatusForbidden},
		{name: "cliente não lê configurações", role: domain.RoleClient, method: http.MethodGet, path: "/v1/settings", status: http.StatusForbidden},
		{name: "admin lista clientes", role: domain.RoleAdmin, method: http.MethodGet, path: "/v1/clients", status: http.StatusOK},
		{name: "admin lê status das crons", role: domain.RoleAdmin, method: http.MethodGet, path: "/v1/cron/status", status: http.StatusOK},
		{name: "rota inexistente", role: domain.RoleAdmin, method: http.MethodGet, path: "/v1/nada", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ""
			if tt.role != "" {
				token = api.login(tt.role)
			}

			rec := api.do(tt.method, tt.path, token, nil, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestClientViews(t *testing.T) {
	api := newTestAPI(t, &fakeCron{})
	token := api.login(domain.RoleClient)

	t.Run("navegação do cliente", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/navigation", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		navigation := decode[navigating.Navigation](t, rec)
		assert.Equal(t, domain.TabOverview, navigation.DefaultTab)
	})

	t.Run("aba de ranking paginada", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/views/rankings?page=2", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[map[string]any](t, rec)
		assert.Equal(t, "rankings", view["tab"])
		content := view["content"].(map[string]any)
		assert.Len(t, content["rankings"], 20)
	})

	t.Run("aba de admin vira visão geral para cliente", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/views/admin_clients", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "overview", decode[map[string]any](t, rec)["tab"])
	})

	t.Run("página inválida", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/views/rankings?page=abc", token, nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cliente aprova conteúdo", func(t *testing.T) {
		rec := api.doJSON(http.MethodPut, "/v1/approvals/app-001/status", token, map[string]string{"status": "approved"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, domain.ApprovalStatusApproved, decode[domain.ContentApproval](t, rec).Status)

		rec = api.doJSON(http.MethodPut, "/v1/approvals/app-001/status", token, map[string]string{"status": "rejected"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cliente troca a foto de perfil", func(t *testing.T) {
		rec := api.doJSON(http.MethodPut, "/v1/profile/photo", token, managing.ProfilePhotoRequest{
			ProfilePhotoURL: "https://cdn.example.com/me.png",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "https://cdn.example.com/me.png", api.state.Snapshot().Clients[0].KYC.ProfilePhotoURL)
	})

	t.Run("insights sem gerador usam mensagem padrão", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/insights", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		insight := decode[domain.Insight](t, rec)
		assert.True(t, insight.Fallback)
		assert.Equal(t, insighting.ErrorAnalysisMessage, insight.Text)
	})

	t.Run("relatório em JSON e PDF", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/report?period=Q1+2024", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		report := decode[domain.Report](t, rec)
		assert.Equal(t, "Q1 2024", report.Period.Period)
		assert.NotEmpty(t, report.Sections)

		rec = api.do(http.MethodGet, "/v1/report/pdf", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "emaar-properties-may-2024.pdf")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})
}

func TestAdminClientManagement(t *testing.T) {
	api := newTestAPI(t, &fakeCron{})
	token := api.login(domain.RoleAdmin)

	rec := api.doJSON(http.MethodPost, "/v1/clients", token, managing.NewClientRequest{
		CompanyName:   "Nakheel",
		ContactPerson: "Sara",
		Email:         "sara@nakheel.ae",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.ClientProfile](t, rec)
	assert.True(t, strings.HasPrefix(created.ID, "client-"))

	t.Run("cadastro inválido não altera a lista", func(t *testing.T) {
		rec := api.doJSON(http.MethodPost, "/v1/clients", token, managing.NewClientRequest{CompanyName: "Sem email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, api.state.Snapshot().Clients, 2)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/v1/clients/client-404", token, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("importa texto colado", func(t *testing.T) {
		body := strings.NewReader("palm villas\t2\t5\t4400\t/palm\nmarina flats\t8\t6\t900\t/marina")
		rec := api.do(http.MethodPost, "/v1/clients/"+created.ID+"/imports/rankings", token, body, "text/plain")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 2, decode[importing.Result](t, rec).Rows)
	})

	t.Run("importação inválida devolve mensagem genérica", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/v1/clients/"+created.ID+"/imports/rankings", token, strings.NewReader("   "), "text/plain")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, importing.ParseFailedMessage, decode[apiErrors.APIError](t, rec).Message)
	})

	t.Run("importa planilha xlsx", func(t *testing.T) {
		book := excelize.NewFile()
		require.NoError(t, book.SetSheetRow("Sheet1", "A1", &[]any{"Category", "Metric", "Target", "Actual"}))
		require.NoError(t, book.SetSheetRow("Sheet1", "A2", &[]any{"SEO", "Leads", 100, 85}))
		buffer, err := book.WriteToBuffer()
		require.NoError(t, err)

		var form bytes.Buffer
		writer := multipart.NewWriter(&form)
		part, err := writer.CreateFormFile("file", "kpis.xlsx")
		require.NoError(t, err)
		_, err = part.Write(buffer.Bytes())
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		rec := api.do(http.MethodPost, "/v1/clients/"+created.ID+"/imports/kpis/xlsx?skipHeader=true", token, &form, writer.FormDataContentType())
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 1, decode[importing.Result](t, rec).Rows)

		client, _ := api.state.Snapshot().Client(created.ID)
		require.Len(t, client.Data.KPIs, 1)
		assert.Equal(t, domain.KpiStatusAtRisk, client.Data.KPIs[0].Status)
	})

	t.Run("tarefas", func(t *testing.T) {
		path := "/v1/clients/" + created.ID + "/tasks"

		rec := api.doJSON(http.MethodPost, path, token, domain.TechnicalTask{Task: "Schema", Goal: "100%"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Len(t, decode[[]domain.TechnicalTask](t, rec), 1)

		rec = api.doJSON(http.MethodPut, path+"/0", token, domain.TechnicalTask{Task: "Schema", Goal: "100%", IsCompleted: true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[[]domain.TechnicalTask](t, rec)[0].IsCompleted)

		rec = api.doJSON(http.MethodPut, path+"/"+strconv.Itoa(5), token, domain.TechnicalTask{Task: "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = api.do(http.MethodDelete, path+"/0", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]domain.TechnicalTask](t, rec))
	})

	t.Run("alterna serviço", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/v1/clients/"+created.ID+"/services/meta/toggle", token, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		client := decode[domain.ClientProfile](t, rec)
		assert.False(t, client.HasService(domain.ServiceMeta))
	})

	t.Run("seleciona cliente", func(t *testing.T) {
		rec := api.doJSON(http.MethodPut, "/v1/selected-client", token, map[string]string{"clientId": "client-001"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "client-001", api.state.Snapshot().SelectedClientID)
	})

	t.Run("configurações", func(t *testing.T) {
		rec := api.doJSON(http.MethodPut, "/v1/settings", token, map[string]any{"primaryColor": "#112233"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "#112233", decode[domain.AdminSettings](t, rec).PrimaryColor)

		rec = api.doJSON(http.MethodPut, "/v1/settings", token, map[string]any{"primaryColor": "azul"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCronJobs(t *testing.T) {
	cron := &fakeCron{}
	api := newTestAPI(t, cron)
	token := api.login(domain.RoleAdmin)

	rec := api.do(http.MethodPost, "/v1/cron/insights/run", token, nil, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, cron.triggered)

	rec = api.do(http.MethodPost, "/v1/cron/contracts/run", token, nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = api.do(http.MethodPost, "/v1/cron/desconhecida/run", token, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/v1/cron/all/run", token, nil, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, cron.triggered)
}
