package authenticating

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			TokenTTL:          time.Hour,
			DemoUsername:      "demo",
			DemoPassword:      "demo",
			MinPasswordLength: 4,
			Permissive:        true,
		},
		SecretKey: "segredo-de-teste",
	}
}

// sequence devolve os valores em ordem, repetindo o último
func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func newTestService(t *testing.T, cfg *config.Config) (*Service, *appstate.AppState) {
	t.Helper()
	state := appstate.New(repository.NewStateRepository(kvstore.NewMemoryStore()), appstate.WithDemoSeed(true))
	require.NoError(t, state.Load(context.Background()))
	return NewService(state, cfg, WithRandom(sequence(2, 4, 6, 8))), state
}

func solve(s *Service) {
	c := s.Challenge()
	s.SubmitAnswer(strconv.Itoa(c.A + c.B))
}

func TestChallenge(t *testing.T) {
	s, _ := newTestService(t, testConfig())

	c := s.Challenge()
	assert.Equal(t, 3, c.A)
	assert.Equal(t, 5, c.B)
	assert.False(t, c.Solved)

	tests := []struct {
		name   string
		answer string
		solved bool
	}{
		{name: "soma correta", answer: "8", solved: true},
		{name: "soma com espaços", answer: " 8 ", solved: true},
		{name: "prefixo numérico como parseInt", answer: "8abc", solved: true},
		{name: "soma errada", answer: "9", solved: false},
		{name: "vazio", answer: "", solved: false},
		{name: "texto", answer: "oito", solved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.solved, s.SubmitAnswer(tt.answer).Solved)
		})
	}
}

func TestChallenge_RegenerateResetsAnswer(t *testing.T) {
	s, _ := newTestService(t, testConfig())
	solve(s)
	require.True(t, s.Challenge().Solved)

	c := s.RegenerateChallenge()
	assert.False(t, c.Solved)
	assert.Empty(t, c.Answer)
	assert.Equal(t, 7, c.A)
	assert.Equal(t, 9, c.B)
}

func TestLogin(t *testing.T) {
	strict := testConfig()
	strict.Auth.Permissive = false
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	strict.Auth.Users = []string{"ana:" + string(hash)}

	tests := []struct {
		name     string
		cfg      *config.Config
		solve    bool
		request  LoginRequest
		validate func(t *testing.T, result *LoginResult, err error, state *appstate.AppState)
	}{
		{
			name:    "desafio não resolvido bloqueia o login",
			cfg:     testConfig(),
			request: LoginRequest{Username: "demo", Password: "demo", Role: domain.RoleClient},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				assert.ErrorIs(t, err, ErrChallengeUnsolved)
				assert.False(t, state.Snapshot().Session.IsLoggedIn)
			},
		},
		{
			name:    "credencial de demonstração ignora maiúsculas",
			cfg:     testConfig(),
			solve:   true,
			request: LoginRequest{Username: "DEMO", Password: "Demo", Role: domain.RoleAdmin},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				require.NoError(t, err)
				assert.Equal(t, domain.TabAdminClients, result.DefaultTab)
				assert.NotEmpty(t, result.Token)
				session := state.Snapshot().Session
				assert.True(t, session.IsLoggedIn)
				assert.Equal(t, domain.RoleAdmin, session.UserRole)
			},
		},
		{
			name:    "modo permissivo aceita senha com quatro caracteres",
			cfg:     testConfig(),
			solve:   true,
			request: LoginRequest{Username: "qualquer", Password: "abcd", Role: domain.RoleClient},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				require.NoError(t, err)
				assert.Equal(t, domain.TabOverview, result.DefaultTab)
			},
		},
		{
			name:    "senha curta é rejeitada sem alterar a sessão",
			cfg:     testConfig(),
			solve:   true,
			request: LoginRequest{Username: "qualquer", Password: "abc", Role: domain.RoleClient},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Contains(t, authErr.Details, "Use demo/demo for testing.")
				assert.False(t, state.Snapshot().Session.IsLoggedIn)
			},
		},
		{
			name:    "papel inválido",
			cfg:     testConfig(),
			solve:   true,
			request: LoginRequest{Username: "demo", Password: "demo", Role: "root"},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				assert.ErrorIs(t, err, ErrInvalidRole)
			},
		},
		{
			name:    "modo estrito rejeita senha qualquer",
			cfg:     strict,
			solve:   true,
			request: LoginRequest{Username: "qualquer", Password: "abcdefgh", Role: domain.RoleClient},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:    "modo estrito aceita usuário configurado",
			cfg:     strict,
			solve:   true,
			request: LoginRequest{Username: "Ana", Password: "s3nha-forte", Role: domain.RoleClient},
			validate: func(t *testing.T, result *LoginResult, err error, state *appstate.AppState) {
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, state := newTestService(t, tt.cfg)
			if tt.solve {
				solve(s)
			}

			result, err := s.Login(context.Background(), tt.request)
			tt.validate(t, result, err, state)
		})
	}
}

func TestLogin_RememberUsername(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, testConfig())
	solve(s)

	_, err := s.Login(ctx, LoginRequest{Username: "ahmed", Password: "demo1", Role: domain.RoleClient, Remember: true})
	require.NoError(t, err)
	assert.Equal(t, "ahmed", s.RememberedUsername(ctx))

	_, err = s.Login(ctx, LoginRequest{Username: "ahmed", Password: "demo1", Role: domain.RoleClient})
	require.NoError(t, err)
	assert.Empty(t, s.RememberedUsername(ctx))
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, testConfig())
	solve(s)

	result, err := s.Login(ctx, LoginRequest{Username: "demo", Password: "demo", Role: domain.RoleClient})
	require.NoError(t, err)

	claims, err := s.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Username)
	assert.Equal(t, domain.RoleClient, claims.Role)

	_, err = s.ValidateToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	before := s.Challenge()
	require.NoError(t, s.Logout(ctx))
	assert.NotEqual(t, before, s.Challenge())
	assert.False(t, s.Challenge().Solved)

	_, err = s.ValidateToken(result.Token)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	s, _ := newTestService(t, cfg)

	token, err := generateJWT("demo", domain.RoleClient, time.Now().Add(-time.Minute), cfg.SecretKey)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestAccountRequest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, testConfig())

	view := s.OpenAccountRequest()
	assert.True(t, view.RequestingAccount)

	_, err := s.SubmitAccountRequest(ctx, AccountRequest{CompanyName: "Acme", Email: "invalido"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
	assert.True(t, s.Session().RequestingAccount)

	before := s.Challenge()
	message, err := s.SubmitAccountRequest(ctx, AccountRequest{CompanyName: "Acme", Email: "ceo@acme.com"})
	require.NoError(t, err)
	assert.Equal(t, InquiryTransmittedMessage, message)
	assert.False(t, s.Session().RequestingAccount)
	assert.NotEqual(t, before, s.Challenge())

	s.OpenAccountRequest()
	view = s.CancelAccountRequest()
	assert.False(t, view.RequestingAccount)
}
