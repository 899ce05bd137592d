package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/metrics"
	"github.com/vfg2006/client-dashboard-api/pkg/validation"
	"golang.org/x/crypto/bcrypt"
)

const InquiryTransmittedMessage = "Inquiry Transmitted."

type Authenticator interface {
	Session() SessionView
	Challenge() Challenge
	RegenerateChallenge() Challenge
	SubmitAnswer(answer string) Challenge
	Login(ctx context.Context, request LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context) error
	OpenAccountRequest() SessionView
	CancelAccountRequest() SessionView
	SubmitAccountRequest(ctx context.Context, request AccountRequest) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	RememberedUsername(ctx context.Context) string
}

type LoginRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role"`
	Remember bool            `json:"remember"`
}

type LoginResult struct {
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Role       domain.UserRole `json:"role"`
	DefaultTab domain.Tab      `json:"defaultTab"`
}

type AccountRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

// SessionView é o que a tela de login precisa para se desenhar
type SessionView struct {
	IsLoggedIn         bool            `json:"isLoggedIn"`
	UserRole           domain.UserRole `json:"userRole"`
	Challenge          Challenge       `json:"challenge"`
	RequestingAccount  bool            `json:"requestingAccount"`
	RememberedUsername string          `json:"rememberedUsername,omitempty"`
}

type Service struct {
	state     *appstate.AppState
	cfg       *config.Config
	users     map[string]string
	challenge *challengeBox
	validate  *validator.Validate

	mu                sync.Mutex
	requestingAccount bool
}

type Option func(*serviceOptions)

type serviceOptions struct {
	intn func(n int) int
}

// WithRandom troca o sorteio do desafio; usado em testes
func WithRandom(intn func(n int) int) Option {
	return func(o *serviceOptions) {
		o.intn = intn
	}
}

func NewService(state *appstate.AppState, cfg *config.Config, opts ...Option) *Service {
	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Service{
		state:     state,
		cfg:       cfg,
		users:     cfg.Auth.UserHashes(),
		challenge: newChallengeBox(options.intn),
		validate:  validation.New(),
	}
}

func (s *Service) Session() SessionView {
	snapshot := s.state.Snapshot()

	s.mu.Lock()
	requesting := s.requestingAccount
	s.mu.Unlock()

	return SessionView{
		IsLoggedIn:         snapshot.Session.IsLoggedIn,
		UserRole:           snapshot.Session.UserRole,
		Challenge:          s.challenge.get(),
		RequestingAccount:  requesting,
		RememberedUsername: s.state.RememberedUsername(context.Background()),
	}
}

func (s *Service) Challenge() Challenge {
	return s.challenge.get()
}

func (s *Service) RegenerateChallenge() Challenge {
	return s.challenge.regenerate()
}

func (s *Service) SubmitAnswer(answer string) Challenge {
	return s.challenge.answer(answer)
}

func (s *Service) Login(ctx context.Context, request LoginRequest) (*LoginResult, error) {
	logger := log.ForContext(ctx).WithField("role", request.Role)

	if !s.challenge.get().Solved {
		metrics.Logins.WithLabelValues(string(request.Role), metrics.ResultFailure).Inc()
		return nil, NewAuthError(ErrChallengeUnsolved, apiErrors.ErrChallengeUnsolved, "Resolva a soma antes de entrar")
	}

	if !request.Role.IsValid() {
		metrics.Logins.WithLabelValues("invalid", metrics.ResultFailure).Inc()
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRole, fmt.Sprintf("papel %q", request.Role))
	}

	if !s.checkCredentials(request.Username, request.Password) {
		metrics.Logins.WithLabelValues(string(request.Role), metrics.ResultFailure).Inc()
		logger.Warn("Tentativa de login com credenciais inválidas")
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, request.Username, "Invalid credentials. Use demo/demo for testing.")
	}

	expiresAt := time.Now().Add(s.cfg.Auth.TokenTTL)
	token, err := generateJWT(request.Username, request.Role, expiresAt, s.cfg.SecretKey)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	_, err = s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		draft.Session = domain.Session{
			IsLoggedIn: true,
			UserRole:   request.Role,
			Username:   request.Username,
		}
		return nil
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao abrir sessão")
	}

	s.state.RememberUsername(ctx, request.Username, request.Remember)

	metrics.Logins.WithLabelValues(string(request.Role), metrics.ResultSuccess).Inc()
	logger.Info("Login realizado")

	return &LoginResult{
		Token:      token,
		ExpiresAt:  expiresAt,
		Role:       request.Role,
		DefaultTab: domain.DefaultTab(request.Role),
	}, nil
}

// checkCredentials aceita o literal de demonstração, usuários de AUTH_USERS e, no modo permissivo,
// qualquer senha com o tamanho mínimo
func (s *Service) checkCredentials(username, password string) bool {
	auth := s.cfg.Auth
	if strings.EqualFold(username, auth.DemoUsername) && strings.EqualFold(password, auth.DemoPassword) {
		return true
	}

	if hash, ok := s.users[strings.ToLower(strings.TrimSpace(username))]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			return true
		}
	}

	return auth.Permissive && utf8.RuneCountInString(password) >= auth.MinPasswordLength
}

func (s *Service) Logout(ctx context.Context) error {
	_, err := s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		draft.Session = domain.Session{IsLoggedIn: false, UserRole: draft.Session.UserRole}
		return nil
	})
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao encerrar sessão")
	}

	s.challenge.regenerate()
	log.ForContext(ctx).Info("Logout realizado")
	return nil
}

func (s *Service) OpenAccountRequest() SessionView {
	s.mu.Lock()
	s.requestingAccount = true
	s.mu.Unlock()

	return s.Session()
}

// CancelAccountRequest volta para a tela de login com um novo desafio
func (s *Service) CancelAccountRequest() SessionView {
	s.leaveAccountRequest()
	return s.Session()
}

func (s *Service) leaveAccountRequest() {
	s.mu.Lock()
	s.requestingAccount = false
	s.mu.Unlock()

	s.challenge.regenerate()
}

func (s *Service) SubmitAccountRequest(ctx context.Context, request AccountRequest) (string, error) {
	request.CompanyName = strings.TrimSpace(request.CompanyName)
	request.Email = strings.TrimSpace(request.Email)

	if err := s.validate.Struct(request); err != nil {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Empresa e email válidos são obrigatórios")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_company": request.CompanyName,
		"client_email":   request.Email,
	}).Info("Solicitação de conta recebida")

	s.leaveAccountRequest()
	return InquiryTransmittedMessage, nil
}

func generateJWT(username string, role domain.UserRole, expiresAt time.Time, secretKey string) (string, error) {
	claims := domain.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken só aceita tokens enquanto a sessão do console estiver aberta com o mesmo papel
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	session := s.state.Snapshot().Session
	if !session.IsLoggedIn {
		return nil, NewAuthError(ErrNotLoggedIn, apiErrors.ErrNotLoggedIn, "")
	}
	if session.UserRole != claims.Role {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "sessão substituída")
	}

	return claims, nil
}

func (s *Service) RememberedUsername(ctx context.Context) string {
	return s.state.RememberedUsername(ctx)
}
