package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator é implementado pelo portão de autenticação
type TokenValidator interface {
	ValidateToken(token string) (*domain.Claims, error)
}

// publicPaths não exigem token; prefixos terminam com "/"
var publicPaths = []string{
	"/healthcheck",
	"/metrics",
	"/v1/session",
	"/v1/session/challenge",
	"/v1/session/challenge/answer",
	"/v1/session/login",
	"/v1/session/account-request",
	"/v1/session/account-request/",
}

func isPublicPath(path string) bool {
	for _, public := range publicPaths {
		if strings.HasSuffix(public, "/") {
			if strings.HasPrefix(path, public) {
				return true
			}
			continue
		}
		if path == public {
			return true
		}
	}
	return false
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retorna as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
