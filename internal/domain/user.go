package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}
