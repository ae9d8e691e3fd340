package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// access-token claims as issued by the hosted auth service; the subject is the user id
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// resolves an opaque bearer token to a stable identity
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}
