package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller for the current request. It is derived
// from verified token claims and lives only for the request's lifetime.
type Identity struct {
	UserID int64 `json:"userId"`
	RoleID int64 `json:"roleId"`
}

// Claims represents the signed token payload.
type Claims struct {
	UserID int64 `json:"userId"`
	RoleID int64 `json:"roleId"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and verifies signed tokens.
type TokenGenerator interface {
	GenerateToken(userID, roleID int64) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

type ctxKey string

const contextIdentityKey ctxKey = "identity"

// ContextWithIdentity stores the resolved identity for downstream handlers.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextIdentityKey, identity)
}

// IdentityFromContext returns the identity resolved by the auth middleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextIdentityKey).(*Identity)
	return identity, ok
}
