package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	IdentityKey ContextKey = "identity"

	UserIDClaim   = "user_id"
	UserTypeClaim = "user_type"
	NameClaim     = "name"
	EmailClaim    = "email"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoUserIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

// IdentityFromClaims builds the caller identity carried by a verified token.
// Optional claims that are missing or not strings are left empty.
func IdentityFromClaims(claims jwt.MapClaims) (*domain.Identity, error) {
	raw, exists := claims[UserIDClaim]
	if !exists {
		return nil, ErrNoUserIDInClaims
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return nil, ErrInvalidUserIDType
	}

	identity := &domain.Identity{ID: userID}
	if v, ok := claims[UserTypeClaim].(string); ok {
		identity.UserType = domain.UserType(v)
	}
	if v, ok := claims[NameClaim].(string); ok {
		identity.Name = v
	}
	if v, ok := claims[EmailClaim].(string); ok {
		identity.Email = v
	}
	return identity, nil
}

// GetIdentityFromContext returns the identity stored by the auth middleware,
// falling back to the raw claims. A nil identity with a nil error never happens.
func GetIdentityFromContext(c context.Context) (*domain.Identity, error) {
	if identity, ok := c.Value(IdentityKey).(*domain.Identity); ok && identity != nil {
		return identity, nil
	}

	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}
	return IdentityFromClaims(claims)
}

// WithIdentity stores identity in ctx.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}
