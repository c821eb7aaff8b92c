package utils

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

func TestGetIdentityFromContext_Claims(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsKey, jwt.MapClaims{
		"user_id":   "landlord-1",
		"user_type": "landlord",
		"name":      "John Smith",
		"email":     "john@example.com",
	})

	identity, err := GetIdentityFromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{
		ID:       "landlord-1",
		UserType: domain.UserTypeLandlord,
		Name:     "John Smith",
		Email:    "john@example.com",
	}, identity)
}

func TestGetIdentityFromContext_PrefersStoredIdentity(t *testing.T) {
	stored := &domain.Identity{ID: "u-1", UserType: domain.UserTypeTenant}
	ctx := WithIdentity(context.Background(), stored)
	ctx = context.WithValue(ctx, ClaimsKey, jwt.MapClaims{"user_id": "other"})

	identity, err := GetIdentityFromContext(ctx)

	require.NoError(t, err)
	assert.Same(t, stored, identity)
}

func TestGetIdentityFromContext_Errors(t *testing.T) {
	_, err := GetIdentityFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoClaimsInContext)

	ctx := context.WithValue(context.Background(), ClaimsKey, jwt.MapClaims{"name": "x"})
	_, err = GetIdentityFromContext(ctx)
	assert.ErrorIs(t, err, ErrNoUserIDInClaims)

	ctx = context.WithValue(context.Background(), ClaimsKey, jwt.MapClaims{"user_id": 42.0})
	_, err = GetIdentityFromContext(ctx)
	assert.ErrorIs(t, err, ErrInvalidUserIDType)
}
