package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
)

func newTestAuth() *AuthMiddleware {
	return NewAuthMiddleware(&config.Config{JWTSecretKey: "test-secret", JWTExpirationHours: 1})
}

func newAuthRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) (*gin.Engine, *domain.Identity) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	seen := &domain.Identity{}
	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err == nil {
			*seen = *identity
		}
		c.Status(http.StatusNoContent)
	})
	router.GET("/protected", handlers...)
	return router, seen
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	m := newTestAuth()
	router, seen := newAuthRouter(m)

	token, err := m.GenerateToken(&domain.Identity{
		ID:       "landlord-1",
		UserType: domain.UserTypeLandlord,
		Name:     "Jane Smith",
		Email:    "jane@example.com",
	})
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "landlord-1", seen.ID)
	assert.Equal(t, domain.UserTypeLandlord, seen.UserType)
	assert.Equal(t, "Jane Smith", seen.Name)
	assert.Equal(t, "jane@example.com", seen.Email)
}

func TestJWTAuth_Rejections(t *testing.T) {
	m := newTestAuth()
	router, _ := newAuthRouter(m)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		utils.UserIDClaim: "landlord-1",
		"exp":             time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{utils.UserIDClaim: "landlord-1"})
	wrongKeyToken, err := wrongKey.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{utils.UserTypeClaim: "landlord"})
	noSubjectToken, err := noSubject.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired", "Bearer " + expiredToken},
		{"wrong key", "Bearer " + wrongKeyToken},
		{"no user id", "Bearer " + noSubjectToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestRequireUserType(t *testing.T) {
	m := newTestAuth()
	router, _ := newAuthRouter(m, m.RequireUserType(domain.UserTypeLandlord))

	landlord, err := m.GenerateToken(&domain.Identity{ID: "u1", UserType: domain.UserTypeLandlord})
	require.NoError(t, err)
	tenant, err := m.GenerateToken(&domain.Identity{ID: "u2", UserType: domain.UserTypeTenant})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, doRequest(router, "Bearer "+landlord).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "Bearer "+tenant).Code)
}
