package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

// JWTAuth verifies the bearer token and stores the caller identity both in
// the gin keys and in the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid authorization header format"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(bearerToken[1], &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid or expired token"})
			return
		}

		identity, err := utils.IdentityFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid token claims"})
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Set(string(utils.IdentityKey), identity)
		c.Request = c.Request.WithContext(utils.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// RequireUserType rejects callers whose account is not of the given type
func (m *AuthMiddleware) RequireUserType(userType domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
			return
		}

		if identity.UserType != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) GenerateToken(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		utils.UserIDClaim:   identity.ID,
		utils.UserTypeClaim: string(identity.UserType),
		utils.NameClaim:     identity.Name,
		utils.EmailClaim:    identity.Email,
		"exp":               now.Add(time.Duration(m.config.JWTExpirationHours) * time.Hour).Unix(),
		"iat":               now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}
