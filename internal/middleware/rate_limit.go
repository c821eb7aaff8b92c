package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/utils"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

const rateLimitWindow = time.Minute

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// UserRateLimit limits each landlord to DefaultRateLimit requests per minute.
// It must run after JWTAuth.
func (m *RateLimitMiddleware) UserRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "User ID required for rate limiting"})
			return
		}

		m.limit(c, fmt.Sprintf("rate_limit:user:%s", identity.ID), m.userRateLimit(), "Rate limit exceeded")
	}
}

// GlobalRateLimit limits each client IP to limit requests per minute
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.limit(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

// limit counts the request against key in a fixed one minute window. Redis
// errors let the request through.
func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Reset", reset)

	if current >= limit {
		c.Header("X-RateLimit-Remaining", "0")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error{Error: message})
		return
	}

	if err := m.increment(ctx, key); err != nil {
		m.logger.Error("Redis increment error in rate limiting", err)
	}

	c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limit-(current+1), 0)))
	c.Next()
}

// increment counts one request. The window starts with the first request, so
// the TTL is only set when the counter is created.
func (m *RateLimitMiddleware) increment(ctx context.Context, key string) error {
	count, err := m.redis.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return m.redis.Expire(ctx, key, rateLimitWindow).Err()
	}
	return nil
}

func (m *RateLimitMiddleware) userRateLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000
}
