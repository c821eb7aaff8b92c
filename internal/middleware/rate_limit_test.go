package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestUserRateLimit_RequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewRateLimitMiddleware(unreachableRedis(), &config.Config{DefaultRateLimit: 5}, logger.NewNop())

	router := gin.New()
	router.GET("/docs", m.UserRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/docs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := unreachableRedis()
	defer client.Close()
	m := NewRateLimitMiddleware(client, &config.Config{DefaultRateLimit: 5}, logger.NewNop())

	router := gin.New()
	router.GET("/docs", func(c *gin.Context) {
		c.Request = c.Request.WithContext(utils.WithIdentity(c.Request.Context(), &domain.Identity{ID: "landlord-1"}))
		c.Next()
	}, m.UserRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/docs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRateLimitDefault(t *testing.T) {
	m := NewRateLimitMiddleware(nil, &config.Config{}, logger.NewNop())
	assert.Equal(t, 1000, m.userRateLimit())

	m = NewRateLimitMiddleware(nil, &config.Config{DefaultRateLimit: 42}, logger.NewNop())
	assert.Equal(t, 42, m.userRateLimit())
}

func newLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	m := NewRateLimitMiddleware(client, &config.Config{DefaultRateLimit: limit}, logger.NewNop())
	router := gin.New()
	router.GET("/docs", func(c *gin.Context) {
		c.Request = c.Request.WithContext(utils.WithIdentity(c.Request.Context(), &domain.Identity{ID: "landlord-1"}))
		c.Next()
	}, m.UserRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func getDocs(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/docs", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestUserRateLimit_BlocksWithinWindow(t *testing.T) {
	router, mr := newLimitedRouter(t, 3)

	for i := 0; i < 3; i++ {
		w := getDocs(router)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := getDocs(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, getDocs(router).Code)
}

func TestUserRateLimit_WindowResetsUnderSteadyTraffic(t *testing.T) {
	router, mr := newLimitedRouter(t, 3)

	// One request every 50s never puts more than two in a single minute.
	for i := 0; i < 6; i++ {
		w := getDocs(router)
		assert.Equal(t, http.StatusOK, w.Code, "request at %ds", i*50)
		mr.FastForward(50 * time.Second)
	}
}

func TestUserRateLimit_TTLSetOnlyOnFirstRequest(t *testing.T) {
	router, mr := newLimitedRouter(t, 10)

	getDocs(router)
	mr.FastForward(30 * time.Second)
	getDocs(router)

	assert.Equal(t, 30*time.Second, mr.TTL("rate_limit:user:landlord-1"))
	count, err := mr.Get("rate_limit:user:landlord-1")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}
