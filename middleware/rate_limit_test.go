package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/v1/plans", limiter, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestPlanRateLimiter_AllowsWithinLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := PlanRateLimiter(services.NewRateLimitService(client), 5, time.Minute)
	r := setupRateLimitRouter(limiter)

	mock.ExpectIncr("rate_limit:plan:1.2.3.4").SetVal(1)
	mock.ExpectExpire("rate_limit:plan:1.2.3.4", time.Minute).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRateLimiter_BlocksOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := PlanRateLimiter(services.NewRateLimitService(client), 5, time.Minute)
	r := setupRateLimitRouter(limiter)

	mock.ExpectIncr("rate_limit:plan:1.2.3.4").SetVal(6)
	mock.ExpectExpire("rate_limit:plan:1.2.3.4", time.Minute).SetVal(true)
	mock.ExpectTTL("rate_limit:plan:1.2.3.4").SetVal(30 * time.Second)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

func TestPlanRateLimiter_FailsOpenOnRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := PlanRateLimiter(services.NewRateLimitService(client), 5, time.Minute)
	r := setupRateLimitRouter(limiter)

	mock.ExpectIncr("rate_limit:plan:1.2.3.4").SetErr(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClientIP_HeaderPriority(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "x-forwarded-for wins",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2", "X-Real-IP": "10.0.0.3"},
			expected: "10.0.0.1",
		},
		{
			name:     "x-real-ip fallback",
			headers:  map[string]string{"X-Real-IP": "10.0.0.3"},
			expected: "10.0.0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(c))
		})
	}
}
