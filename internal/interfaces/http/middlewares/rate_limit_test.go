package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moura95/passmeter/internal/interfaces/http/ginx"
)

func setupRateLimitedRouter(cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(cfg).RateLimit())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func doPing(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return recorder
}

func TestRateLimiter(t *testing.T) {
	t.Run("should allow requests within the burst", func(t *testing.T) {
		// Arrange
		router := setupRateLimitedRouter(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 3})

		// Act & Assert
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusNoContent, doPing(router).Code)
		}
	})

	t.Run("should reject requests past the burst with 429", func(t *testing.T) {
		// Arrange
		router := setupRateLimitedRouter(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1})
		require.Equal(t, http.StatusNoContent, doPing(router).Code)

		// Act
		recorder := doPing(router)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

		var response ginx.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "rate limit exceeded")
	})

	t.Run("should not limit when rate is disabled", func(t *testing.T) {
		// Arrange
		router := setupRateLimitedRouter(RateLimiterConfig{RequestsPerSecond: 0, Burst: 0})

		// Act & Assert
		for i := 0; i < 50; i++ {
			assert.Equal(t, http.StatusNoContent, doPing(router).Code)
		}
	})
}
