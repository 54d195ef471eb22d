//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(1, 2)
	router := gin.New()
	router.POST("/ai-symptoms", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := range 2 {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/ai-symptoms", nil, "")
		require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/ai-symptoms", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
}

func TestRateLimiter_NonPositiveSettingsStillAllowOne(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(0, 0)
	router := gin.New()
	router.GET("/x", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusOK, httptest.PerformRequest(t, router, http.MethodGet, "/x", nil, "").Code)
	require.Equal(t, http.StatusTooManyRequests, httptest.PerformRequest(t, router, http.MethodGet, "/x", nil, "").Code)
}
