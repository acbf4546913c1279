package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLimitedRouter(t *testing.T, limiter *RateLimiter, trusted []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(limiter.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func limitedCall(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("limits are per client", func(t *testing.T) {
		r := newLimitedRouter(t, NewRateLimiter(2, nil), nil)

		assert.Equal(t, http.StatusOK, limitedCall(r, "203.0.113.7:4000", ""))
		assert.Equal(t, http.StatusOK, limitedCall(r, "203.0.113.7:4001", ""))
		assert.Equal(t, http.StatusTooManyRequests, limitedCall(r, "203.0.113.7:4002", ""))
		assert.Equal(t, http.StatusOK, limitedCall(r, "198.51.100.1:4000", ""))
	})

	t.Run("forwarding headers from an untrusted peer are ignored", func(t *testing.T) {
		limiter := NewRateLimiter(2, nil)
		r := newLimitedRouter(t, limiter, nil)

		allowed := 0
		for i := 0; i < 50; i++ {
			if limitedCall(r, "203.0.113.7:4000", fmt.Sprintf("10.1.%d.%d", i/250, i%250)) == http.StatusOK {
				allowed++
			}
		}
		assert.Equal(t, 2, allowed)
		assert.Equal(t, 1, limiter.Len())
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		limiter := NewRateLimiter(1, nil)
		r := newLimitedRouter(t, limiter, []string{"10.0.0.1"})

		assert.Equal(t, http.StatusOK, limitedCall(r, "10.0.0.1:80", "198.51.100.1"))
		assert.Equal(t, http.StatusOK, limitedCall(r, "10.0.0.1:80", "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, limitedCall(r, "10.0.0.1:80", "198.51.100.1"))
		assert.Equal(t, 2, limiter.Len())
	})
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clock := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, nil)
	limiter.now = func() time.Time { return clock }

	assert.True(t, limiter.allow("203.0.113.7"))
	assert.False(t, limiter.allow("203.0.113.7"))
	assert.True(t, limiter.allow("198.51.100.1"))
	assert.Equal(t, 2, limiter.Len())

	clock = clock.Add(visitorIdleTTL / 2)
	assert.True(t, limiter.allow("198.51.100.1"))

	clock = clock.Add(visitorIdleTTL/2 + time.Second)
	assert.True(t, limiter.allow("192.0.2.1"))
	assert.Equal(t, 2, limiter.Len(), "the client idle past the ttl is dropped")

	_, kept := limiter.visitors["198.51.100.1"]
	assert.True(t, kept)
	_, dropped := limiter.visitors["203.0.113.7"]
	assert.False(t, dropped)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(ContextRequestID)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestLoggerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RequestID(), Logger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")

	assert.Equal(t, 1, logs.FilterMessage("[http] recovered from panic").Len())
	requests := logs.FilterMessage("[http] request").All()
	require.Len(t, requests, 2)
	assert.Equal(t, "/ok", requests[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusInternalServerError, requests[1].ContextMap()["status"])
}
