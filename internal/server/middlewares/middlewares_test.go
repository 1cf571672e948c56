package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vzahanych/weather-answer/internal/weather"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRequestIDMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(zaptest.NewLogger(t)))

	var fromCtx string
	engine.GET("/", func(c *gin.Context) {
		fromCtx = weather.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc", fromCtx)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), fromCtx)
}

func TestRecoveryMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(zaptest.NewLogger(t)))
	engine.Use(RecoveryMiddleware(zaptest.NewLogger(t), false))
	engine.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetricsMiddleware(zaptest.NewLogger(t), nil)
	engine := gin.New()
	engine.Use(m.Handler())
	engine.GET("/a", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a", nil))
	}
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/b", nil))

	snap := m.GetHTTPMetrics().Snapshot()
	require.Len(t, snap.Requests, 2)
	assert.Equal(t, RouteCount{Method: "GET", Route: "/a", Status: "200", Count: 3}, snap.Requests[0])
	assert.Equal(t, RouteCount{Method: "GET", Route: "unmatched", Status: "404", Count: 1}, snap.Requests[1])
	assert.Equal(t, 4, snap.DurationCount)
	assert.Zero(t, snap.ActiveRequests)
}
