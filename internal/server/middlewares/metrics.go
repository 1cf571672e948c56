package middlewares

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

const maxDurations = 1000

// HTTPMetrics counts requests per route and status.
type HTTPMetrics struct {
	mutex            sync.RWMutex
	requestsTotal    map[routeKey]int64
	requestDurations []float64
	activeRequests   int64
}

// RouteCount is one requests_total series.
type RouteCount struct {
	Method string
	Route  string
	Status string
	Count  int64
}

// HTTPSnapshot is a consistent copy of HTTPMetrics.
type HTTPSnapshot struct {
	Requests       []RouteCount
	ActiveRequests int64
	DurationCount  int
	DurationSum    float64
}

func newHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal:    make(map[routeKey]int64),
		requestDurations: make([]float64, 0),
	}
}

type routeKey struct {
	method string
	route  string
	status string
}

func (m *HTTPMetrics) Snapshot() HTTPSnapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := HTTPSnapshot{
		ActiveRequests: m.activeRequests,
		DurationCount:  len(m.requestDurations),
	}
	for _, d := range m.requestDurations {
		snap.DurationSum += d
	}

	for k, n := range m.requestsTotal {
		snap.Requests = append(snap.Requests, RouteCount{
			Method: k.method,
			Route:  k.route,
			Status: k.status,
			Count:  n,
		})
	}
	sort.Slice(snap.Requests, func(i, j int) bool {
		a, b := snap.Requests[i], snap.Requests[j]
		if a.Route != b.Route {
			return a.Route < b.Route
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.Status < b.Status
	})
	return snap
}

type MetricsMiddleware struct {
	logger  *zap.Logger
	tele    *telemetry.Telemetry
	metrics *HTTPMetrics
}

func NewMetricsMiddleware(logger *zap.Logger, tele *telemetry.Telemetry) *MetricsMiddleware {
	return &MetricsMiddleware{
		logger:  logger,
		tele:    tele,
		metrics: newHTTPMetrics(),
	}
}

func (m *MetricsMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		m.metrics.mutex.Lock()
		m.metrics.activeRequests++
		m.metrics.mutex.Unlock()

		c.Next()

		duration := time.Since(start).Seconds()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		key := routeKey{method: method, route: route, status: strconv.Itoa(c.Writer.Status())}

		m.metrics.mutex.Lock()
		m.metrics.requestsTotal[key]++
		m.metrics.requestDurations = append(m.metrics.requestDurations, duration)
		m.metrics.activeRequests--
		if len(m.metrics.requestDurations) > maxDurations {
			m.metrics.requestDurations = m.metrics.requestDurations[len(m.metrics.requestDurations)-maxDurations:]
		}
		m.metrics.mutex.Unlock()

		if m.tele.IsEnabled() {
			m.logger.Debug("HTTP metrics recorded",
				zap.String("method", method),
				zap.String("route", route),
				zap.Int("status", c.Writer.Status()),
				zap.Float64("duration", duration))
		}
	}
}

// GetHTTPMetrics returns the HTTP metrics for the metrics handler to expose.
func (m *MetricsMiddleware) GetHTTPMetrics() *HTTPMetrics {
	return m.metrics
}
