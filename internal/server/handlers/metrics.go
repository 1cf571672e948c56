package handlers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/server/middlewares"
)

// AppMetrics holds answer level counters.
type AppMetrics struct {
	mutex          sync.RWMutex
	answers        map[string]int64
	errors         map[string]int64
	providerCalls  map[string]int64
	providerErrors map[string]int64
}

// HTTPMetricsSource is implemented by middlewares.HTTPMetrics.
type HTTPMetricsSource interface {
	Snapshot() middlewares.HTTPSnapshot
}

type MetricsHandler struct {
	logger     *zap.Logger
	appMetrics *AppMetrics
	http       HTTPMetricsSource
}

func NewMetricsHandler(logger *zap.Logger, httpMetrics HTTPMetricsSource) *MetricsHandler {
	return &MetricsHandler{
		logger: logger,
		appMetrics: &AppMetrics{
			answers:        make(map[string]int64),
			errors:         make(map[string]int64),
			providerCalls:  make(map[string]int64),
			providerErrors: make(map[string]int64),
		},
		http: httpMetrics,
	}
}

// RecordAnswer counts an answered question by request kind.
func (h *MetricsHandler) RecordAnswer(ctx context.Context, kind string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.answers[kind]++
	h.appMetrics.mutex.Unlock()
}

// RecordError counts a question answered with an error sentence.
func (h *MetricsHandler) RecordError(ctx context.Context, code string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.errors[code]++
	h.appMetrics.mutex.Unlock()
}

func (h *MetricsHandler) RecordProviderCall(ctx context.Context, provider string, success bool) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.providerCalls[provider]++
	if !success {
		h.appMetrics.providerErrors[provider]++
	}
	h.appMetrics.mutex.Unlock()
}

// ServeMetrics exposes the counters in the Prometheus text format.
func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	var b strings.Builder

	if h.http != nil {
		snap := h.http.Snapshot()

		var avgDuration float64
		if snap.DurationCount > 0 {
			avgDuration = snap.DurationSum / float64(snap.DurationCount)
		}

		header(&b, "http_requests_total", "Total number of HTTP requests", "counter")
		for _, r := range snap.Requests {
			b.WriteString("http_requests_total{method=\"" + r.Method + "\",route=\"" + r.Route + "\",status=\"" + r.Status + "\"} " +
				strconv.FormatInt(r.Count, 10) + "\n")
		}

		header(&b, "http_request_duration_seconds_avg", "Average duration of HTTP requests", "gauge")
		b.WriteString("http_request_duration_seconds_avg " + strconv.FormatFloat(avgDuration, 'f', 6, 64) + "\n")

		header(&b, "http_active_requests", "Number of active HTTP requests", "gauge")
		b.WriteString("http_active_requests " + strconv.FormatInt(snap.ActiveRequests, 10) + "\n")
	}

	h.appMetrics.mutex.RLock()
	defer h.appMetrics.mutex.RUnlock()

	series(&b, "weather_answers_total", "Questions answered by request kind", "kind", h.appMetrics.answers)
	series(&b, "weather_errors_total", "Questions answered with an error sentence", "code", h.appMetrics.errors)
	series(&b, "weather_provider_calls_total", "Weather provider calls", "provider", h.appMetrics.providerCalls)
	series(&b, "weather_provider_errors_total", "Failed weather provider calls", "provider", h.appMetrics.providerErrors)

	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.String(http.StatusOK, b.String())
}

func header(b *strings.Builder, name, help, typ string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("# HELP " + name + " " + help + "\n")
	b.WriteString("# TYPE " + name + " " + typ + "\n")
}

func series(b *strings.Builder, name, help, label string, values map[string]int64) {
	header(b, name, help, "counter")
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(name + "{" + label + "=\"" + k + "\"} " + strconv.FormatInt(values[k], 10) + "\n")
	}
}
