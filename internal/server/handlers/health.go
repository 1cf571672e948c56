package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	logger    *zap.Logger
	startTime time.Time
	locale    string
	provider  string
}

func NewHealthHandler(logger *zap.Logger, locale, provider string) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		startTime: time.Now(),
		locale:    locale,
		provider:  provider,
	}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).String(),
	})
}

// Readiness fails until a provider is wired.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.provider == "" {
		h.logger.Warn("Readiness check failed: no weather provider")
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Uptime: time.Since(h.startTime).String(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "ready",
		Uptime: time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Locale:    h.locale,
		Provider:  h.provider,
	})
}
