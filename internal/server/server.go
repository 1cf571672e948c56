// Package server exposes the answer engine over HTTP for Rhasspy remote
// intent handling.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/intent"
	"github.com/vzahanych/weather-answer/internal/server/handlers"
	"github.com/vzahanych/weather-answer/internal/server/middlewares"
	"github.com/vzahanych/weather-answer/internal/weather"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg     config.ServerConfig
	engine  *gin.Engine
	server  *http.Server
	svc     *weather.Service
	decoder intent.Decoder
	metrics *handlers.MetricsHandler
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

// NewServer wires the routes and registers the metrics handler as the
// answer metrics recorder of svc.
func NewServer(cfg *config.Config, svc *weather.Service, decoder intent.Decoder, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	httpMetrics := middlewares.NewMetricsMiddleware(logger, tele)

	engine.Use(middlewares.RequestIDMiddleware(logger))
	engine.Use(middlewares.LoggingMiddleware(logger, time.RFC3339, true))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))
	engine.Use(middlewares.TelemetryMiddleware(logger, tele))
	engine.Use(httpMetrics.Handler())

	metrics := handlers.NewMetricsHandler(logger, httpMetrics.GetHTTPMetrics())
	svc.SetMetricsRecorder(metrics)

	s := &Server{
		cfg:     cfg.Server,
		engine:  engine,
		svc:     svc,
		decoder: decoder,
		metrics: metrics,
		logger:  logger,
		tele:    tele,
	}
	s.setupRoutes(cfg)
	return s
}

func (s *Server) setupRoutes(cfg *config.Config) {
	intents := handlers.NewIntentHandler(s.svc, s.decoder, s.logger)
	api := s.engine.Group("/api")
	api.POST("/intent", intents.PostIntent)
	api.GET("/answer", intents.GetAnswer)

	// Health endpoints (Kubernetes friendly)
	health := handlers.NewHealthHandler(s.logger, cfg.Locale, s.svc.ProviderName())
	s.engine.GET("/health", health.Health)
	s.engine.GET("/health/live", health.Liveness)
	s.engine.GET("/health/ready", health.Readiness)

	s.engine.GET("/metrics", s.metrics.ServeMetrics)
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down server")
	return s.server.Shutdown(ctx)
}
