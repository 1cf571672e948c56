// Package weather answers decoded questions end to end.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/answer"
	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/intent"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/output"
	"github.com/vzahanych/weather-answer/internal/request"
	"github.com/vzahanych/weather-answer/internal/service"
	"github.com/vzahanych/weather-answer/internal/weathererr"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

// MetricsRecorder receives one call per answered question.
type MetricsRecorder interface {
	RecordAnswer(ctx context.Context, kind string)
	RecordError(ctx context.Context, code string)
	RecordProviderCall(ctx context.Context, provider string, success bool)
}

type Service struct {
	locale   *locale.Locale
	zone     *time.Location
	parser   *request.Parser
	composer *answer.Composer
	provider service.ForecastProvider
	outputs  []output.Publisher

	now  func() time.Time
	pick func(n int) int

	logger  *zap.Logger
	tele    *telemetry.Telemetry
	metrics MetricsRecorder
}

type Option func(*Service)

// WithClock replaces time.Now for parsing and window resolution.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithPicker replaces the random phrase choice.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		s.pick = pick
	}
}

func New(
	cfg *config.Config,
	l *locale.Locale,
	zone *time.Location,
	provider service.ForecastProvider,
	outputs []output.Publisher,
	logger *zap.Logger,
	tele *telemetry.Telemetry,
	opts ...Option,
) *Service {
	s := &Service{
		locale:   l,
		zone:     zone,
		provider: provider,
		outputs:  outputs,
		now:      time.Now,
		pick:     rand.IntN,
		logger:   logger,
		tele:     tele,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = request.NewParser(l, zone,
		request.WithClock(s.now),
		request.WithDefaultLocation(DefaultLocation(cfg.Location)),
		request.WithDetail(cfg.Answer.Detail),
	)
	s.composer = answer.New(l, Thresholds(cfg.Answer),
		answer.WithPicker(s.pick),
		answer.WithCloudsClearExclusive(cfg.Answer.CloudsClearExclusive),
	)
	return s
}

func (s *Service) SetMetricsRecorder(metrics MetricsRecorder) {
	s.metrics = metrics
}

func (s *Service) Locale() *locale.Locale { return s.locale }

// ProviderName is empty when no provider is wired.
func (s *Service) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// DefaultLocation converts the configured location.
func DefaultLocation(cfg config.LocationConfig) forecast.Location {
	loc := forecast.Location{
		City:        cfg.City,
		Zipcode:     cfg.Zipcode,
		CountryCode: cfg.CountryCode,
	}
	if cfg.HasCoordinates() {
		loc.Coordinates = &forecast.Coordinates{Latitude: cfg.Lat, Longitude: cfg.Lon}
	}
	return loc
}

func Thresholds(cfg config.AnswerConfig) forecast.Thresholds {
	return forecast.Thresholds{
		WarmFrom:  cfg.WarmFrom,
		ColdTo:    cfg.ColdTo,
		WindyFrom: cfg.WindyFrom,
	}
}

// Answer turns msg into an envelope. Domain errors never fail the call: the
// envelope then carries the locale's error sentence and the error code.
func (s *Service) Answer(ctx context.Context, msg *intent.Message) *output.Envelope {
	tracer := s.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "weather.Answer")
	defer span.End()

	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := s.logger.With(zap.String("request_id", requestID))

	span.SetAttributes(
		attribute.String("request_id", requestID),
		attribute.String("intent", msg.Input.Intent),
	)

	env := &output.Envelope{
		Intent:    output.Intent{Name: msg.Input.Intent},
		SiteID:    msg.SiteID,
		SessionID: msg.SessionID,
		RequestID: requestID,
	}

	reqLogger.Debug("Question received",
		zap.String("intent", msg.Input.Intent),
		zap.String("day", msg.Input.Day),
		zap.String("time", msg.Input.Time),
		zap.String("location", msg.Input.Location),
	)

	text, kind, err := s.answer(ctx, msg.Input)
	if err != nil {
		code := weathererr.CodeOf(err)
		env.Speech.Text = s.locale.ErrorPhrase(code, s.pick)
		env.ErrorCode = string(code)

		s.tele.RecordError(ctx, err, map[string]string{
			"error_code": string(code),
			"request_id": requestID,
		})
		span.SetStatus(codes.Error, string(code))
		if s.metrics != nil {
			s.metrics.RecordError(ctx, string(code))
		}

		fields := []zap.Field{zap.String("error_code", string(code)), zap.Error(err)}
		if code == weathererr.CodeGeneral {
			reqLogger.Error("Question failed", fields...)
		} else {
			reqLogger.Info("Question answered with error", fields...)
		}
		return env
	}

	env.Speech.Text = text
	span.SetAttributes(attribute.String("kind", kind.String()))
	if s.metrics != nil {
		s.metrics.RecordAnswer(ctx, kind.String())
	}
	reqLogger.Info("Question answered", zap.String("kind", kind.String()), zap.String("text", text))
	return env
}

func (s *Service) answer(ctx context.Context, in request.Input) (string, request.Kind, error) {
	req, err := s.parser.Parse(in)
	if err != nil {
		return "", request.KindFull, err
	}

	tl, err := s.provider.Forecast(ctx, req.Location)
	if s.metrics != nil {
		s.metrics.RecordProviderCall(ctx, s.provider.Name(), err == nil)
	}
	if err != nil {
		return "", req.Kind, fmt.Errorf("fetch forecast: %w", err)
	}

	r := forecast.NewResolver(tl, s.zone, forecast.WithClock(s.now))
	text, err := s.composer.Compose(req, r)
	if err != nil {
		return "", req.Kind, err
	}
	return text, req.Kind, nil
}

// Publish hands env to every output. All outputs are tried; the returned
// error joins the failures.
func (s *Service) Publish(ctx context.Context, env *output.Envelope) error {
	var errs []error
	for _, p := range s.outputs {
		if err := p.Publish(ctx, env); err != nil {
			s.logger.Warn("Output failed",
				zap.String("output", p.Name()),
				zap.String("request_id", env.RequestID),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Handle answers msg and publishes the result.
func (s *Service) Handle(ctx context.Context, msg *intent.Message) (*output.Envelope, error) {
	env := s.Answer(ctx, msg)
	return env, s.Publish(ctx, env)
}

func (s *Service) Close() error {
	return output.CloseAll(s.outputs)
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
