package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

// Fixture serves a saved OpenWeatherMap payload from disk. The file is read
// on every call.
type Fixture struct {
	path   string
	bucket time.Duration
	locale *locale.Locale
	zone   *time.Location
	now    func() time.Time
	logger *zap.Logger
	tele   *telemetry.Telemetry
}

type FixtureOption func(*Fixture)

func WithFixtureClock(now func() time.Time) FixtureOption {
	return func(f *Fixture) {
		f.now = now
	}
}

func NewFixture(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry, opts ...FixtureOption) (*Fixture, error) {
	if cfg.FixturePath == "" {
		return nil, fmt.Errorf("%w: fixture provider needs fixture_path", weathererr.ErrConfig)
	}
	if _, err := os.Stat(cfg.FixturePath); err != nil {
		return nil, fmt.Errorf("%w: fixture %s: %v", weathererr.ErrConfig, cfg.FixturePath, err)
	}
	if zone == nil {
		zone = time.UTC
	}

	f := &Fixture{
		path:   cfg.FixturePath,
		bucket: bucketWidth(cfg),
		locale: l,
		zone:   zone,
		now:    time.Now,
		logger: logger.With(zap.String("provider", "fixture")),
		tele:   tele,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Fixture) Name() string {
	return "fixture"
}

func (f *Fixture) Forecast(ctx context.Context, loc forecast.Location) (*forecast.Timeline, error) {
	_, span := f.tele.GetTracer().Start(ctx, "service.Fixture.Forecast")
	defer span.End()
	span.SetAttributes(attribute.String("path", f.path))

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open fixture: %v", weathererr.ErrProvider, err)
	}
	defer file.Close()

	tl, err := DecodeForecast(file, loc, DecodeOptions{
		Zone:      f.zone,
		Bucket:    f.bucket,
		Describer: f.locale,
		Now:       f.now(),
	})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Fixture loaded", zap.String("path", f.path), zap.Int("dates", len(tl.Dates())))
	return tl, nil
}
