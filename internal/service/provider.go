// Package service adapts weather providers into forecast timelines.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

// ForecastProvider fetches the hourly buckets for a location. Provider
// failures are returned as errors wrapping a weathererr sentinel.
type ForecastProvider interface {
	Forecast(ctx context.Context, loc forecast.Location) (*forecast.Timeline, error)
	Name() string
}

type Factory func(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry) (ForecastProvider, error)

var factories = map[string]Factory{
	"openweathermap": func(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry) (ForecastProvider, error) {
		return NewOpenWeatherMap(cfg, l, zone, logger, tele), nil
	},
	"fixture": func(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry) (ForecastProvider, error) {
		return NewFixture(cfg, l, zone, logger, tele)
	},
}

// New builds the provider named by cfg.Type.
func New(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry) (ForecastProvider, error) {
	factory, ok := factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown weather provider %q", weathererr.ErrConfig, cfg.Type)
	}
	return factory(cfg, l, zone, logger, tele)
}

// Types lists the registered provider types.
func Types() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func bucketWidth(cfg config.ProviderConfig) time.Duration {
	if cfg.BucketHours <= 0 {
		return 3 * time.Hour
	}
	return time.Duration(cfg.BucketHours) * time.Hour
}
