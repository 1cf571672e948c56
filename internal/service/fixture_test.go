package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

func TestFixtureProvider(t *testing.T) {
	cfg := config.ProviderConfig{Type: "fixture", FixturePath: "testdata/forecast.json", BucketHours: 3}
	p, err := NewFixture(cfg, locale.English(), time.UTC, zaptest.NewLogger(t), &telemetry.Telemetry{},
		WithFixtureClock(func() time.Time { return fixtureNow }))
	require.NoError(t, err)

	tl, err := p.Forecast(context.Background(), forecast.Location{City: "Berlin"})
	require.NoError(t, err)
	assert.Len(t, tl.Dates(), 3)
	assert.Equal(t, "fixture", p.Name())
}

func TestFixtureProviderMissingFile(t *testing.T) {
	cfg := config.ProviderConfig{Type: "fixture", FixturePath: "testdata/missing.json"}
	_, err := NewFixture(cfg, locale.English(), time.UTC, zaptest.NewLogger(t), nil)
	assert.ErrorIs(t, err, weathererr.ErrConfig)
}

func TestNewProviderRegistry(t *testing.T) {
	logger := zaptest.NewLogger(t)

	p, err := New(config.ProviderConfig{Type: "fixture", FixturePath: "testdata/forecast.json"}, locale.English(), time.UTC, logger, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixture", p.Name())

	p, err = New(config.ProviderConfig{Type: "openweathermap", APIKey: "k"}, locale.English(), time.UTC, logger, nil)
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", p.Name())

	_, err = New(config.ProviderConfig{Type: "darksky"}, locale.English(), time.UTC, logger, nil)
	assert.ErrorIs(t, err, weathererr.ErrConfig)

	assert.Equal(t, []string{"fixture", "openweathermap"}, Types())
}
