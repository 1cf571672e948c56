package weather

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/intent"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/output"
	"github.com/vzahanych/weather-answer/internal/request"
	"github.com/vzahanych/weather-answer/internal/service"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

var now = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

type recorder struct {
	mu        sync.Mutex
	answers   map[string]int
	errors    map[string]int
	providers map[string]int
}

func newRecorder() *recorder {
	return &recorder{answers: map[string]int{}, errors: map[string]int{}, providers: map[string]int{}}
}

func (r *recorder) RecordAnswer(_ context.Context, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[kind]++
}

func (r *recorder) RecordError(_ context.Context, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[code]++
}

func (r *recorder) RecordProviderCall(_ context.Context, provider string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[fmt.Sprintf("%s_%t", provider, success)]++
}

type failingProvider struct{ err error }

func (p failingProvider) Forecast(context.Context, forecast.Location) (*forecast.Timeline, error) {
	return nil, p.err
}

func (p failingProvider) Name() string { return "failing" }

type failingOutput struct{}

func (failingOutput) Publish(context.Context, *output.Envelope) error {
	return fmt.Errorf("%w: broker down", weathererr.ErrOutput)
}
func (failingOutput) Name() string { return "failing" }
func (failingOutput) Close() error { return nil }

func newTestService(t *testing.T, provider service.ForecastProvider, outputs ...output.Publisher) (*Service, *recorder) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	en := locale.English()

	if provider == nil {
		p, err := service.NewFixture(
			config.ProviderConfig{Type: "fixture", FixturePath: "../service/testdata/forecast.json", BucketHours: 3},
			en, time.UTC, zaptest.NewLogger(t), nil,
			service.WithFixtureClock(func() time.Time { return now }),
		)
		require.NoError(t, err)
		provider = p
	}

	s := New(cfg, en, time.UTC, provider, outputs, zaptest.NewLogger(t), nil,
		WithClock(func() time.Time { return now }),
		WithPicker(func(int) int { return 0 }),
	)
	rec := newRecorder()
	s.SetMetricsRecorder(rec)
	return s, rec
}

func ask(in request.Input) *intent.Message {
	return &intent.Message{Input: in, SiteID: "kitchen"}
}

func TestAnswer(t *testing.T) {
	s, rec := newTestService(t, nil)

	env := s.Answer(context.Background(), ask(request.Input{
		Intent:    request.IntentForecastCondition,
		Day:       "tomorrow",
		Condition: "rain",
	}))

	assert.Equal(t, "Yes, tomorrow could be rainy.", env.Speech.Text)
	assert.Empty(t, env.ErrorCode)
	assert.Equal(t, request.IntentForecastCondition, env.Intent.Name)
	assert.Equal(t, "kitchen", env.SiteID)
	assert.NotEmpty(t, env.RequestID)

	assert.Equal(t, 1, rec.answers["condition"])
	assert.Equal(t, 1, rec.providers["fixture_true"])
}

func TestAnswerWind(t *testing.T) {
	s, _ := newTestService(t, nil)

	env := s.Answer(context.Background(), ask(request.Input{
		Intent:    request.IntentForecastCondition,
		Day:       "tomorrow",
		Condition: "windy",
	}))
	assert.Contains(t, env.Speech.Text, "Yes")
}

func TestAnswerErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider service.ForecastProvider
		in       request.Input
		code     weathererr.Code
		text     string
	}{
		{
			name: "beyond the horizon",
			in:   request.Input{Intent: request.IntentForecast, Day: "31 december"},
			code: weathererr.CodeFutureWeather,
			text: "I don't know the weather this far ahead.",
		},
		{
			name: "unknown intent",
			in:   request.Input{Intent: "GetHoroscope"},
			code: weathererr.CodeNotImplement,
		},
		{
			name:     "provider unreachable",
			provider: failingProvider{err: fmt.Errorf("%w: dial tcp", weathererr.ErrNoNetwork)},
			in:       request.Input{Intent: request.IntentForecast},
			code:     weathererr.CodeNoNetwork,
			text:     "I don't have network.",
		},
		{
			name:     "unknown failure",
			provider: failingProvider{err: errors.New("boom")},
			in:       request.Input{Intent: request.IntentForecast},
			code:     weathererr.CodeGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestService(t, tt.provider)
			env := s.Answer(context.Background(), ask(tt.in))

			assert.Equal(t, string(tt.code), env.ErrorCode)
			assert.Equal(t, locale.English().ErrorPhrase(tt.code, func(int) int { return 0 }), env.Speech.Text)
			if tt.text != "" {
				assert.Equal(t, tt.text, env.Speech.Text)
			}
			assert.Equal(t, 1, rec.errors[string(tt.code)])
		})
	}
}

func TestAnswerKeepsRequestID(t *testing.T) {
	s, _ := newTestService(t, nil)

	ctx := WithRequestID(context.Background(), "req-42")
	env := s.Answer(ctx, ask(request.Input{Intent: request.IntentForecast, Day: "tomorrow"}))
	assert.Equal(t, "req-42", env.RequestID)
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestHandlePublishesToEveryOutput(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestService(t, nil, failingOutput{}, output.NewConsole(&buf))

	env, err := s.Handle(context.Background(), ask(request.Input{
		Intent: request.IntentForecastItem,
		Day:    "tomorrow",
		Item:   "umbrella",
	}))
	assert.ErrorIs(t, err, weathererr.ErrOutput)
	require.NotNil(t, env)
	assert.Equal(t, env.Speech.Text+"\n", buf.String(), "later outputs still run after a failure")
	assert.Contains(t, env.Speech.Text, "umbrella")

	assert.NoError(t, s.Close())
}

func TestDefaultLocation(t *testing.T) {
	loc := DefaultLocation(config.LocationConfig{City: "Berlin"})
	assert.Nil(t, loc.Coordinates)
	assert.Equal(t, "Berlin", loc.Name())

	loc = DefaultLocation(config.LocationConfig{Lat: 52.5, Lon: 13.4})
	require.NotNil(t, loc.Coordinates)
	assert.Equal(t, 13.4, loc.Coordinates.Longitude)
}
