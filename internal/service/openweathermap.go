package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
	"github.com/vzahanych/weather-answer/pkg/telemetry"
)

const forecastPath = "/data/2.5/forecast"

// OpenWeatherMap queries the 5 day / 3 hour forecast endpoint. Calls are
// rate limited and pass through a circuit breaker; failed calls are never
// retried.
type OpenWeatherMap struct {
	baseURL string
	apiKey  string
	units   string
	bucket  time.Duration

	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker

	locale *locale.Locale
	zone   *time.Location
	now    func() time.Time

	logger *zap.Logger
	tele   *telemetry.Telemetry
}

type OWMOption func(*OpenWeatherMap)

func WithHTTPClient(c *http.Client) OWMOption {
	return func(p *OpenWeatherMap) {
		p.client = c
	}
}

func WithProviderClock(now func() time.Time) OWMOption {
	return func(p *OpenWeatherMap) {
		p.now = now
	}
}

func NewOpenWeatherMap(cfg config.ProviderConfig, l *locale.Locale, zone *time.Location, logger *zap.Logger, tele *telemetry.Telemetry, opts ...OWMOption) *OpenWeatherMap {
	if zone == nil {
		zone = time.UTC
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps, burst := cfg.RateLimit, cfg.Burst
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	p := &OpenWeatherMap{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		units:   cfg.Units,
		bucket:  bucketWidth(cfg),
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweathermap",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		locale: l,
		zone:   zone,
		now:    time.Now,
		logger: logger.With(zap.String("provider", "openweathermap")),
		tele:   tele,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherMap) Name() string {
	return "openweathermap"
}

func (p *OpenWeatherMap) Forecast(ctx context.Context, loc forecast.Location) (*forecast.Timeline, error) {
	tracer := p.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "service.OpenWeatherMap.Forecast")
	defer span.End()
	span.SetAttributes(attribute.String("location", loc.Name()))

	tl, err := p.forecast(ctx, loc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Warn("Forecast request failed",
			zap.String("location", loc.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	dates := tl.Dates()
	span.SetAttributes(attribute.Int("dates", len(dates)))
	p.logger.Debug("Forecast fetched",
		zap.String("location", loc.Name()),
		zap.Int("dates", len(dates)),
	)
	return tl, nil
}

func (p *OpenWeatherMap) forecast(ctx context.Context, loc forecast.Location) (*forecast.Timeline, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: api key is not configured", weathererr.ErrAPIKey)
	}

	params, err := p.query(loc)
	if err != nil {
		return nil, err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %v", weathererr.ErrRateLimited, err)
	}

	body, err := p.fetch(ctx, p.baseURL+forecastPath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return DecodeForecast(bytes.NewReader(body), loc, DecodeOptions{
		Zone:      p.zone,
		Bucket:    p.bucket,
		Describer: p.locale,
		Now:       p.now(),
	})
}

// query selects coordinates, then zip code, then city name.
func (p *OpenWeatherMap) query(loc forecast.Location) (url.Values, error) {
	params := url.Values{}
	switch {
	case loc.Coordinates != nil:
		params.Set("lat", formatCoord(loc.Coordinates.Latitude))
		params.Set("lon", formatCoord(loc.Coordinates.Longitude))
	case loc.HasZip():
		params.Set("zip", loc.Zipcode+","+loc.CountryCode)
	case loc.City != "":
		params.Set("q", loc.City)
	default:
		return nil, fmt.Errorf("%w: no city, zip code or coordinates", weathererr.ErrLocationNotFound)
	}
	params.Set("APPID", p.apiKey)
	if p.units != "" {
		params.Set("units", p.units)
	}
	if p.locale != nil && p.locale.Language != "" {
		params.Set("lang", p.locale.Language)
	}
	return params, nil
}

type response struct {
	status int
	body   []byte
}

// fetch runs one GET through the breaker. Only rate limiting, server errors
// and transport failures count against the breaker.
func (p *OpenWeatherMap) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %v", weathererr.ErrNoNetwork, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read response body: %v", weathererr.ErrNoNetwork, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: status %d", weathererr.ErrRateLimited, resp.StatusCode)
		}
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: status %d", weathererr.ErrProvider, resp.StatusCode)
		}
		return response{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open: %v", weathererr.ErrProvider, err)
		}
		return nil, err
	}

	resp := result.(response)
	switch {
	case resp.status == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: status %d", weathererr.ErrAPIKey, resp.status)
	case resp.status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: status %d", weathererr.ErrLocationNotFound, resp.status)
	case resp.status < 200 || resp.status >= 300:
		return nil, fmt.Errorf("%w: status %d", weathererr.ErrProvider, resp.status)
	}
	return resp.body, nil
}
