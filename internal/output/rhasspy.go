package output

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

const ttsPath = "/api/text-to-speech?play=true"

// RhasspyTTS hands the answer text to Rhasspy's text to speech endpoint.
type RhasspyTTS struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewRhasspyTTS(cfg config.RhasspyConfig, logger *zap.Logger) (*RhasspyTTS, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: rhasspy url is not set", weathererr.ErrConfig)
	}
	return &RhasspyTTS{
		url:    strings.TrimRight(cfg.URL, "/") + ttsPath,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With(zap.String("output", "rhasspy_tts")),
	}, nil
}

func (r *RhasspyTTS) Name() string { return "rhasspy_tts" }

func (r *RhasspyTTS) Publish(ctx context.Context, env *Envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, strings.NewReader(env.Speech.Text))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", weathererr.ErrOutput, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: rhasspy responded with status %d", weathererr.ErrOutput, resp.StatusCode)
	}

	r.logger.Debug("Answer spoken", zap.String("request_id", env.RequestID))
	return nil
}

func (r *RhasspyTTS) Close() error { return nil }
