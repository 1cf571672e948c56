// Package output delivers answers to their listeners.
package output

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Envelope is the answer in Rhasspy's remote intent response shape.
type Envelope struct {
	Speech    Speech `json:"speech"`
	Intent    Intent `json:"intent"`
	SiteID    string `json:"siteId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	RequestID string `json:"request_id"`
	ErrorCode string `json:"error_code,omitempty"`
}

type Speech struct {
	Text string `json:"text"`
}

type Intent struct {
	Name string `json:"name"`
}

type Publisher interface {
	Publish(ctx context.Context, env *Envelope) error
	Name() string
	Close() error
}

type Factory func(cfg *config.Config, logger *zap.Logger) (Publisher, error)

var factories = map[string]Factory{
	"console": func(cfg *config.Config, logger *zap.Logger) (Publisher, error) {
		return NewConsole(nil), nil
	},
	"mqtt": func(cfg *config.Config, logger *zap.Logger) (Publisher, error) {
		return NewMQTT(cfg.MQTT, logger)
	},
	"kafka": func(cfg *config.Config, logger *zap.Logger) (Publisher, error) {
		return NewKafka(cfg.Kafka, logger)
	},
	"rhasspy_tts": func(cfg *config.Config, logger *zap.Logger) (Publisher, error) {
		return NewRhasspyTTS(cfg.Rhasspy, logger)
	},
}

// New builds one publisher per configured output name. Publishers built
// before a failure are closed.
func New(cfg *config.Config, logger *zap.Logger) ([]Publisher, error) {
	out := make([]Publisher, 0, len(cfg.Outputs))
	for _, name := range cfg.Outputs {
		factory, ok := factories[name]
		if !ok {
			_ = CloseAll(out)
			return nil, fmt.Errorf("%w: unknown output %q", weathererr.ErrConfig, name)
		}
		p, err := factory(cfg, logger)
		if err != nil {
			_ = CloseAll(out)
			return nil, fmt.Errorf("output %s: %w", name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func CloseAll(ps []Publisher) error {
	var errs []error
	for _, p := range ps {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
