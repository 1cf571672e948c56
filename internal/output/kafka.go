package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka writes envelopes keyed by site so answers of one satellite stay on
// one partition.
type Kafka struct {
	writer messageWriter
	logger *zap.Logger
}

func NewKafka(cfg config.KafkaConfig, logger *zap.Logger) (*Kafka, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, fmt.Errorf("%w: kafka needs brokers and a topic", weathererr.ErrConfig)
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newKafka(w, cfg.Topic, logger), nil
}

func newKafka(w messageWriter, topic string, logger *zap.Logger) *Kafka {
	return &Kafka{
		writer: w,
		logger: logger.With(zap.String("output", "kafka"), zap.String("topic", topic)),
	}
}

func (k *Kafka) Name() string { return "kafka" }

func (k *Kafka) Publish(ctx context.Context, env *Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	key := env.SiteID
	if key == "" {
		key = env.RequestID
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("%w: failed to write message: %v", weathererr.ErrOutput, err)
	}

	k.logger.Debug("Answer published", zap.String("request_id", env.RequestID))
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
