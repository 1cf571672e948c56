package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

const mqttTimeout = 5 * time.Second

// MQTT publishes the JSON envelope to one topic.
type MQTT struct {
	client mqtt.Client
	topic  string
	qos    byte
	logger *zap.Logger
}

func NewMQTT(cfg config.MQTTConfig, logger *zap.Logger) (*MQTT, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("%w: mqtt broker is not set", weathererr.ErrConfig)
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(mqttTimeout).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if err := wait(client.Connect()); err != nil {
		return nil, fmt.Errorf("%w: mqtt connect %s: %v", weathererr.ErrOutput, cfg.Broker, err)
	}

	return newMQTT(client, cfg, logger), nil
}

func newMQTT(client mqtt.Client, cfg config.MQTTConfig, logger *zap.Logger) *MQTT {
	return &MQTT{
		client: client,
		topic:  cfg.Topic,
		qos:    byte(cfg.QoS),
		logger: logger.With(zap.String("output", "mqtt"), zap.String("topic", cfg.Topic)),
	}
}

func (m *MQTT) Name() string { return "mqtt" }

func (m *MQTT) Publish(ctx context.Context, env *Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	token := m.client.Publish(m.topic, m.qos, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("%w: mqtt publish: %v", weathererr.ErrOutput, ctx.Err())
	case <-time.After(mqttTimeout):
		return fmt.Errorf("%w: mqtt publish timed out", weathererr.ErrOutput)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: mqtt publish: %v", weathererr.ErrOutput, err)
	}

	m.logger.Debug("Answer published", zap.String("request_id", env.RequestID))
	return nil
}

func (m *MQTT) Close() error {
	m.client.Disconnect(250)
	return nil
}

func wait(t mqtt.Token) error {
	if !t.WaitTimeout(mqttTimeout) {
		return fmt.Errorf("timed out after %s", mqttTimeout)
	}
	return t.Error()
}
