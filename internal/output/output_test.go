package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vzahanych/weather-answer/internal/config"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

func envelope() *Envelope {
	return &Envelope{
		Speech:    Speech{Text: "Yes, tomorrow could be rainy."},
		Intent:    Intent{Name: "GetWeatherForecastCondition"},
		SiteID:    "kitchen",
		RequestID: "req-1",
	}
}

func TestConsolePublish(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	require.NoError(t, c.Publish(context.Background(), envelope()))
	assert.Equal(t, "Yes, tomorrow could be rainy.\n", buf.String())
}

func TestEnvelopeJSON(t *testing.T) {
	env := envelope()
	env.ErrorCode = string(weathererr.CodeNoNetwork)
	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"speech": {"text": "Yes, tomorrow could be rainy."},
		"intent": {"name": "GetWeatherForecastCondition"},
		"siteId": "kitchen",
		"request_id": "req-1",
		"error_code": "no_network_error"
	}`, string(data))
}

type fakeToken struct {
	err  error
	done chan struct{}
}

func newFakeToken(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type fakeMQTT struct {
	mqtt.Client
	topic        string
	qos          byte
	payload      []byte
	err          error
	disconnected bool
}

func (f *fakeMQTT) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	f.topic, f.qos, f.payload = topic, qos, payload.([]byte)
	return newFakeToken(f.err)
}

func (f *fakeMQTT) Disconnect(uint) { f.disconnected = true }

func TestMQTTPublish(t *testing.T) {
	client := &fakeMQTT{}
	m := newMQTT(client, config.MQTTConfig{Topic: "rhasspy_weather/response", QoS: 1}, zaptest.NewLogger(t))

	require.NoError(t, m.Publish(context.Background(), envelope()))
	assert.Equal(t, "rhasspy_weather/response", client.topic)
	assert.Equal(t, byte(1), client.qos)

	var got Envelope
	require.NoError(t, json.Unmarshal(client.payload, &got))
	assert.Equal(t, *envelope(), got)

	require.NoError(t, m.Close())
	assert.True(t, client.disconnected)
}

func TestMQTTPublishError(t *testing.T) {
	client := &fakeMQTT{err: errors.New("not connected")}
	m := newMQTT(client, config.MQTTConfig{Topic: "t"}, zaptest.NewLogger(t))

	err := m.Publish(context.Background(), envelope())
	assert.ErrorIs(t, err, weathererr.ErrOutput)
	assert.Equal(t, weathererr.CodeOutput, weathererr.CodeOf(err))
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublish(t *testing.T) {
	w := &fakeWriter{}
	k := newKafka(w, "weather-answers", zaptest.NewLogger(t))

	require.NoError(t, k.Publish(context.Background(), envelope()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "kitchen", string(w.msgs[0].Key))
	assert.Contains(t, string(w.msgs[0].Value), `"request_id":"req-1"`)

	env := envelope()
	env.SiteID = ""
	require.NoError(t, k.Publish(context.Background(), env))
	assert.Equal(t, "req-1", string(w.msgs[1].Key), "request id keys answers without a site")

	w.err = errors.New("broker down")
	assert.ErrorIs(t, k.Publish(context.Background(), env), weathererr.ErrOutput)

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestRhasspyTTSPublish(t *testing.T) {
	var body, contentType, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body, contentType, query = string(data), r.Header.Get("Content-Type"), r.URL.RawQuery
		assert.Equal(t, "/api/text-to-speech", r.URL.Path)
	}))
	defer srv.Close()

	r, err := NewRhasspyTTS(config.RhasspyConfig{URL: srv.URL + "/"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, r.Publish(context.Background(), envelope()))

	assert.Equal(t, "Yes, tomorrow could be rainy.", body)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "play=true", query)
}

func TestRhasspyTTSStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r, err := NewRhasspyTTS(config.RhasspyConfig{URL: srv.URL}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.ErrorIs(t, r.Publish(context.Background(), envelope()), weathererr.ErrOutput)
}

func TestNewOutputs(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cfg := config.NewDefaultConfig()
	ps, err := New(cfg, logger)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "console", ps[0].Name())
	assert.NoError(t, CloseAll(ps))

	cfg.Outputs = []string{"console", "pager"}
	_, err = New(cfg, logger)
	assert.ErrorIs(t, err, weathererr.ErrConfig)

	cfg.Outputs = []string{"console", "mqtt"}
	cfg.MQTT.Broker = ""
	_, err = New(cfg, logger)
	assert.ErrorIs(t, err, weathererr.ErrConfig)

	cfg.Outputs = []string{"kafka"}
	ps, err = New(cfg, logger)
	require.NoError(t, err, "the kafka writer connects lazily")
	assert.Equal(t, "kafka", ps[0].Name())
	assert.NoError(t, CloseAll(ps))
}
