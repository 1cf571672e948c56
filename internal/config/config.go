package config

import (
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Locale      string          `mapstructure:"locale" validate:"required,oneof=english german"`
	Timezone    string          `mapstructure:"timezone" validate:"required"`
	Parser      string          `mapstructure:"parser" validate:"required,oneof=rhasspy_intent nlu_intent console_args"`
	Outputs     []string        `mapstructure:"outputs" validate:"required,min=1,dive,oneof=console mqtt kafka rhasspy_tts"`
	Location    LocationConfig  `mapstructure:"location"`
	Answer      AnswerConfig    `mapstructure:"answer"`
	Server      ServerConfig    `mapstructure:"server"`
	Weather     WeatherConfig   `mapstructure:"weather"`
	MQTT        MQTTConfig      `mapstructure:"mqtt"`
	Kafka       KafkaConfig     `mapstructure:"kafka"`
	Rhasspy     RhasspyConfig   `mapstructure:"rhasspy"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

// LocationConfig is the default location used when a question names none.
// Lat and Lon are only used when at least one of them is non-zero.
type LocationConfig struct {
	City        string  `mapstructure:"city"`
	Zipcode     string  `mapstructure:"zipcode"`
	CountryCode string  `mapstructure:"country_code"`
	Lat         float64 `mapstructure:"lat" validate:"gte=-90,lte=90"`
	Lon         float64 `mapstructure:"lon" validate:"gte=-180,lte=180"`
}

func (l LocationConfig) HasCoordinates() bool {
	return l.Lat != 0 || l.Lon != 0
}

type AnswerConfig struct {
	Detail               bool    `mapstructure:"detail"`
	WarmFrom             float64 `mapstructure:"warm_from"`
	ColdTo               float64 `mapstructure:"cold_to" validate:"ltfield=WarmFrom"`
	WindyFrom            int     `mapstructure:"windy_from" validate:"gte=0,lte=12"`
	CloudsClearExclusive bool    `mapstructure:"clouds_clear_exclusive"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

type WeatherConfig struct {
	Provider ProviderConfig `mapstructure:"provider"`
}

type ProviderConfig struct {
	Type        string  `mapstructure:"type" validate:"required,oneof=openweathermap fixture"`
	BaseURL     string  `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey      string  `mapstructure:"api_key"`
	Units       string  `mapstructure:"units" validate:"oneof=metric imperial standard"`
	Timeout     int     `mapstructure:"timeout" validate:"gte=1"`
	RateLimit   float64 `mapstructure:"rate_limit" validate:"gt=0"`
	Burst       int     `mapstructure:"burst" validate:"gte=1"`
	BucketHours int     `mapstructure:"bucket_hours" validate:"gte=1,lte=24"`
	FixturePath string  `mapstructure:"fixture_path" validate:"required_if=Type fixture"`
}

type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	Topic    string `mapstructure:"topic"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	ClientID string `mapstructure:"client_id"`
	QoS      int    `mapstructure:"qos" validate:"gte=0,lte=2"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// RhasspyConfig points at the Rhasspy HTTP API used for speech output.
type RhasspyConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Locale:      "english",
		Timezone:    "auto",
		Parser:      "rhasspy_intent",
		Outputs:     []string{"console"},
		Location: LocationConfig{
			City: "Berlin",
		},
		Answer: AnswerConfig{
			Detail:               false,
			WarmFrom:             20,
			ColdTo:               5,
			WindyFrom:            5,
			CloudsClearExclusive: true,
		},
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Weather: WeatherConfig{
			Provider: ProviderConfig{
				Type:        "openweathermap",
				BaseURL:     "https://api.openweathermap.org",
				Units:       "metric",
				Timeout:     10,
				RateLimit:   1,
				Burst:       5,
				BucketHours: 3,
			},
		},
		MQTT: MQTTConfig{
			Broker:   "tcp://localhost:1883",
			Topic:    "rhasspy_weather/response",
			ClientID: "weather-answer",
			QoS:      1,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "weather-answers",
		},
		Rhasspy: RhasspyConfig{
			URL: "http://localhost:12101",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Endpoint:    "tempo:4317",
			ServiceName: "weather-answer",
		},
	}
}
