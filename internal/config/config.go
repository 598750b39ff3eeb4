package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Platform Platform
	Logger   Logger
	Metrics  Metrics
	ChatAPI  ChatAPI
	Realtime Realtime
	Sync     Sync
}

type Service struct {
	Name string `env:"CHAT_SYNC_SERVICE_NAME" env-default:"chat-sync"`
	Port string `env:"CHAT_SYNC_SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type ChatAPI struct {
	BaseURL      string        `env:"CHAT_SERVICE_BASE_URL"`
	SessionToken string        `env:"CHAT_SERVICE_SESSION_TOKEN"`
	Timeout      time.Duration `env:"CHAT_SERVICE_TIMEOUT" env-default:"10s"`
}

type Realtime struct {
	URL               string        `env:"REALTIME_URL"`
	HandshakeTimeout  time.Duration `env:"REALTIME_HANDSHAKE_TIMEOUT" env-default:"10s"`
	ReconnectBase     time.Duration `env:"REALTIME_RECONNECT_BASE" env-default:"1s"`
	ReconnectMax      time.Duration `env:"REALTIME_RECONNECT_MAX" env-default:"30s"`
	MaxReconnectTries int           `env:"REALTIME_RECONNECT_TRIES" env-default:"0"`
}

type Sync struct {
	AckRecencyWindow time.Duration `env:"SYNC_ACK_RECENCY_WINDOW" env-default:"60s"`
	SendTimeout      time.Duration `env:"SYNC_SEND_TIMEOUT" env-default:"15s"`
	TypingDebounce   time.Duration `env:"SYNC_TYPING_DEBOUNCE" env-default:"1500ms"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
