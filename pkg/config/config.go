package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	MoySklad MoySklad
}

type HTTP struct {
	Port      int    `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret string `env:"HTTP_JWT_SECRET"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	PaymentLinkedTopic string   `env:"KAFKA_PAYMENT_LINKED_TOPIC"`
}

// MoySklad credentials and the public callback URL are optional on purpose:
// their absence turns toggle calls into skipped operations instead of errors.
type MoySklad struct {
	BaseURL    string `env:"MOYSKLAD_BASE_URL" envDefault:"https://api.moysklad.ru/api/remap/1.2"`
	Login      string `env:"MOYSKLAD_LOGIN" envDefault:""`
	Password   string `env:"MOYSKLAD_PASSWORD" envDefault:""`
	WebhookURL string `env:"MOYSKLAD_WEBHOOK_URL" envDefault:""`
}

// HasCredentials reports whether remote API calls can be authenticated.
func (m MoySklad) HasCredentials() bool {
	return m.Login != "" && m.Password != ""
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
