package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int      `env:"HTTP_PORT"          envDefault:"8080"`
	PostgresDSN      string   `env:"POSTGRES_DSN,required"`
	PostgresMaxConns int32    `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string   `env:"LOG_LEVEL"          envDefault:"info"`
	KafkaBrokers     []string `env:"KAFKA_BROKERS"      envSeparator:","`
	KafkaTopic       string   `env:"KAFKA_PERMISSIONS_TOPIC" envDefault:"permissions.changed"`
	JWT              JWTConfig
	HTTP             HTTPConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET,required"`
	Issuer string `env:"JWT_ISSUER" envDefault:"belwest"`
}

type HTTPConfig struct {
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       envDefault:"10s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        envDefault:"60s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"1s"`
}

// ClientConfig configures the permctl editor.
type ClientConfig struct {
	BaseURL         string        `env:"PERMCTL_BASE_URL"         envDefault:"http://localhost:8080"`
	Token           string        `env:"PERMCTL_TOKEN"`
	Timeout         time.Duration `env:"PERMCTL_TIMEOUT"          envDefault:"10s"`
	RetryAttempts   int           `env:"PERMCTL_RETRY_ATTEMPTS"   envDefault:"2"`
	SaveParallelism int           `env:"PERMCTL_SAVE_PARALLELISM" envDefault:"8"`
	LogLevel        string        `env:"LOG_LEVEL"                envDefault:"warn"`
	JWTSecret       string        `env:"JWT_SECRET"`
	JWTIssuer       string        `env:"JWT_ISSUER"               envDefault:"belwest"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := loadDotEnv(envPath)
	if err != nil {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if len(c.JWT.Secret) < minSecretLen {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLen)
	}

	return c, nil
}

func NewClient(envPath string) (ClientConfig, error) {
	var c ClientConfig

	err := loadDotEnv(envPath)
	if err != nil {
		return ClientConfig{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return ClientConfig{}, err
	}

	if c.SaveParallelism < 1 {
		return ClientConfig{}, errors.New("PERMCTL_SAVE_PARALLELISM must be positive")
	}

	return c, nil
}

const minSecretLen = 16

func loadDotEnv(envPath string) error {
	if envPath == "" {
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
