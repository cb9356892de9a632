package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingApiKey = errors.New("MISTRAL_API_KEY is not set")

type Config struct {
	MistralApiKey  string        `mapstructure:"MISTRAL_API_KEY"`
	ModelName      string        `mapstructure:"MISTRAL_MODEL"`
	MistralURL     string        `mapstructure:"MISTRAL_URL"`
	Temperature    float64       `mapstructure:"MISTRAL_TEMPERATURE"`
	MistralTimeout time.Duration `mapstructure:"MISTRAL_TIMEOUT"`

	HTTPAddr           string   `mapstructure:"HTTP_ADDR"`
	CorsAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	PgHost     string `mapstructure:"PG_HOST"`
	PgPort     string `mapstructure:"PG_PORT"`
	PgUser     string `mapstructure:"PG_USER"`
	PgPassword string `mapstructure:"PG_PASSWORD"`
	PgName     string `mapstructure:"PG_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// NewConfig читает конфигурацию из env-файла (если он есть) и переменных окружения.
// Переменные окружения имеют приоритет над файлом.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("MISTRAL_API_KEY", "")
	v.SetDefault("MISTRAL_MODEL", "mistral-small-latest")
	v.SetDefault("MISTRAL_URL", "https://api.mistral.ai/v1")
	v.SetDefault("MISTRAL_TEMPERATURE", 0.7)
	v.SetDefault("MISTRAL_TIMEOUT", 30*time.Second)

	v.SetDefault("HTTP_ADDR", ":5641")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("PG_HOST", "localhost")
	v.SetDefault("PG_PORT", "5432")
	v.SetDefault("PG_USER", "postgres")
	v.SetDefault("PG_PASSWORD", "")
	v.SetDefault("PG_NAME", "museum")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Validate проверяет обязательные параметры. Ключ Mistral не имеет значения по умолчанию.
func (c *Config) Validate() error {
	if c.MistralApiKey == "" {
		return ErrMissingApiKey
	}
	if c.ModelName == "" {
		return errors.New("MISTRAL_MODEL must not be empty")
	}
	if c.Temperature < 0 {
		return fmt.Errorf("MISTRAL_TEMPERATURE must be non-negative, got %v", c.Temperature)
	}
	if c.MistralTimeout <= 0 {
		return fmt.Errorf("MISTRAL_TIMEOUT must be positive, got %v", c.MistralTimeout)
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PgHost, c.PgPort, c.PgUser, c.PgPassword, c.PgName)
}
