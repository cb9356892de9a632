package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AuthAddr    string        `mapstructure:"AUTH_ADDR"`
	AuthTimeout time.Duration `mapstructure:"AUTH_TIMEOUT"`
}

// NewConfig читает адрес сервиса авторизации. Пустой AUTH_ADDR отключает проверку токенов.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("AUTH_ADDR", "")
	v.SetDefault("AUTH_TIMEOUT", 5*time.Second)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading auth config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding auth config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Enabled() bool {
	return c.AuthAddr != ""
}
