// Package config загружает конфигурацию сервера из переменных окружения
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию сервера
type Config struct {
	// Address - адрес, на котором слушает HTTP сервер
	Address string `env:"GOPHCART_ADDRESS" envDefault:":8080"`

	// DatabasePath - путь к файлу SQLite базы
	DatabasePath string `env:"GOPHCART_DB_PATH" envDefault:"gophcart.db"`

	// JWTSecret - секрет подписи access token-ов
	JWTSecret string `env:"GOPHCART_JWT_SECRET,required"`

	// AccessTokenTTL - время жизни access token
	AccessTokenTTL time.Duration `env:"GOPHCART_ACCESS_TOKEN_TTL" envDefault:"15m"`

	// LogLevel - уровень логирования: debug, info, warn, error
	LogLevel string `env:"GOPHCART_LOG_LEVEL" envDefault:"info"`

	// RateLimit - лимит запросов с одного IP за окно
	RateLimit int `env:"GOPHCART_RATE_LIMIT" envDefault:"100"`

	// RateLimitWindow - окно для rate limiter
	RateLimitWindow time.Duration `env:"GOPHCART_RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// Load читает конфигурацию из окружения
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
