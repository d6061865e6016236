// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	ServerEnvConfig
	ClientEnvConfig
	FetchEnvConfig
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the rescale service.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS" envDefault:"127.0.0.1"`
	Port          int    `env:"SERVER_PORT" envDefault:"8090"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"1048576"`
}

// ClientEnvConfig configures the service client.
type ClientEnvConfig struct {
	BaseURL       string        `env:"TIDESCALE_URL" envDefault:"http://127.0.0.1:8090"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
}

// FetchEnvConfig configures remote dataset downloads.
type FetchEnvConfig struct {
	FetchRetryMax     int           `env:"FETCH_RETRY_MAX" envDefault:"5"`
	FetchRetryWaitMin time.Duration `env:"FETCH_RETRY_WAIT_MIN" envDefault:"500ms"`
	FetchRetryWaitMax time.Duration `env:"FETCH_RETRY_WAIT_MAX" envDefault:"20s"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
}
