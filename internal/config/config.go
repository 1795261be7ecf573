package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	WithdrawalAmountLimit decimal.Decimal `env:"WITHDRAWAL_AMOUNT_LIMIT" envDefault:"500"`
	WithdrawalCountLimit  int             `env:"WITHDRAWAL_COUNT_LIMIT" envDefault:"3"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.WithdrawalAmountLimit.Sign() <= 0 {
		return nil, fmt.Errorf("config.Load: WITHDRAWAL_AMOUNT_LIMIT must be positive")
	}
	if cfg.WithdrawalCountLimit <= 0 {
		return nil, fmt.Errorf("config.Load: WITHDRAWAL_COUNT_LIMIT must be positive")
	}
	return &cfg, nil
}
