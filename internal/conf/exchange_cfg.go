package conf

import (
	"CandleKeeper/pkg/env"
)

type ExchangeConfig struct {
	ExchangeId string `yaml:"id"`
	ApiKey     string `yaml:"api.key"`
	ApiSecret  string `yaml:"api.secret"`
	Sandbox    bool   `yaml:"sandbox"`
	RateLimit  int    `yaml:"rate.limit"`
}

func NewExchangeConfigFromEnv() *ExchangeConfig {
	return &ExchangeConfig{
		ExchangeId: env.GetEnvOr("exchange.id", "binance"),
		ApiKey:     env.GetEnvOr("exchange.api.key", ""),
		ApiSecret:  env.GetEnvOr("exchange.api.secret", ""),
		Sandbox:    env.GetEnvBoolOr("exchange.sandbox", true),
		RateLimit:  env.GetEnvIntOr("exchange.rate.limit", 1200),
	}
}
