package conf

import (
	"CandleKeeper/pkg/env"
)

type DataConfig struct {
	DefaultSymbols []string `yaml:"symbols"`
	Timeframes     []string `yaml:"timeframes"`
	MaxRetries     int      `yaml:"max.retries"`
	RetryDelayS    int      `yaml:"retry.delay.sec"`
	ChunkSize      int      `yaml:"chunk.size"`
}

func NewDataConfigFromEnv() *DataConfig {
	return &DataConfig{
		DefaultSymbols: env.GetEnvListOr("data.symbols", []string{"BTC/USDT", "ETH/USDT", "BNB/USDT"}),
		Timeframes:     env.GetEnvListOr("data.timeframes", []string{"1h", "4h", "1d"}),
		MaxRetries:     env.GetEnvIntOr("data.max.retries", 3),
		RetryDelayS:    env.GetEnvIntOr("data.retry.delay.sec", 5),
		ChunkSize:      env.GetEnvIntOr("data.chunk.size", 500),
	}
}
