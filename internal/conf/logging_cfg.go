package conf

import (
	"CandleKeeper/pkg/env"
)

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	FilePath string `yaml:"file.path"`
}

func NewLoggingConfigFromEnv() *LoggingConfig {
	return &LoggingConfig{
		Level:    env.GetEnvOr("log.level", "info"),
		Encoding: env.GetEnvOr("log.encoding", "json"),
		FilePath: env.GetEnvOr("log.file.path", "./logs/trading_system.log"),
	}
}
