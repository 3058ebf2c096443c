package conf

import (
	"CandleKeeper/pkg/env"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// AppConfig aggregates every configuration group. It is built once at process
// start and read-only afterwards.
type AppConfig struct {
	StoreCfg    *StoreConfig    `yaml:"store"`
	ExchangeCfg *ExchangeConfig `yaml:"exchange"`
	DataCfg     *DataConfig     `yaml:"data"`
	LoggingCfg  *LoggingConfig  `yaml:"log"`
	ApiPort     int             `yaml:"http.api.port"`
}

func NewAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		StoreCfg:    NewStoreConfigFromEnv(),
		ExchangeCfg: NewExchangeConfigFromEnv(),
		DataCfg:     NewDataConfigFromEnv(),
		LoggingCfg:  NewLoggingConfigFromEnv(),
		ApiPort:     env.GetEnvIntOr("http.api.port", 8080),
	}
}

// Masked returns a copy safe for printing, with exchange credentials hidden.
func (s *AppConfig) Masked() *AppConfig {
	masked := *s
	exchangeCfg := *s.ExchangeCfg
	if exchangeCfg.ApiKey != "" {
		exchangeCfg.ApiKey = "****"
	}
	if exchangeCfg.ApiSecret != "" {
		exchangeCfg.ApiSecret = "****"
	}
	masked.ExchangeCfg = &exchangeCfg
	return &masked
}

// Validate checks critical values and only warns. The service starts in a
// degraded mode when something is off; hard failures happen later, at store
// connect time.
func (s *AppConfig) Validate(logger *zap.Logger) {
	if _, err := os.Stat(s.StoreCfg.CredPath); err != nil {
		logger.Warn(fmt.Sprintf("store credentials not found at %s", s.StoreCfg.CredPath))
	}
	if s.ExchangeCfg.ApiKey == "" || s.ExchangeCfg.ApiSecret == "" {
		logger.Warn("exchange API credentials not set, some functionality will be limited")
	}
}
