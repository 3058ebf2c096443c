package binance

import (
	"CandleKeeper/pkg/conf"
)

type BinanceHttpClientConfig struct {
	StreamBaseUriConfig *conf.BaseUriConfig `yaml:"stream.uri"`
	HttpBaseUriConfig   *conf.BaseUriConfig `yaml:"http.uri"`
	ApiKey              string              `yaml:"api.key"`
	WeightLimit         int                 `yaml:"weight.limit"`
}

// NewBinanceHttpClientConfigFromEnv resolves endpoints, defaulting to the
// testnet hosts when sandbox is set.
func NewBinanceHttpClientConfigFromEnv(envPrefix string, sandbox bool, apiKey string, weightLimit int) *BinanceHttpClientConfig {
	httpHost := "api.binance.com"
	streamHost := "stream.binance.com"
	streamPort := 9443
	if sandbox {
		httpHost = "testnet.binance.vision"
		streamHost = "stream.testnet.binance.vision"
		streamPort = 443
	}
	return &BinanceHttpClientConfig{
		StreamBaseUriConfig: conf.NewBaseUriConfigFromEnv(envPrefix+".stream.uri", "wss://", streamHost, streamPort),
		HttpBaseUriConfig:   conf.NewBaseUriConfigFromEnv(envPrefix+".http.uri", "https://", httpHost, 443),
		ApiKey:              apiKey,
		WeightLimit:         weightLimit,
	}
}
