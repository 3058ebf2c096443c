package binance

import (
	"CandleKeeper/pkg/binance/model"
	"CandleKeeper/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const apiKeyHeaderName = "X-MBX-APIKEY"

type HttpClient struct {
	logger      *zap.Logger
	client      *http.Client
	klinesQ     string
	apiKey      string
	weightLimit int
}

func NewHttpClient(cfg *BinanceHttpClientConfig) *HttpClient {
	baseURI := cfg.HttpBaseUriConfig.GetBaseUri()
	return &HttpClient{
		logger:      log.GetLogger("BinanceHttpClient"),
		client:      &http.Client{},
		klinesQ:     fmt.Sprintf("%sapi/v3/klines", baseURI),
		apiKey:      cfg.ApiKey,
		weightLimit: cfg.WeightLimit,
	}
}

// GetKlines fetches the most recent limit candles for a trading pair like
// "BTC/USDT" and an interval like "1h".
func (s HttpClient) GetKlines(ctx context.Context, pair, interval string, limit int) ([]model.Kline, error) {
	if isBanned() {
		return nil, RequestRejectedErr
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	query := fmt.Sprintf("%s?symbol=%s&interval=%s&limit=%d", s.klinesQ, model.ExchangeSymbol(pair), interval, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, http.NoBody)
	if err != nil {
		s.logger.Error(err.Error())
		return nil, err
	}
	if s.apiKey != "" {
		req.Header.Set(apiKeyHeaderName, s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(err.Error())
		return nil, err
	}
	if resp.StatusCode == http.StatusTeapot {
		return nil, banBinanceRequests(resp, TeapotErr)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, banBinanceRequests(resp, WeightLimitExceededErr)
	}
	checkUsedWeight(resp, s.weightLimit)
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error(err.Error())
		return nil, err
	}
	if err = resp.Body.Close(); err != nil {
		s.logger.Warn(err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("klines request failed with status %d", resp.StatusCode)
	}
	var klines []model.Kline
	if err = json.Unmarshal(respBody, &klines); err != nil {
		s.logger.Error(err.Error())
		return nil, err
	}
	return klines, nil
}
