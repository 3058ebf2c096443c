package svc

import (
	"CandleKeeper/internal/model"
	bmodel "CandleKeeper/pkg/binance/model"
	"context"
)

type KlineSource interface {
	ConnectWs(ctx context.Context) error
	Recv(ctx context.Context) (*bmodel.KlineMessage, error)
	Shutdown(ctx context.Context)
}

type KlineFetcher interface {
	GetKlines(ctx context.Context, pair, interval string, limit int) ([]bmodel.Kline, error)
}

type MarketDataStorage interface {
	WriteMarketData(ctx context.Context, symbol, timeframe string, data model.MarketDataBatch, batchSize int) error
}
