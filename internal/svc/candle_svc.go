package svc

import (
	"CandleKeeper/internal/conf"
	"CandleKeeper/pkg/log"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const backfillLimit = 1000

// CandleSvc runs one CandleWorker per configured (symbol, timeframe) pair.
type CandleSvc struct {
	logger  *zap.Logger
	workers []*CandleWorker
	fetcher KlineFetcher
}

func NewCandleSvc(cfg *conf.DataConfig, fetcher KlineFetcher, newSource func(pair, timeframe string) KlineSource, storage MarketDataStorage) *CandleSvc {
	reconnectDelay := time.Duration(cfg.RetryDelayS) * time.Second
	var workers []*CandleWorker
	for _, symbol := range cfg.DefaultSymbols {
		for _, timeframe := range cfg.Timeframes {
			workers = append(workers, NewCandleWorker(symbol, timeframe, cfg.ChunkSize, reconnectDelay, newSource(symbol, timeframe), storage))
		}
	}
	return &CandleSvc{
		logger:  log.GetLogger("CandleSvc"),
		workers: workers,
		fetcher: fetcher,
	}
}

func (s *CandleSvc) Start(ctx context.Context) {
	s.logger.Info(fmt.Sprintf("starting %d candle workers", len(s.workers)))
	for _, worker := range s.workers {
		if err := worker.Backfill(ctx, s.fetcher, backfillLimit); err != nil {
			worker.logger.Error(err.Error())
		}
		if err := worker.Start(ctx); err != nil {
			worker.logger.Error(err.Error())
		}
	}
}

func (s *CandleSvc) Stop(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range s.workers {
		wg.Add(1)
		go func(worker *CandleWorker) {
			defer wg.Done()
			worker.Shutdown(ctx)
		}(worker)
	}
	wg.Wait()
	s.logger.Info("all candle workers stopped")
}
