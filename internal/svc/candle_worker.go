package svc

import (
	"CandleKeeper/internal/model"
	"CandleKeeper/pkg/log"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// CandleWorker consumes one kline stream and writes candles through the store
// in chunks. Candles are buffered by open timestamp, so stream updates to a
// still-open candle collapse into one document.
type CandleWorker struct {
	logger              *zap.Logger
	symbol              string
	timeframe           string
	chunkSize           int
	reconnectDelay      time.Duration
	source              KlineSource
	storage             MarketDataStorage
	buffer              model.MarketDataBatch
	started             atomic.Bool
	shutdownCh          chan struct{}
	shutdownCompletedCh chan struct{}
}

func NewCandleWorker(symbol, timeframe string, chunkSize int, reconnectDelay time.Duration, source KlineSource, storage MarketDataStorage) *CandleWorker {
	return &CandleWorker{
		logger:              log.GetLogger(fmt.Sprintf("CandleWorker[%s@%s]", symbol, timeframe)),
		symbol:              symbol,
		timeframe:           timeframe,
		chunkSize:           chunkSize,
		reconnectDelay:      reconnectDelay,
		source:              source,
		storage:             storage,
		buffer:              make(model.MarketDataBatch),
		shutdownCh:          make(chan struct{}),
		shutdownCompletedCh: make(chan struct{}),
	}
}

func (s *CandleWorker) Start(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.source.ConnectWs(ctxWithTimeout); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.started.Store(true)
	go s.Run(ctx)
	return nil
}

func (s *CandleWorker) Run(ctx context.Context) {
	for {
		select {
		case <-s.shutdownCh:
			s.Flush(ctx)
			s.shutdownCompletedCh <- struct{}{}
			return
		default:
			s.RecvAndBuffer(ctx)
		}
	}
}

func (s *CandleWorker) RecvAndBuffer(ctx context.Context) {
	msg, err := s.source.Recv(ctx)
	if err != nil {
		s.logger.Error(err.Error())
		s.waitReconnectDelay(ctx)
		if err := s.source.ConnectWs(ctx); err != nil {
			s.logger.Error(err.Error())
		}
		return
	}
	kline, err := msg.Kline.ToKline()
	if err != nil {
		s.logger.Error(fmt.Errorf("invalid kline in stream message %w", err).Error())
		return
	}
	s.buffer[kline.OpenTime] = model.CandleFields(kline.Fields())
	if len(s.buffer) >= s.chunkSize {
		s.Flush(ctx)
	}
}

// waitReconnectDelay paces reconnect attempts so a dead stream does not spin
// against the exchange.
func (s *CandleWorker) waitReconnectDelay(ctx context.Context) {
	if s.reconnectDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.reconnectDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Flush writes the buffered candles and clears the buffer. A failed write is
// logged and the batch dropped, matching the advisory failure policy of the
// store.
func (s *CandleWorker) Flush(ctx context.Context) {
	if len(s.buffer) == 0 {
		return
	}
	if err := s.storage.WriteMarketData(ctx, s.symbol, s.timeframe, s.buffer, s.chunkSize); err != nil {
		s.logger.Error(err.Error())
	}
	s.buffer = make(model.MarketDataBatch)
}

// Backfill writes the most recent candles fetched over REST, once, at startup.
func (s *CandleWorker) Backfill(ctx context.Context, fetcher KlineFetcher, limit int) error {
	klines, err := fetcher.GetKlines(ctx, s.symbol, s.timeframe, limit)
	if err != nil {
		return fmt.Errorf("error while backfilling %s %s %w", s.symbol, s.timeframe, err)
	}
	batch := make(model.MarketDataBatch, len(klines))
	for _, kline := range klines {
		batch[kline.OpenTime] = model.CandleFields(kline.Fields())
	}
	return s.storage.WriteMarketData(ctx, s.symbol, s.timeframe, batch, s.chunkSize)
}

func (s *CandleWorker) Shutdown(ctx context.Context) {
	if !s.started.Load() {
		// Run never launched, there is nobody to handshake with
		s.source.Shutdown(ctx)
		return
	}
	go func(ctx context.Context) {
		// closing the source first unblocks a worker stuck in Recv
		s.source.Shutdown(ctx)
		s.shutdownCh <- struct{}{}
	}(ctx)
	select {
	case <-s.shutdownCompletedCh:
		s.logger.Debug("successfully shutdown")
	case <-ctx.Done():
		s.logger.Warn("shutdown deadline exceeded before worker stopped")
	}
}
