package metrics

import (
	"CandleKeeper/pkg/log"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const MarketDataNamespace = "market_data"

type MarketDataMetrics struct {
	logger               *zap.Logger
	savedCandles         map[string]prometheus.Counter
	savedCandlesMut      sync.Mutex
	SavedCandlesTotal    prometheus.Counter
	WriteErrors          prometheus.Counter
	ReadQueries          prometheus.Counter
	InsertQueryLatencyMs prometheus.Gauge
}

func NewMarketDataMetrics() *MarketDataMetrics {
	return &MarketDataMetrics{
		logger:       log.GetLogger("MarketDataMetrics"),
		savedCandles: make(map[string]prometheus.Counter),
		SavedCandlesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: MarketDataNamespace,
			Name:      "saved_total",
		}),
		WriteErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: MarketDataNamespace,
			Name:      "write_errors",
		}),
		ReadQueries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: MarketDataNamespace,
			Name:      "read_queries",
		}),
		InsertQueryLatencyMs: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: MarketDataNamespace,
			Name:      "insert_query_latency_ms",
		}),
	}
}

func (s *MarketDataMetrics) IncSavedCandles(symbol string, count int) {
	s.savedCandlesMut.Lock()
	counter, ok := s.savedCandles[symbol]
	if !ok {
		counter = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: MarketDataNamespace,
			Subsystem: getMetricKey(symbol),
			Name:      "saved",
		})
		s.savedCandles[symbol] = counter
	}
	s.savedCandlesMut.Unlock()
	counter.Add(float64(count))
	s.SavedCandlesTotal.Add(float64(count))
}

func (s *MarketDataMetrics) IncWriteErrors() {
	s.WriteErrors.Inc()
}

func (s *MarketDataMetrics) IncReadQueries() {
	s.ReadQueries.Inc()
}

func (s *MarketDataMetrics) UpdInsertQueryLatency(latencyMs int64) {
	s.InsertQueryLatencyMs.Set(float64(latencyMs))
}

func getMetricKey(symbol string) string {
	return strings.ToLower(strings.ReplaceAll(symbol, "/", "_"))
}
