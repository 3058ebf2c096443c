package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const apiMetricsNamespace = "api"

type ApiMetrics struct {
	readMarketDataCalls prometheus.Counter
}

func NewApiMetrics() *ApiMetrics {
	return &ApiMetrics{
		readMarketDataCalls: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: apiMetricsNamespace,
			Name:      "read_market_data_calls",
		}),
	}
}

func (s *ApiMetrics) IncNumCallsReadMarketData() {
	s.readMarketDataCalls.Inc()
}
