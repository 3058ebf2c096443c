package metrics

import (
	"time"

	"github.com/pbnjay/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const SystemNamespace = "system"

type SystemMonitorer struct {
	freeRamGauge prometheus.Gauge
}

func NewSystemMonitorer() *SystemMonitorer {
	return &SystemMonitorer{
		freeRamGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: SystemNamespace,
			Name:      "free_ram_bytes",
		}),
	}
}

func (s *SystemMonitorer) CronUpdateMetrics() {
	for {
		s.freeRamGauge.Set(float64(memory.FreeMemory()))
		time.Sleep(5 * time.Second)
	}
}
