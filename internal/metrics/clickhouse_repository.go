package metrics

import (
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var storeLabels = []string{"operation", "coin", "network", "status"}

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "SLP table reads and writes by operation.",
	}, storeLabels)
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Latency of SLP table reads and writes.",
		// 2.5ms .. ~24s
		Buckets: prometheus.ExponentialBuckets(0.0025, 2.5, 11),
	}, storeLabels)
)

// ClickhouseRepository observes calls made by the SLP ClickHouse repository.
// Chain labels are passed per call.
type ClickhouseRepository struct{}

func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

func (ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	c, n := chainLabels(coin, network)
	labels := prometheus.Labels{"operation": operation, "coin": c, "network": n, "status": status(err)}
	storeOperationsTotal.With(labels).Inc()
	storeOperationDuration.With(labels).Observe(time.Since(started).Seconds())
}
