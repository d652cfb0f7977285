package metrics

import (
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "batches_total",
		Help:      "Count of ingested transaction batches.",
	}, []string{"source", "coin", "network", "status"})

	pipelineBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "batch_duration_seconds",
		Help:      "Duration of ingesting a transaction batch.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"source", "coin", "network", "status"})

	pipelineBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "batch_size",
		Help:      "Number of transactions per ingested batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"source", "coin", "network"})
)

// Pipeline tracks ingestion batches. Source tells block batches from
// mempool and reindex ones.
type Pipeline struct {
	source  string
	coin    string
	network string
}

// NewPipeline constructs a Pipeline collector.
func NewPipeline(source string, coin model.Coin, network model.Network) *Pipeline {
	c, n := chainLabels(coin, network)
	return &Pipeline{source: source, coin: c, network: n}
}

// ObserveBatch records one Ingest call.
func (m Pipeline) ObserveBatch(err error, size int, started time.Time) {
	s := status(err)
	pipelineBatchTotal.WithLabelValues(m.source, m.coin, m.network, s).Inc()
	pipelineBatchDuration.WithLabelValues(m.source, m.coin, m.network, s).Observe(time.Since(started).Seconds())
	pipelineBatchSize.WithLabelValues(m.source, m.coin, m.network).Observe(float64(size))
}
