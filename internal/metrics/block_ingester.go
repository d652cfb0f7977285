package metrics

import (
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockIngesterBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_ingester",
		Name:      "blocks_total",
		Help:      "Count of blocks handled by the block ingester.",
	}, []string{"coin", "network", "status"})

	blockIngesterBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_ingester",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching and ingesting one block.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"coin", "network", "status"})

	blockIngesterReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_ingester",
		Name:      "reorgs_total",
		Help:      "Count of chain reorganizations handled.",
	}, []string{"coin", "network", "status"})

	blockIngesterReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_ingester",
		Name:      "reorg_depth_blocks",
		Help:      "Number of blocks undone per reorganization.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"coin", "network"})

	blockIngesterTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "block_ingester",
		Name:      "tip_height",
		Help:      "Height of the last indexed block.",
	}, []string{"coin", "network"})
)

// BlockIngester tracks metrics for the block follower.
type BlockIngester struct {
	coin    string
	network string
}

// NewBlockIngester constructs a BlockIngester collector.
func NewBlockIngester(coin model.Coin, network model.Network) *BlockIngester {
	c, n := chainLabels(coin, network)
	return &BlockIngester{coin: c, network: n}
}

// ObserveBlock records one block and moves the tip gauge on success.
func (m BlockIngester) ObserveBlock(err error, height uint64, started time.Time) {
	s := status(err)
	blockIngesterBlocksTotal.WithLabelValues(m.coin, m.network, s).Inc()
	blockIngesterBlockDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		blockIngesterTipHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
	}
}

// ObserveReorg records one reorganization of depth undone blocks.
func (m BlockIngester) ObserveReorg(err error, depth int) {
	blockIngesterReorgsTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	blockIngesterReorgDepth.WithLabelValues(m.coin, m.network).Observe(float64(depth))
}
