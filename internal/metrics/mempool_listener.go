package metrics

import (
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool_listener",
		Name:      "transactions_total",
		Help:      "Count of mempool transactions by outcome.",
	}, []string{"outcome", "coin", "network"})
)

// MempoolListener tracks what happens to announced mempool transactions.
type MempoolListener struct {
	coin    string
	network string
}

// NewMempoolListener constructs a MempoolListener collector.
func NewMempoolListener(coin model.Coin, network model.Network) *MempoolListener {
	c, n := chainLabels(coin, network)
	return &MempoolListener{coin: c, network: n}
}

// ObserveTransaction counts one transaction with outcome accepted, duplicate or rejected.
func (m MempoolListener) ObserveTransaction(outcome string) {
	mempoolTransactionsTotal.WithLabelValues(outcome, m.coin, m.network).Inc()
}
