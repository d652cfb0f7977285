package metrics

import (
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Count of store cache lookups by result.",
	}, []string{"cache", "result", "coin", "network"})
)

// Cache tracks store cache efficiency.
type Cache struct {
	coin    string
	network string
}

// NewCache constructs a Cache collector.
func NewCache(coin model.Coin, network model.Network) *Cache {
	c, n := chainLabels(coin, network)
	return &Cache{coin: c, network: n}
}

func (m Cache) ObserveHit(cache string) {
	cacheLookupsTotal.WithLabelValues(cache, "hit", m.coin, m.network).Inc()
}

func (m Cache) ObserveMiss(cache string) {
	cacheLookupsTotal.WithLabelValues(cache, "miss", m.coin, m.network).Inc()
}
