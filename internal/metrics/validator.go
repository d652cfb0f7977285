package metrics

import (
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validatorVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "verdicts_total",
		Help:      "Count of token transaction verdicts by operation.",
	}, []string{"operation", "verdict", "coin", "network"})

	validatorCascadeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "cascade_duration_seconds",
		Help:      "Duration of invalidation cascades.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network"})

	validatorCascadeVisited = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "cascade_visited",
		Help:      "Descendants re-evaluated per cascade.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	validatorCascadeInvalidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "cascade_invalidated_total",
		Help:      "Count of descendants demoted to INVALID by cascades.",
	}, []string{"coin", "network"})
)

// Validator tracks verdicts and invalidation cascades.
type Validator struct {
	coin    string
	network string
}

// NewValidator constructs a Validator collector.
func NewValidator(coin model.Coin, network model.Network) *Validator {
	c, n := chainLabels(coin, network)
	return &Validator{coin: c, network: n}
}

// ObserveVerdict counts one verdict reached for an operation kind.
func (m Validator) ObserveVerdict(kind model.OperationKind, verdict model.Verdict) {
	operation := string(kind)
	if operation == "" {
		operation = "none"
	}
	validatorVerdictsTotal.WithLabelValues(operation, string(verdict), m.coin, m.network).Inc()
}

// ObserveCascade records one cascade run.
func (m Validator) ObserveCascade(visited, invalidated int, started time.Time) {
	validatorCascadeDuration.WithLabelValues(m.coin, m.network).Observe(time.Since(started).Seconds())
	validatorCascadeVisited.WithLabelValues(m.coin, m.network).Observe(float64(visited))
	validatorCascadeInvalidated.WithLabelValues(m.coin, m.network).Add(float64(invalidated))
}
