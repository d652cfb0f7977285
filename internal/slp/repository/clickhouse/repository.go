package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

type Repository struct {
	conn    Conn
	metrics Metrics
	coin    model.Coin
	network model.Network
	now     func() time.Time
}

func NewRepository(dsn string, coin model.Coin, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, coin: coin, network: network, now: time.Now}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	r.metrics.Observe(operation, r.coin, r.network, err, started)
}
