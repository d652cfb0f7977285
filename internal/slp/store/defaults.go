package store

import "time"

const (
	defaultUtxoCacheSize   = 100_000
	defaultUtxoCacheTTL    = 40 * time.Minute
	defaultTxCacheTTL      = time.Hour
	defaultCleanupInterval = 10 * time.Minute
	defaultCallTimeout     = 5 * time.Second

	tokenPageSize = 10

	utxoCacheName    = "utxo"
	txCacheName      = "transaction"
	detailsCacheName = "token_details"
)

// Config tunes the caches and read timeouts of the stores. Zero values fall
// back to defaults.
type Config struct {
	UtxoCacheSize   int
	UtxoCacheTTL    time.Duration
	TxCacheTTL      time.Duration
	CleanupInterval time.Duration
	CallTimeout     time.Duration
}

func (c Config) withDefaults() Config {
	if c.UtxoCacheSize <= 0 {
		c.UtxoCacheSize = defaultUtxoCacheSize
	}
	if c.UtxoCacheTTL <= 0 {
		c.UtxoCacheTTL = defaultUtxoCacheTTL
	}
	if c.TxCacheTTL <= 0 {
		c.TxCacheTTL = defaultTxCacheTTL
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = defaultCleanupInterval
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = defaultCallTimeout
	}
	return c
}
