package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/patrickmn/go-cache"
)

// TokenDetailsStore keeps per-token metadata used when annotating outputs.
type TokenDetailsStore struct {
	repo    TokenDetailsRepository
	cache   *cache.Cache
	metrics CacheMetrics
}

// NewTokenDetailsStore builds a TokenDetailsStore over repo.
func NewTokenDetailsStore(repo TokenDetailsRepository, metrics CacheMetrics, cfg Config) (*TokenDetailsStore, error) {
	if repo == nil {
		return nil, errors.New("token details repository is required")
	}
	if metrics == nil {
		return nil, errors.New("cache metrics is required")
	}
	cfg = cfg.withDefaults()

	return &TokenDetailsStore{
		repo:    repo,
		cache:   cache.New(cfg.TxCacheTTL, cfg.CleanupInterval),
		metrics: metrics,
	}, nil
}

// TokenDetails returns the details of tokenID or nil when the genesis has not
// been seen.
func (s *TokenDetailsStore) TokenDetails(ctx context.Context, tokenID string) (*model.TokenDetails, error) {
	if cached, ok := s.cache.Get(tokenID); ok {
		s.metrics.ObserveHit(detailsCacheName)
		details := cached.(model.TokenDetails)
		return &details, nil
	}
	s.metrics.ObserveMiss(detailsCacheName)

	found, err := s.repo.TokenDetailsByIDs(ctx, []string{tokenID})
	if err != nil {
		return nil, fmt.Errorf("fetch token details %s: %w", tokenID, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	s.cache.SetDefault(tokenID, found[0])
	return &found[0], nil
}

// SaveTokenDetails upserts details.
func (s *TokenDetailsStore) SaveTokenDetails(ctx context.Context, details model.TokenDetails) error {
	if err := s.repo.InsertTokenDetails(ctx, []model.TokenDetails{details}); err != nil {
		return fmt.Errorf("insert token details %s: %w", details.TokenID, err)
	}
	s.cache.SetDefault(details.TokenID, details)
	return nil
}
