package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// TransactionStore reads and writes indexed transactions through a read cache.
type TransactionStore struct {
	repo    TransactionRepository
	cache   *cache.Cache
	metrics CacheMetrics
	timeout time.Duration
	logger  *zap.Logger
}

// NewTransactionStore builds a TransactionStore over repo.
func NewTransactionStore(repo TransactionRepository, metrics CacheMetrics, cfg Config, logger *zap.Logger) (*TransactionStore, error) {
	if repo == nil {
		return nil, errors.New("transaction repository is required")
	}
	if metrics == nil {
		return nil, errors.New("cache metrics is required")
	}
	cfg = cfg.withDefaults()

	return &TransactionStore{
		repo:    repo,
		cache:   cache.New(cfg.TxCacheTTL, cfg.CleanupInterval),
		metrics: metrics,
		timeout: cfg.CallTimeout,
		logger:  logger.Named("transactionStore"),
	}, nil
}

// FetchTransaction returns the stored transaction or nil.
func (s *TransactionStore) FetchTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error) {
	txs, err := s.FetchTransactions(ctx, []string{txID})
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return &txs[0], nil
}

// LookupTransaction is FetchTransaction for the validator: a read that runs
// past the call timeout counts as not found.
func (s *TransactionStore) LookupTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error) {
	tx, err := s.FetchTransaction(ctx, txID)
	if err != nil {
		if timedOut(ctx, err) {
			s.logger.Warn("transaction lookup timed out, treating as not found",
				zap.String("txid", txID),
				zap.Duration("timeout", s.timeout),
			)
			return nil, nil
		}
		return nil, err
	}
	return tx, nil
}

// FetchTransactions returns the stored transactions among txIDs.
func (s *TransactionStore) FetchTransactions(ctx context.Context, txIDs []string) ([]model.IndexerTransaction, error) {
	res := make([]model.IndexerTransaction, 0, len(txIDs))
	var missing []string
	for _, id := range txIDs {
		if cached, ok := s.cache.Get(id); ok {
			s.metrics.ObserveHit(txCacheName)
			res = append(res, cached.(model.IndexerTransaction))
			continue
		}
		s.metrics.ObserveMiss(txCacheName)
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return res, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	txs, err := s.repo.TransactionsByIDs(callCtx, missing)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	for _, tx := range txs {
		indexed := model.NewIndexerTransaction(tx)
		s.cache.SetDefault(tx.TxID, indexed)
		res = append(res, indexed)
	}
	return res, nil
}

// FetchTransactionsInvolvingToken returns one page of VALID transactions of
// tokenID, newest first. Pages start at 1.
func (s *TransactionStore) FetchTransactionsInvolvingToken(ctx context.Context, tokenID string, page int) ([]model.IndexerTransaction, error) {
	if page < 1 {
		page = 1
	}
	offset := uint64(tokenPageSize * (page - 1))

	txs, err := s.repo.TransactionsByToken(ctx, tokenID, model.VerdictValid, tokenPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions of token %s: %w", tokenID, err)
	}
	res := make([]model.IndexerTransaction, len(txs))
	for i, tx := range txs {
		res[i] = model.NewIndexerTransaction(tx)
	}
	return res, nil
}

// SaveTransactions upserts txs and refreshes their cache entries.
func (s *TransactionStore) SaveTransactions(ctx context.Context, txs []model.IndexerTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	plain := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		plain[i] = tx.Transaction
	}
	if err := s.repo.InsertTransactions(ctx, plain); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	for _, tx := range txs {
		s.cache.SetDefault(tx.TxID(), tx)
	}
	return nil
}

// TransactionIDsByBlockHash lists the transactions recorded for a block.
func (s *TransactionStore) TransactionIDsByBlockHash(ctx context.Context, blockHash string) ([]string, error) {
	ids, err := s.repo.TransactionIDsByBlockHash(ctx, blockHash)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions of block %s: %w", blockHash, err)
	}
	return ids, nil
}

// RemoveTransactions deletes the records of txIDs.
func (s *TransactionStore) RemoveTransactions(ctx context.Context, txIDs []string) error {
	if len(txIDs) == 0 {
		return nil
	}
	for _, id := range txIDs {
		s.cache.Delete(id)
	}
	if err := s.repo.DeleteTransactions(ctx, txIDs); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}
