// Package store puts caches in front of the ClickHouse repositories and owns
// the lifecycle of outputs and transaction records.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// UtxoStore tracks outputs by outpoint behind a bounded, expiring cache.
type UtxoStore struct {
	repo    UtxoRepository
	cache   *expirable.LRU[model.Outpoint, model.Output]
	metrics CacheMetrics
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewUtxoStore builds a UtxoStore over repo.
func NewUtxoStore(repo UtxoRepository, metrics CacheMetrics, cfg Config, logger *zap.Logger) (*UtxoStore, error) {
	if repo == nil {
		return nil, errors.New("utxo repository is required")
	}
	if metrics == nil {
		return nil, errors.New("cache metrics is required")
	}
	cfg = cfg.withDefaults()

	return &UtxoStore{
		repo:    repo,
		cache:   expirable.NewLRU[model.Outpoint, model.Output](cfg.UtxoCacheSize, nil, cfg.UtxoCacheTTL),
		metrics: metrics,
		timeout: cfg.CallTimeout,
		logger:  logger.Named("utxoStore"),
		now:     time.Now,
	}, nil
}

// Save upserts outputs. An output that is already stored keeps its creation
// timestamp, its spent state and any verdict already propagated onto it.
func (s *UtxoStore) Save(ctx context.Context, outputs []model.Output) error {
	if len(outputs) == 0 {
		return nil
	}

	existing, err := s.loadExisting(ctx, outpointsOf(outputs))
	if err != nil {
		return fmt.Errorf("load stored outputs: %w", err)
	}

	merged := make([]model.Output, 0, len(outputs))
	for _, o := range outputs {
		if prev, ok := existing[o.Outpoint()]; ok {
			o = preserve(o, prev)
		} else if o.Timestamp.IsZero() {
			o.Timestamp = s.now()
		}
		merged = append(merged, o)
	}

	if err := s.repo.InsertUtxos(ctx, merged); err != nil {
		return fmt.Errorf("insert outputs: %w", err)
	}
	for _, o := range merged {
		s.cache.Add(o.Outpoint(), o)
	}
	return nil
}

func preserve(o, prev model.Output) model.Output {
	if !prev.Timestamp.IsZero() {
		o.Timestamp = prev.Timestamp
	}
	o.Spent = prev.Spent
	o.SpentBy = prev.SpentBy
	if o.Slp != nil && prev.Slp != nil && o.Slp.ParentValid == model.VerdictUnknown {
		o = o.WithParentValid(prev.Slp.ParentValid)
	}
	return o
}

// Spend marks stored outpoints as spent by spender. Unknown outpoints are ignored.
func (s *UtxoStore) Spend(ctx context.Context, outpoints []model.Outpoint, spender string) error {
	return s.setSpent(ctx, outpoints, true, spender)
}

// Unspend reverts Spend for outpoints whose spender was orphaned.
func (s *UtxoStore) Unspend(ctx context.Context, outpoints []model.Outpoint) error {
	return s.setSpent(ctx, outpoints, false, "")
}

func (s *UtxoStore) setSpent(ctx context.Context, outpoints []model.Outpoint, spent bool, spender string) error {
	if len(outpoints) == 0 {
		return nil
	}
	for _, op := range outpoints {
		s.cache.Remove(op)
	}

	existing, err := s.loadExisting(ctx, outpoints)
	if err != nil {
		return fmt.Errorf("load outputs to update: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}

	updated := make([]model.Output, 0, len(existing))
	for _, op := range outpoints {
		o, ok := existing[op]
		if !ok {
			continue
		}
		o.Spent = spent
		o.SpentBy = spender
		updated = append(updated, o)
	}
	if err := s.repo.InsertUtxos(ctx, updated); err != nil {
		return fmt.Errorf("update spent state: %w", err)
	}
	return nil
}

// Remove drops every output created by txIDs.
func (s *UtxoStore) Remove(ctx context.Context, txIDs []string) error {
	if len(txIDs) == 0 {
		return nil
	}
	if err := s.repo.DeleteUtxos(ctx, txIDs); err != nil {
		return fmt.Errorf("delete outputs: %w", err)
	}

	removed := make(map[string]struct{}, len(txIDs))
	for _, id := range txIDs {
		removed[id] = struct{}{}
	}
	for _, key := range s.cache.Keys() {
		if _, ok := removed[key.TxID]; ok {
			s.cache.Remove(key)
		}
	}
	return nil
}

// FetchByOutpoint returns the stored output or nil.
func (s *UtxoStore) FetchByOutpoint(ctx context.Context, outpoint model.Outpoint) (*model.Output, error) {
	outputs, err := s.FetchByOutpoints(ctx, []model.Outpoint{outpoint})
	if err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, nil
	}
	return &outputs[0], nil
}

// LookupOutput is FetchByOutpoint for the validator: a read that runs past
// the call timeout counts as not found.
func (s *UtxoStore) LookupOutput(ctx context.Context, outpoint model.Outpoint) (*model.Output, error) {
	out, err := s.FetchByOutpoint(ctx, outpoint)
	if err != nil {
		if timedOut(ctx, err) {
			s.logger.Warn("output lookup timed out, treating as not found",
				zap.Stringer("outpoint", outpoint),
				zap.Duration("timeout", s.timeout),
			)
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// FetchByOutpoints returns the stored outputs among outpoints, cache first.
func (s *UtxoStore) FetchByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]model.Output, error) {
	res := make([]model.Output, 0, len(outpoints))
	var missing []model.Outpoint
	for _, op := range outpoints {
		if o, ok := s.cache.Get(op); ok {
			s.metrics.ObserveHit(utxoCacheName)
			res = append(res, o)
			continue
		}
		s.metrics.ObserveMiss(utxoCacheName)
		missing = append(missing, op)
	}
	if len(missing) == 0 {
		return res, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fetched, err := s.repo.UtxosByOutpoints(callCtx, missing)
	if err != nil {
		return nil, fmt.Errorf("fetch outputs: %w", err)
	}
	for _, o := range fetched {
		s.cache.Add(o.Outpoint(), o)
	}
	return append(res, fetched...), nil
}

// FetchByTokenID lists outputs of tokenIDs with the given spent state whose
// creating transaction carries validity.
func (s *UtxoStore) FetchByTokenID(ctx context.Context, tokenIDs []string, spent bool, validity model.Verdict) ([]model.Output, error) {
	outputs, err := s.repo.UtxosByTokenIDs(ctx, tokenIDs, spent, validity)
	if err != nil {
		return nil, fmt.Errorf("fetch outputs by token: %w", err)
	}
	return outputs, nil
}

// FetchSlpUtxosForAddress lists the unspent token outputs held by address.
func (s *UtxoStore) FetchSlpUtxosForAddress(ctx context.Context, address string, validity model.Verdict) ([]model.Output, error) {
	outputs, err := s.repo.SlpUtxosByAddress(ctx, address, validity)
	if err != nil {
		return nil, fmt.Errorf("fetch outputs for %s: %w", address, err)
	}
	return outputs, nil
}

// Spenders returns the distinct transactions spending outputs of txID.
func (s *UtxoStore) Spenders(ctx context.Context, txID string) ([]string, error) {
	ids, err := s.repo.SpenderTxIDs(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("fetch spenders of %s: %w", txID, err)
	}
	return ids, nil
}

// RefreshValidity copies the verdict of tx onto its stored token outputs.
// Cached entries are updated in place.
func (s *UtxoStore) RefreshValidity(ctx context.Context, tx model.Transaction) error {
	var outpoints []model.Outpoint
	for _, o := range tx.Outputs {
		if o.Slp != nil {
			outpoints = append(outpoints, o.Outpoint())
		}
	}
	if len(outpoints) == 0 {
		return nil
	}

	existing, err := s.loadExisting(ctx, outpoints)
	if err != nil {
		return fmt.Errorf("load outputs of %s: %w", tx.TxID, err)
	}
	verdict := tx.Verdict().Verdict

	updated := make([]model.Output, 0, len(existing))
	for _, op := range outpoints {
		o, ok := existing[op]
		if !ok || o.Slp == nil || o.Slp.ParentValid == verdict {
			continue
		}
		updated = append(updated, o.WithParentValid(verdict))
	}
	if len(updated) == 0 {
		return nil
	}
	if err := s.repo.InsertUtxos(ctx, updated); err != nil {
		return fmt.Errorf("update validity of %s: %w", tx.TxID, err)
	}
	for _, o := range updated {
		if s.cache.Contains(o.Outpoint()) {
			s.cache.Add(o.Outpoint(), o)
		}
	}
	return nil
}

func (s *UtxoStore) loadExisting(ctx context.Context, outpoints []model.Outpoint) (map[model.Outpoint]model.Output, error) {
	outputs, err := s.repo.UtxosByOutpoints(ctx, outpoints)
	if err != nil {
		return nil, err
	}
	res := make(map[model.Outpoint]model.Output, len(outputs))
	for _, o := range outputs {
		res[o.Outpoint()] = o
	}
	return res, nil
}

func outpointsOf(outputs []model.Output) []model.Outpoint {
	res := make([]model.Outpoint, len(outputs))
	for i, o := range outputs {
		res[i] = o.Outpoint()
	}
	return res
}
