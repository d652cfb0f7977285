// Package validator decides whether SLP transactions are valid and
// re-checks the descendants of transactions that turn out invalid.
package validator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// CascadeStats reports how far an invalidation travelled.
type CascadeStats struct {
	Visited     int
	Invalidated int
}

// Engine dispatches token transactions to the GENESIS, MINT or SEND rule.
type Engine struct {
	reader  reader
	metrics Metrics
	logger  *zap.Logger
}

// NewEngine builds an Engine over the transaction and UTXO stores.
func NewEngine(txs TransactionStore, utxos UtxoStore, metrics Metrics, logger *zap.Logger) (*Engine, error) {
	if txs == nil || utxos == nil {
		return nil, errors.New("validator stores are required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}
	return &Engine{
		reader:  reader{txs: txs, utxos: utxos},
		metrics: metrics,
		logger:  logger.Named("validator"),
	}, nil
}

// Validate computes the verdict of tx. A freshly computed INVALID verdict is
// persisted together with the re-evaluated verdicts of the transactions that
// spend its outputs.
func (e *Engine) Validate(ctx context.Context, tx model.Transaction) (model.SlpValid, error) {
	v, _, err := e.ValidateWithStats(ctx, tx)
	return v, err
}

// ValidateWithStats is Validate that also reports the cascade it triggered.
// A stored INVALID verdict was cascaded when it was first computed.
func (e *Engine) ValidateWithStats(ctx context.Context, tx model.Transaction) (model.SlpValid, CascadeStats, error) {
	v, memoized, err := e.evaluate(ctx, tx, true)
	if err != nil {
		return model.SlpValid{}, CascadeStats{}, fmt.Errorf("validate %s: %w", tx.TxID, err)
	}
	e.observe(tx, v)

	if v.Verdict != model.VerdictInvalid || memoized {
		return v, CascadeStats{}, nil
	}
	e.logger.Info("transaction invalid", zap.String("txid", tx.TxID), zap.String("reason", v.Reason))
	return v, e.cascade(ctx, tx.TxID, v), nil
}

// evaluate reports whether the verdict came from the store rather than the
// rules.
func (e *Engine) evaluate(ctx context.Context, tx model.Transaction, memo bool) (model.SlpValid, bool, error) {
	ref, ok := tx.TokenRef()
	if !ok || ref.TokenID == "" {
		return model.InvalidVerdict("tokenType, tokenId is null"), false, nil
	}
	if len(tx.Outputs) == 0 || !tx.Outputs[0].OpReturn {
		return model.InvalidVerdict("no op_return txId=" + tx.TxID), false, nil
	}

	kind := selectRule(tx.SlpOutputs())
	if memo && kind != model.OperationGenesis {
		stored, err := e.reader.txs.LookupTransaction(ctx, tx.TxID)
		if err != nil {
			return model.SlpValid{}, false, fmt.Errorf("fetch stored verdict: %w", err)
		}
		if stored != nil && stored.Transaction.Valid != nil && !stored.Transaction.Valid.IsUnknown() {
			return *stored.Transaction.Valid, true, nil
		}
	}

	v, err := rules[kind](ctx, tx, e.reader)
	return v, false, err
}

func (e *Engine) observe(tx model.Transaction, v model.SlpValid) {
	kind := model.OperationKind("NONE")
	if tx.Operation != nil {
		kind = tx.Operation.Kind()
	}
	e.metrics.ObserveVerdict(kind, v.Verdict)
}
