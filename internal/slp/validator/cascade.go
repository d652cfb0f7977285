package validator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// cascade persists the INVALID verdict of root and walks its descendants
// breadth first. A descendant is re-evaluated without the stored verdict,
// and its own children are queued only when its verdict changed. Failures
// on one descendant are logged and the walk continues.
func (e *Engine) cascade(ctx context.Context, root string, verdict model.SlpValid) CascadeStats {
	var stats CascadeStats
	started := time.Now()
	defer func() { e.metrics.ObserveCascade(stats.Visited, stats.Invalidated, started) }()

	logger := e.logger.With(zap.String("root", root))

	record, err := e.reader.txs.FetchTransaction(ctx, root)
	if err != nil {
		logger.Error("load cascade root failed", zap.Error(err))
		return stats
	}
	if record == nil {
		return stats
	}
	if !e.persist(ctx, logger, record.WithVerdict(verdict)) {
		return stats
	}

	visited := map[string]struct{}{root: {}}
	queue := e.children(ctx, logger, root)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}

		child, err := e.reader.txs.FetchTransaction(ctx, id)
		if err != nil {
			logger.Error("load cascade child failed", zap.String("txid", id), zap.Error(err))
			continue
		}
		if child == nil || child.Transaction.Valid == nil || child.Transaction.Valid.Verdict == model.VerdictInvalid {
			continue
		}
		stats.Visited++

		previous := child.Transaction.Valid.Verdict
		v, _, err := e.evaluate(ctx, child.Transaction, false)
		if err != nil {
			logger.Error("re-evaluate cascade child failed", zap.String("txid", id), zap.Error(err))
			continue
		}
		if !e.persist(ctx, logger, child.WithVerdict(v)) {
			continue
		}
		logger.Debug("cascade child re-evaluated",
			zap.String("txid", id),
			zap.String("previous", string(previous)),
			zap.String("verdict", string(v.Verdict)),
		)

		if v.Verdict == model.VerdictInvalid {
			stats.Invalidated++
		}
		if v.Verdict != previous {
			queue = append(queue, e.children(ctx, logger, id)...)
		}
	}

	return stats
}

func (e *Engine) persist(ctx context.Context, logger *zap.Logger, tx model.IndexerTransaction) bool {
	if err := e.reader.txs.SaveTransactions(ctx, []model.IndexerTransaction{tx}); err != nil {
		logger.Error("save cascade verdict failed", zap.String("txid", tx.TxID()), zap.Error(err))
		return false
	}
	if err := e.reader.utxos.RefreshValidity(ctx, tx.Transaction); err != nil {
		logger.Error("refresh output validity failed", zap.String("txid", tx.TxID()), zap.Error(err))
	}
	return true
}

func (e *Engine) children(ctx context.Context, logger *zap.Logger, txID string) []string {
	spenders, err := e.reader.utxos.Spenders(ctx, txID)
	if err != nil {
		logger.Error("load spenders failed", zap.String("txid", txID), zap.Error(err))
		return nil
	}
	return spenders
}
