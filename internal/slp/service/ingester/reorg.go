package ingester

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// ReorgHandler replaces orphaned blocks with the blocks of the new best chain.
type ReorgHandler struct {
	txs     TransactionStore
	utxos   UtxoStore
	headers HeaderStore
	applier *blockApplier
	logger  *zap.Logger
}

// NewReorgHandler builds a ReorgHandler that ingests new blocks through pipeline.
func NewReorgHandler(pipeline Ingester, txs TransactionStore, utxos UtxoStore, headers HeaderStore, logger *zap.Logger) (*ReorgHandler, error) {
	if pipeline == nil || txs == nil || utxos == nil || headers == nil {
		return nil, errors.New("reorg handler dependencies are required")
	}
	logger = logger.Named("reorg")
	return &ReorgHandler{
		txs:     txs,
		utxos:   utxos,
		headers: headers,
		applier: &blockApplier{pipeline: pipeline, utxos: utxos, headers: headers, logger: logger},
		logger:  logger,
	}, nil
}

// Reorganize undoes oldBlocks newest first, then ingests newBlocks in chain
// order. No new block is touched before every old block is undone.
func (h *ReorgHandler) Reorganize(ctx context.Context, oldBlocks, newBlocks []model.Block) error {
	undo := append([]model.Block(nil), oldBlocks...)
	sort.SliceStable(undo, func(i, j int) bool { return undo[i].Height > undo[j].Height })
	redo := append([]model.Block(nil), newBlocks...)
	sort.SliceStable(redo, func(i, j int) bool { return redo[i].Height < redo[j].Height })

	h.logger.Info("reorganizing", zap.Int("orphaned", len(undo)), zap.Int("connected", len(redo)))

	for _, b := range undo {
		if err := h.undo(ctx, b); err != nil {
			return err
		}
	}
	for _, b := range redo {
		if err := h.applier.apply(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (h *ReorgHandler) undo(ctx context.Context, block model.Block) error {
	ids, err := h.txs.TransactionIDsByBlockHash(ctx, block.Hash)
	if err != nil {
		return fmt.Errorf("undo block %s: %w", block.Hash, err)
	}

	if len(ids) > 0 {
		records, err := h.txs.FetchTransactions(ctx, ids)
		if err != nil {
			return fmt.Errorf("undo block %s: %w", block.Hash, err)
		}
		var spent []model.Outpoint
		for _, r := range records {
			for _, in := range r.Transaction.Inputs {
				if !in.Coinbase {
					spent = append(spent, in.Outpoint())
				}
			}
		}

		if err := h.utxos.Unspend(ctx, spent); err != nil {
			return fmt.Errorf("undo block %s: %w", block.Hash, err)
		}
		if err := h.txs.RemoveTransactions(ctx, ids); err != nil {
			return fmt.Errorf("undo block %s: %w", block.Hash, err)
		}
		if err := h.utxos.Remove(ctx, ids); err != nil {
			return fmt.Errorf("undo block %s: %w", block.Hash, err)
		}
	}

	if err := h.headers.Delete(ctx, block.Hash); err != nil {
		return fmt.Errorf("undo block %s: %w", block.Hash, err)
	}
	h.logger.Info("block undone", zap.Uint64("height", block.Height), zap.String("hash", block.Hash), zap.Int("transactions", len(ids)))
	return nil
}
