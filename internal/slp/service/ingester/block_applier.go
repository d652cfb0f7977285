package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/chain"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// blockApplier ingests one block and records its header.
type blockApplier struct {
	pipeline Ingester
	utxos    UtxoStore
	headers  HeaderStore
	logger   *zap.Logger
}

func (a *blockApplier) apply(ctx context.Context, block model.Block) error {
	ordered := chain.OrderGenesisFirst(block.Transactions)
	selected, err := SelectIndexable(ctx, a.utxos, ordered)
	if err != nil {
		return fmt.Errorf("select transactions of block %d: %w", block.Height, err)
	}

	if _, err := a.pipeline.Ingest(ctx, selected); err != nil {
		return fmt.Errorf("ingest block %d: %w", block.Height, err)
	}
	if err := a.headers.Put(ctx, block.BlockHeader); err != nil {
		return fmt.Errorf("record header of block %d: %w", block.Height, err)
	}

	a.logger.Info("block indexed",
		zap.Uint64("height", block.Height),
		zap.String("hash", block.Hash),
		zap.Int("transactions", len(block.Transactions)),
		zap.Int("indexed", len(selected)),
	)
	return nil
}
