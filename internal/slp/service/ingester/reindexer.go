package ingester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/bitcoin"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/chain"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// Reindexer feeds operator supplied blocks and transactions through the
// pipeline. Replays are safe.
type Reindexer struct {
	converter Converter
	pipeline  Ingester
	utxos     UtxoStore
	txs       TransactionStore
	now       func() time.Time
	logger    *zap.Logger
}

// NewReindexer builds a Reindexer.
func NewReindexer(converter Converter, pipeline Ingester, utxos UtxoStore, txs TransactionStore, logger *zap.Logger) (*Reindexer, error) {
	if converter == nil || pipeline == nil || utxos == nil || txs == nil {
		return nil, errors.New("reindexer dependencies are required")
	}
	return &Reindexer{
		converter: converter,
		pipeline:  pipeline,
		utxos:     utxos,
		txs:       txs,
		now:       time.Now,
		logger:    logger.Named("reindexer"),
	}, nil
}

// ReindexBlock decodes a serialized block found at height and ingests its
// relevant transactions.
func (r *Reindexer) ReindexBlock(ctx context.Context, raw []byte, height uint64) ([]model.IndexerTransaction, error) {
	var msg wire.MsgBlock
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	block, err := r.converter.Block(&msg, height)
	if err != nil {
		return nil, err
	}

	selected, err := SelectIndexable(ctx, r.utxos, chain.OrderGenesisFirst(block.Transactions))
	if err != nil {
		return nil, err
	}
	r.logger.Info("reindexing block",
		zap.String("hash", block.Hash),
		zap.Uint64("height", height),
		zap.Int("transactions", len(selected)),
	)
	return r.pipeline.Ingest(ctx, selected)
}

// ReindexTransaction decodes a serialized transaction and ingests it. A
// transaction already recorded in a block keeps its block placement.
func (r *Reindexer) ReindexTransaction(ctx context.Context, raw []byte) ([]model.IndexerTransaction, error) {
	tx, err := r.converter.RawTransaction(raw, bitcoin.TxContext{Timestamp: r.now()})
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}

	stored, err := r.txs.FetchTransaction(ctx, tx.TxID)
	if err != nil {
		return nil, fmt.Errorf("load stored %s: %w", tx.TxID, err)
	}
	if stored != nil && stored.Transaction.Confirmed {
		prev := stored.Transaction
		tx, err = r.converter.RawTransaction(raw, bitcoin.TxContext{
			Timestamp:   prev.Timestamp,
			BlockHash:   prev.BlockHash,
			BlockHeight: prev.BlockHeight,
			BlockTime:   prev.BlockTime,
		})
		if err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
	}

	r.logger.Info("reindexing transaction", zap.String("txid", tx.TxID), zap.Bool("confirmed", tx.Confirmed))
	return r.pipeline.Ingest(ctx, []model.Transaction{tx})
}
