package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/goodnatureofminers/slp-indexer/pkg/safe"
)

// BlockSource reads blocks and mempool transactions from the node.
type BlockSource struct {
	client    RPCClient
	converter *Converter
}

// NewBlockSource constructs a BlockSource.
func NewBlockSource(client RPCClient, converter *Converter) *BlockSource {
	return &BlockSource{client: client, converter: converter}
}

// TipHeight returns the height of the node's best block.
func (s *BlockSource) TipHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Uint64(count)
}

// HashAt returns the hash of the node's block at height.
func (s *BlockSource) HashAt(ctx context.Context, height uint64) (string, error) {
	hash, err := s.hashAt(ctx, height)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// BlockAt fetches and converts the node's block at height.
func (s *BlockSource) BlockAt(ctx context.Context, height uint64) (model.Block, error) {
	hash, err := s.hashAt(ctx, height)
	if err != nil {
		return model.Block{}, err
	}
	return s.block(ctx, hash, height)
}

// BlockByHash fetches and converts a block, looking its height up first.
func (s *BlockSource) BlockByHash(ctx context.Context, blockHash string) (model.Block, error) {
	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return model.Block{}, fmt.Errorf("parse block hash %s: %w", blockHash, err)
	}
	if err := ctx.Err(); err != nil {
		return model.Block{}, err
	}
	header, err := s.client.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	height, err := safe.Uint64(header.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height: %w", blockHash, err)
	}
	return s.block(ctx, hash, height)
}

// MempoolTxIDs lists the transactions waiting in the node mempool.
func (s *BlockSource) MempoolTxIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hashes, err := s.client.GetRawMempool()
	if err != nil {
		return nil, fmt.Errorf("get raw mempool: %w", err)
	}
	ids := make([]string, 0, len(hashes))
	for _, h := range hashes {
		ids = append(ids, h.String())
	}
	return ids, nil
}

// MempoolTransaction fetches an unconfirmed transaction first seen at seen.
func (s *BlockSource) MempoolTransaction(ctx context.Context, txID string, seen time.Time) (model.Transaction, error) {
	hash, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parse txid %s: %w", txID, err)
	}
	if err := ctx.Err(); err != nil {
		return model.Transaction{}, err
	}
	tx, err := s.client.GetRawTransaction(hash)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("get raw transaction %s: %w", txID, err)
	}
	return s.converter.Transaction(tx.MsgTx(), TxContext{Timestamp: seen})
}

func (s *BlockSource) hashAt(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d: %w", height, err)
	}
	hash, err := s.client.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash %d: %w", height, err)
	}
	return hash, nil
}

func (s *BlockSource) block(ctx context.Context, hash *chainhash.Hash, height uint64) (model.Block, error) {
	if err := ctx.Err(); err != nil {
		return model.Block{}, err
	}
	msg, err := s.client.GetBlock(hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return s.converter.Block(msg, height)
}
