package ingester

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/bitcoin"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Annotator interface {
		Annotate(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	}
	Validator interface {
		Validate(ctx context.Context, tx model.Transaction) (model.SlpValid, error)
	}
	UtxoStore interface {
		Save(ctx context.Context, outputs []model.Output) error
		Spend(ctx context.Context, outpoints []model.Outpoint, spender string) error
		Unspend(ctx context.Context, outpoints []model.Outpoint) error
		Remove(ctx context.Context, txIDs []string) error
		FetchByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]model.Output, error)
		RefreshValidity(ctx context.Context, tx model.Transaction) error
	}
	TransactionStore interface {
		FetchTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error)
		FetchTransactions(ctx context.Context, txIDs []string) ([]model.IndexerTransaction, error)
		SaveTransactions(ctx context.Context, txs []model.IndexerTransaction) error
		TransactionIDsByBlockHash(ctx context.Context, blockHash string) ([]string, error)
		RemoveTransactions(ctx context.Context, txIDs []string) error
	}
	HeaderStore interface {
		Put(ctx context.Context, header model.BlockHeader) error
		ByHeight(ctx context.Context, height uint64) (*model.BlockHeader, error)
		Tip(ctx context.Context) (*model.BlockHeader, error)
		Delete(ctx context.Context, hash string) error
	}
	Ingester interface {
		Ingest(ctx context.Context, txs []model.Transaction) ([]model.IndexerTransaction, error)
	}
	Reorganizer interface {
		Reorganize(ctx context.Context, oldBlocks, newBlocks []model.Block) error
	}
	BlockSource interface {
		TipHeight(ctx context.Context) (uint64, error)
		HashAt(ctx context.Context, height uint64) (string, error)
		BlockAt(ctx context.Context, height uint64) (model.Block, error)
	}
	MempoolSource interface {
		MempoolTxIDs(ctx context.Context) ([]string, error)
		MempoolTransaction(ctx context.Context, txID string, seen time.Time) (model.Transaction, error)
	}
	Converter interface {
		Block(msg *wire.MsgBlock, height uint64) (model.Block, error)
		RawTransaction(raw []byte, txc bitcoin.TxContext) (model.Transaction, error)
	}
	PipelineMetrics interface {
		ObserveBatch(err error, size int, started time.Time)
	}
	BlockIngesterMetrics interface {
		ObserveBlock(err error, height uint64, started time.Time)
		ObserveReorg(err error, depth int)
	}
	MempoolMetrics interface {
		ObserveTransaction(outcome string)
	}
)
