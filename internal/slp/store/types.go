package store

import (
	"context"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	UtxoRepository interface {
		InsertUtxos(ctx context.Context, outputs []model.Output) error
		UtxosByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]model.Output, error)
		UtxosByTokenIDs(ctx context.Context, tokenIDs []string, spent bool, validity model.Verdict) ([]model.Output, error)
		SlpUtxosByAddress(ctx context.Context, address string, validity model.Verdict) ([]model.Output, error)
		SpenderTxIDs(ctx context.Context, txID string) ([]string, error)
		DeleteUtxos(ctx context.Context, txIDs []string) error
	}
	TransactionRepository interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		TransactionsByIDs(ctx context.Context, txIDs []string) ([]model.Transaction, error)
		TransactionsByToken(ctx context.Context, tokenID string, validity model.Verdict, limit, offset uint64) ([]model.Transaction, error)
		TransactionIDsByBlockHash(ctx context.Context, blockHash string) ([]string, error)
		DeleteTransactions(ctx context.Context, txIDs []string) error
	}
	TokenDetailsRepository interface {
		InsertTokenDetails(ctx context.Context, details []model.TokenDetails) error
		TokenDetailsByIDs(ctx context.Context, tokenIDs []string) ([]model.TokenDetails, error)
	}
	CacheMetrics interface {
		ObserveHit(cache string)
		ObserveMiss(cache string)
	}
)
