package validator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionStore interface {
		LookupTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error)
		FetchTransaction(ctx context.Context, txID string) (*model.IndexerTransaction, error)
		SaveTransactions(ctx context.Context, txs []model.IndexerTransaction) error
	}
	UtxoStore interface {
		LookupOutput(ctx context.Context, outpoint model.Outpoint) (*model.Output, error)
		Spenders(ctx context.Context, txID string) ([]string, error)
		RefreshValidity(ctx context.Context, tx model.Transaction) error
	}
	Metrics interface {
		ObserveVerdict(kind model.OperationKind, verdict model.Verdict)
		ObserveCascade(visited, invalidated int, started time.Time)
	}
)
