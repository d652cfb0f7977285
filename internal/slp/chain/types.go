package chain

import (
	"context"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TokenDetailsStore interface {
		TokenDetails(ctx context.Context, tokenID string) (*model.TokenDetails, error)
		SaveTokenDetails(ctx context.Context, details model.TokenDetails) error
	}
)
