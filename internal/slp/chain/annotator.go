package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Annotator places token annotations on the outputs of a token transaction.
type Annotator struct {
	details TokenDetailsStore
	logger  *zap.Logger
}

// NewAnnotator constructs an Annotator.
func NewAnnotator(details TokenDetailsStore, logger *zap.Logger) *Annotator {
	return &Annotator{details: details, logger: logger}
}

// Annotate returns tx with token annotations on the outputs its operation
// assigns amounts or the baton to. Plain transactions are returned unchanged.
func (a *Annotator) Annotate(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if tx.Operation == nil {
		return tx, nil
	}

	details, err := a.tokenDetails(ctx, tx)
	if err != nil {
		return model.Transaction{}, err
	}

	outputs := append([]model.Output(nil), tx.Outputs...)
	positions := make(map[uint32]int, len(outputs))
	for i, o := range outputs {
		positions[o.Index] = i
	}
	annotate := func(vout uint32, slp model.SlpUtxo) {
		pos, ok := positions[vout]
		if !ok {
			return
		}
		outputs[pos] = outputs[pos].WithAnnotation(slp)
	}

	ref := tx.Operation.Ref()
	base := model.SlpUtxo{
		TokenID:     ref.TokenID,
		Ticker:      details.Ticker,
		Name:        details.Name,
		TokenType:   ref.TokenType,
		ParentValid: model.VerdictUnknown,
	}

	switch op := tx.Operation.(type) {
	case model.SendOperation:
		for i, q := range op.Quantities {
			slp := base
			slp.Operation = model.OperationSend
			slp.Amount = details.Scale(q)
			annotate(uint32(i+1), slp)
		}
	case model.GenesisOperation:
		annotateIssue(annotate, base, model.OperationGenesis, op.BatonVout, details.Scale(op.MintedAmount))
	case model.MintOperation:
		annotateIssue(annotate, base, model.OperationMint, op.BatonVout, details.Scale(op.MintedAmount))
	}

	return tx.WithOutputs(outputs), nil
}

func annotateIssue(
	annotate func(uint32, model.SlpUtxo),
	base model.SlpUtxo,
	kind model.OperationKind,
	batonVout *uint32,
	minted decimal.Decimal,
) {
	if batonVout != nil {
		baton := base
		baton.Operation = kind
		baton.HasBaton = true
		annotate(*batonVout, baton)
	}
	issued := base
	issued.Operation = kind
	issued.Amount = minted
	// minted quantity always lands on vout 1
	annotate(1, issued)
}

func (a *Annotator) tokenDetails(ctx context.Context, tx model.Transaction) (model.TokenDetails, error) {
	ref := tx.Operation.Ref()

	if genesis, ok := tx.Operation.(model.GenesisOperation); ok {
		details := model.TokenDetails{
			TokenID:     ref.TokenID,
			Ticker:      genesis.Ticker,
			Name:        genesis.Name,
			DocumentURI: genesis.DocumentURI,
			Decimals:    genesis.Decimals,
			TokenType:   ref.TokenType,
		}
		if tx.BlockHeight != nil {
			details.GenesisHeight = *tx.BlockHeight
		}
		if err := a.details.SaveTokenDetails(ctx, details); err != nil {
			return model.TokenDetails{}, fmt.Errorf("save token details %s: %w", ref.TokenID, err)
		}
		return details, nil
	}

	stored, err := a.details.TokenDetails(ctx, ref.TokenID)
	if err != nil {
		return model.TokenDetails{}, fmt.Errorf("load token details %s: %w", ref.TokenID, err)
	}
	if stored == nil {
		a.logger.Info("token details missing, annotating without decimals",
			zap.String("txid", tx.TxID),
			zap.String("token_id", ref.TokenID),
		)
		return model.TokenDetails{TokenID: ref.TokenID, TokenType: ref.TokenType}, nil
	}

	details := *stored
	if tx.BlockHeight == nil {
		return details, nil
	}
	switch tx.Operation.Kind() {
	case model.OperationMint:
		details.LastMintHeight = *tx.BlockHeight
	case model.OperationSend:
		details.LastSendHeight = *tx.BlockHeight
	}
	if details != *stored {
		if err := a.details.SaveTokenDetails(ctx, details); err != nil {
			return model.TokenDetails{}, fmt.Errorf("update token details %s: %w", ref.TokenID, err)
		}
	}
	return details, nil
}
