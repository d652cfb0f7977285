package validator

import (
	"context"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// rule computes a verdict for a token transaction. Rules hold no state; every
// lookup goes through the reader.
type rule func(ctx context.Context, tx model.Transaction, r reader) (model.SlpValid, error)

type reader struct {
	txs   TransactionStore
	utxos UtxoStore
}

var rules = map[model.OperationKind]rule{
	model.OperationGenesis: genesisRule,
	model.OperationMint:    mintRule,
	model.OperationSend:    sendRule,
}

// selectRule picks the rule by the operation kinds found on the annotated
// outputs: GENESIS wins over MINT, anything else is a SEND.
func selectRule(outputs []model.SlpUtxo) model.OperationKind {
	var mint bool
	for _, o := range outputs {
		switch o.Operation {
		case model.OperationGenesis:
			return model.OperationGenesis
		case model.OperationMint:
			mint = true
		}
	}
	if mint {
		return model.OperationMint
	}
	return model.OperationSend
}

// spentAnnotation returns the token annotation of prev's output at index.
func spentAnnotation(prev model.Transaction, index uint32) *model.SlpUtxo {
	for _, o := range prev.Outputs {
		if o.Index == index {
			return o.Slp
		}
	}
	return nil
}

func hasTokenOutput(tx model.Transaction, tokenID string) bool {
	for _, o := range tx.Outputs {
		if o.Slp != nil && o.Slp.TokenID == tokenID {
			return true
		}
	}
	return false
}

// prevTokenTransaction loads the transaction that created the output spent by
// in. It returns nil when the parent is unknown or carries nothing of tokenID,
// which means the input is a plain coin.
func prevTokenTransaction(ctx context.Context, r reader, in model.Input, tokenID string) (*model.Transaction, error) {
	if in.Coinbase {
		return nil, nil
	}
	prev, err := r.txs.LookupTransaction(ctx, in.PrevTxID)
	if err != nil {
		return nil, err
	}
	if prev == nil || !hasTokenOutput(prev.Transaction, tokenID) {
		return nil, nil
	}
	return &prev.Transaction, nil
}
