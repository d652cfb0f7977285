package validator

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

func mintRule(ctx context.Context, tx model.Transaction, r reader) (model.SlpValid, error) {
	ref := tx.Operation.Ref()

	for _, in := range tx.Inputs {
		prev, err := prevTokenTransaction(ctx, r, in, ref.TokenID)
		if err != nil {
			return model.SlpValid{}, fmt.Errorf("fetch parent %s: %w", in.PrevTxID, err)
		}
		if prev == nil {
			continue
		}

		spent := spentAnnotation(*prev, in.PrevIndex)
		if spent != nil && spent.TokenType != ref.TokenType {
			return model.InvalidVerdict(fmt.Sprintf("Minting is not matching prevTx tokentype=%s txId=%s", ref.TokenType, tx.TxID)), nil
		}
		if prev.Verdict().Verdict == model.VerdictInvalid {
			return model.InvalidVerdict(fmt.Sprintf("Minting requires valid parent txId=%s prevTx=%s", tx.TxID, prev.TxID)), nil
		}
		if spent != nil && spent.TokenID == ref.TokenID && spent.HasBaton {
			return model.ValidVerdict(fmt.Sprintf("Mint is valid prev utxo has baton for this tokenId tokenId=%s txId=%s", ref.TokenID, tx.TxID)), nil
		}
	}

	return model.InvalidVerdict(fmt.Sprintf("Invalid mint for txId=%s currentTxValue=%s", tx.TxID, tx.TokenAmount())), nil
}
