package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
)

func sendRule(ctx context.Context, tx model.Transaction, r reader) (model.SlpValid, error) {
	ref := tx.Operation.Ref()
	current := tx.TokenAmount()
	previous := decimal.Zero
	var prevTxIDs []string

	for _, in := range tx.Inputs {
		prev, err := prevTokenTransaction(ctx, r, in, ref.TokenID)
		if err != nil {
			return model.SlpValid{}, fmt.Errorf("fetch parent %s: %w", in.PrevTxID, err)
		}
		if prev == nil {
			continue
		}
		prevTxIDs = append(prevTxIDs, prev.TxID)

		if !anyTokenType(prev.SlpOutputs(), ref.TokenType) {
			return model.InvalidVerdict(fmt.Sprintf("None of prevTx utxos matches this tokenType prevTx=%s txId=%s tokenType=%s", prev.TxID, tx.TxID, ref.TokenType)), nil
		}
		if prev.Verdict().Verdict == model.VerdictInvalid {
			continue
		}
		if spent := spentAnnotation(*prev, in.PrevIndex); spent != nil && spent.TokenID == ref.TokenID {
			previous = previous.Add(spent.Amount)
		}
	}

	switch {
	case previous.IsZero() && current.IsZero():
		return model.ValidVerdict("prevTx and currentTx has output val 0 currentTx=" + tx.TxID), nil
	case current.Sign() <= 0 && ref.TokenType == model.TokenTypeNFT1Child:
		return model.ValidVerdict("Valid 0 output cause of valid NFT1_GENESIS tokenType=" + ref.TokenType.String()), nil
	case current.IsZero() && previous.Sign() > 0:
		return model.InvalidVerdict(fmt.Sprintf("Current token output val is 0 txId=%s prevTx=%s", tx.TxID, previous)), nil
	case current.IsZero() && previous.Sign() < 0:
		// Kept for compatibility. Parent amounts are never negative, so this
		// branch is not expected to fire.
		return model.ValidVerdict(fmt.Sprintf("Current token output val is 0 txId=%s tokenType=%s", tx.TxID, ref.TokenType)), nil
	case current.Sign() < 0:
		return model.InvalidVerdict("CurrentTxValue is less than 0 txId=" + tx.TxID), nil
	case current.GreaterThan(previous):
		return model.InvalidVerdict(fmt.Sprintf(
			"CurrentTxValue is larger than previousValue txId=%s current=%s prev=%s prevTxIds=%s",
			tx.TxID, current, previous, strings.Join(prevTxIDs, " : "),
		)), nil
	}

	return model.ValidVerdict(fmt.Sprintf("Tx has correct values and is valid currentSlpValue=%s prevTokenValue=%s", current, previous)), nil
}
