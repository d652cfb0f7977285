package validator

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

func genesisRule(ctx context.Context, tx model.Transaction, r reader) (model.SlpValid, error) {
	tokenType := tx.Operation.Ref().TokenType
	outputs := tx.SlpOutputs()
	total := tx.TokenAmount()

	if tokenType == model.TokenTypeUnknown {
		return model.InvalidVerdict("Invalid cause type unknown txId=" + tx.TxID), nil
	}
	if total.Sign() <= 0 && !anyBaton(outputs) {
		return model.InvalidVerdict("Invalid cause currentTxValue is zero or less txId=" + tx.TxID), nil
	}

	spent := make([]*model.Output, len(tx.Inputs))
	for i, in := range tx.Inputs {
		if in.Coinbase {
			continue
		}
		prev, err := r.utxos.LookupOutput(ctx, in.Outpoint())
		if err != nil {
			return model.SlpValid{}, fmt.Errorf("fetch spent output %s: %w", in.Outpoint(), err)
		}
		spent[i] = prev
	}

	if tokenType == model.TokenTypeNFT1Child && len(spent) > 1 && spent[0] != nil && spent[1] != nil {
		first, second := spent[0].Slp, spent[1].Slp
		if first == nil && isSingleNFT1Group(second) {
			return model.InvalidVerdict("When the first input is change output from a SLP-valid NFT1 parent SEND tx and second input is an SLP-valid NFT1 parent SEND tx, the NFT1 child GENESIS tx w/ qty=1"), nil
		}
		if first != nil && first.HasBaton && first.TokenType == model.TokenTypeNFT1Genesis && isSingleNFT1Group(second) {
			return model.InvalidVerdict("When the first input is the mint baton from a SLP-valid NFT1 parent MINT tx and second input is an SLP-valid NFT1 parent MINT tx, the NFT1 child GENESIS tx w/ qty=1"), nil
		}
	}

	for _, prev := range spent {
		if prev == nil || prev.Slp == nil || !prev.Slp.IsGenesis() {
			continue
		}
		parent := prev.Slp

		if parent.TokenType == model.TokenTypeNFT1Genesis && tokenType == model.TokenTypeNFT1Child && parent.Amount.IsZero() {
			return model.InvalidVerdict("PrevTx is genesis but with zero output txId=" + tx.TxID), nil
		}
		if parent.TokenType == model.TokenTypePermissionless && anyTokenType(outputs, model.TokenTypeNFT1Child) {
			return model.InvalidVerdict("Invalid cause parent is a type 1 genesis and utxo is NFT1_CHILD"), nil
		}
		if !anyGenesis(outputs) {
			continue
		}

		if parent.TokenType == model.TokenTypeNFT1Genesis && len(tx.Inputs) > 1 && tokenType == model.TokenTypeNFT1Child && anyAmount(outputs, one) {
			return model.InvalidVerdict("NFT1 parent GENESIS tx, the NFT1 child GENESIS tx w/ qty=1 should be SLP-invalid"), nil
		}
		if total.Equal(one) {
			return model.ValidVerdict("prev is genesis and current has amount == 1"), nil
		}
		if nft1Amount(outputs).Sign() > 0 {
			return model.InvalidVerdict("Prev Tx is genesis currentValue has to be more than > 0 txId=" + tx.TxID), nil
		}
		if len(outputs) >= 1 {
			return model.ValidVerdict("Has one slp utxo"), nil
		}
		return model.InvalidVerdict("Invalid since non of the above is true txId=" + tx.TxID), nil
	}

	return model.ValidVerdict("Genesis is a normal one and valid"), nil
}

func isSingleNFT1Group(slp *model.SlpUtxo) bool {
	return slp != nil && slp.TokenType == model.TokenTypeNFT1Genesis && slp.Amount.Equal(one)
}

func anyBaton(outputs []model.SlpUtxo) bool {
	for _, o := range outputs {
		if o.HasBaton {
			return true
		}
	}
	return false
}

func anyGenesis(outputs []model.SlpUtxo) bool {
	for _, o := range outputs {
		if o.IsGenesis() {
			return true
		}
	}
	return false
}

func anyTokenType(outputs []model.SlpUtxo, t model.TokenType) bool {
	for _, o := range outputs {
		if o.TokenType == t {
			return true
		}
	}
	return false
}

func anyAmount(outputs []model.SlpUtxo, amount decimal.Decimal) bool {
	for _, o := range outputs {
		if o.Amount.Equal(amount) {
			return true
		}
	}
	return false
}

func nft1Amount(outputs []model.SlpUtxo) decimal.Decimal {
	total := decimal.Zero
	for _, o := range outputs {
		if o.TokenType.IsNFT1() {
			total = total.Add(o.Amount)
		}
	}
	return total
}
