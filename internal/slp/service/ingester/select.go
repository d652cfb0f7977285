package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// SelectIndexable keeps the transactions worth indexing, in order: token
// transactions, and plain transactions spending a tracked output. An output
// is tracked when it is stored or was produced earlier in txs by a kept
// transaction.
func SelectIndexable(ctx context.Context, utxos UtxoStore, txs []model.Transaction) ([]model.Transaction, error) {
	var wanted []model.Outpoint
	for _, tx := range txs {
		if tx.IsToken() {
			continue
		}
		for _, in := range tx.Inputs {
			if !in.Coinbase {
				wanted = append(wanted, in.Outpoint())
			}
		}
	}

	stored := make(map[model.Outpoint]struct{})
	if len(wanted) > 0 {
		found, err := utxos.FetchByOutpoints(ctx, wanted)
		if err != nil {
			return nil, fmt.Errorf("fetch tracked outputs: %w", err)
		}
		for _, o := range found {
			stored[o.Outpoint()] = struct{}{}
		}
	}

	kept := make(map[string]struct{})
	res := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsToken() || spendsTracked(tx, stored, kept) {
			kept[tx.TxID] = struct{}{}
			res = append(res, tx)
		}
	}
	return res, nil
}

func spendsTracked(tx model.Transaction, stored map[model.Outpoint]struct{}, kept map[string]struct{}) bool {
	for _, in := range tx.Inputs {
		if in.Coinbase {
			continue
		}
		if _, ok := stored[in.Outpoint()]; ok {
			return true
		}
		if _, ok := kept[in.PrevTxID]; ok {
			return true
		}
	}
	return false
}
