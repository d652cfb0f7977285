// Package chain holds block-level helpers shared by the ingesters.
package chain

import "github.com/goodnatureofminers/slp-indexer/internal/slp/model"

// OrderGenesisFirst moves GENESIS transactions in front of everything else.
// GENESIS transactions are pushed onto the front, so their relative order is
// reversed; all other transactions keep their order at the back.
func OrderGenesisFirst(txs []model.Transaction) []model.Transaction {
	var (
		genesis []model.Transaction
		rest    = make([]model.Transaction, 0, len(txs))
	)
	for _, tx := range txs {
		if isGenesis(tx) {
			genesis = append(genesis, tx)
			continue
		}
		rest = append(rest, tx)
	}

	ordered := make([]model.Transaction, 0, len(txs))
	for i := len(genesis) - 1; i >= 0; i-- {
		ordered = append(ordered, genesis[i])
	}
	return append(ordered, rest...)
}

func isGenesis(tx model.Transaction) bool {
	return tx.Operation != nil && tx.Operation.Kind() == model.OperationGenesis
}
