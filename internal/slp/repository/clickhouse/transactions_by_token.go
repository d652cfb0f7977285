package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// TransactionsByToken pages through transactions touching tokenID with the
// given verdict, newest first.
func (r *Repository) TransactionsByToken(ctx context.Context, tokenID string, validity model.Verdict, limit, offset uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("transactions_by_token", err, start)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM slp_transactions FINAL
WHERE has(token_ids, ?) AND verdict = ?
ORDER BY timestamp DESC, txid ASC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, tokenID, string(validity), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query transactions by token: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var txs []model.Transaction
	txs, err = scanTransactions(rows)
	if err != nil {
		return nil, err
	}
	return txs, nil
}
