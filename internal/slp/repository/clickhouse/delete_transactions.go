package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// DeleteTransactions removes every version of the given transactions.
func (r *Repository) DeleteTransactions(ctx context.Context, txIDs []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("delete_transactions", err, start)
	}()

	if len(txIDs) == 0 {
		return nil
	}

	const query = `DELETE FROM slp_transactions WHERE txid IN ?`

	if err = r.conn.Exec(ctx, query, txIDs); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}
