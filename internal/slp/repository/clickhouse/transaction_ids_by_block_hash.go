package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// TransactionIDsByBlockHash lists the transactions confirmed in a block.
func (r *Repository) TransactionIDsByBlockHash(ctx context.Context, blockHash string) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("transaction_ids_by_block_hash", err, start)
	}()

	const query = `
SELECT txid
FROM slp_transactions FINAL
WHERE block_hash = ?
ORDER BY txid ASC`

	rows, err := r.conn.Query(ctx, query, blockHash)
	if err != nil {
		return nil, fmt.Errorf("query transactions by block hash: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan txid: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate txids: %w", err)
	}
	return ids, nil
}
