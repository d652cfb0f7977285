package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// SpenderTxIDs returns the distinct transactions spending outputs of txID.
func (r *Repository) SpenderTxIDs(ctx context.Context, txID string) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("spender_txids", err, start)
	}()

	const query = `
SELECT DISTINCT spent_by
FROM slp_utxos FINAL
WHERE txid = ? AND spent AND spent_by != ''
ORDER BY spent_by ASC`

	rows, err := r.conn.Query(ctx, query, txID)
	if err != nil {
		return nil, fmt.Errorf("query spenders: %w", err)
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
			return nil, fmt.Errorf("scan spender: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spenders: %w", err)
	}
	return ids, nil
}
