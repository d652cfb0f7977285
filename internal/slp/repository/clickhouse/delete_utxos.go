package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// DeleteUtxos removes every output created by txIDs.
func (r *Repository) DeleteUtxos(ctx context.Context, txIDs []string) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("delete_utxos", err, start)
	}()

	if len(txIDs) == 0 {
		return nil
	}

	const query = `DELETE FROM slp_utxos WHERE txid IN ?`

	if err = r.conn.Exec(ctx, query, txIDs); err != nil {
		return fmt.Errorf("delete utxos: %w", err)
	}
	return nil
}
