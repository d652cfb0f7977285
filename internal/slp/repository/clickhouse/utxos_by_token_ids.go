package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// UtxosByTokenIDs lists token outputs of tokenIDs by spent state and the
// verdict of their creating transaction.
func (r *Repository) UtxosByTokenIDs(ctx context.Context, tokenIDs []string, spent bool, validity model.Verdict) ([]model.Output, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("utxos_by_token_ids", err, start)
	}()

	if len(tokenIDs) == 0 {
		return nil, nil
	}

	const query = `
SELECT` + utxoColumns + `
FROM slp_utxos FINAL
WHERE has_slp AND token_id IN ? AND spent = ? AND parent_valid = ?
ORDER BY timestamp ASC, txid ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, tokenIDs, spent, string(validity))
	if err != nil {
		return nil, fmt.Errorf("query utxos by token ids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var outputs []model.Output
	outputs, err = scanUtxos(rows)
	if err != nil {
		return nil, err
	}
	return outputs, nil
}
