package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// SlpUtxosByAddress lists unspent token outputs owned by address.
func (r *Repository) SlpUtxosByAddress(ctx context.Context, address string, validity model.Verdict) ([]model.Output, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("slp_utxos_by_address", err, start)
	}()

	const query = `
SELECT` + utxoColumns + `
FROM slp_utxos FINAL
WHERE address = ? AND has_slp AND NOT spent AND parent_valid = ?
ORDER BY timestamp ASC, txid ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, address, string(validity))
	if err != nil {
		return nil, fmt.Errorf("query slp utxos by address: %w", err)
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
