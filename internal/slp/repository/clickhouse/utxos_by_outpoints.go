package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

const utxoColumns = `
	txid,
	output_index,
	address,
	script_hex,
	amount,
	confirmed,
	spent,
	spent_by,
	op_return,
	has_slp,
	token_id,
	token_amount,
	has_baton,
	ticker,
	operation,
	token_name,
	token_type,
	parent_valid,
	timestamp,
	block_height`

// UtxosByOutpoints loads the stored outputs among outpoints.
func (r *Repository) UtxosByOutpoints(ctx context.Context, outpoints []model.Outpoint) ([]model.Output, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("utxos_by_outpoints", err, start)
	}()

	if len(outpoints) == 0 {
		return nil, nil
	}

	const query = `
SELECT` + utxoColumns + `
FROM slp_utxos FINAL
WHERE txid IN ?
ORDER BY txid ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, distinctTxIDs(outpoints))
	if err != nil {
		return nil, fmt.Errorf("query utxos by outpoints: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	wanted := make(map[model.Outpoint]struct{}, len(outpoints))
	for _, op := range outpoints {
		wanted[op] = struct{}{}
	}

	var all []model.Output
	all, err = scanUtxos(rows)
	if err != nil {
		return nil, err
	}
	res := make([]model.Output, 0, len(outpoints))
	for _, o := range all {
		if _, ok := wanted[o.Outpoint()]; ok {
			res = append(res, o)
		}
	}
	return res, nil
}

func scanUtxos(rows driver.Rows) ([]model.Output, error) {
	var outputs []model.Output
	for rows.Next() {
		var (
			o           model.Output
			hasSlp      bool
			slp         model.SlpUtxo
			operation   string
			tokenType   uint16
			parentValid string
		)
		if err := rows.Scan(
			&o.TxID,
			&o.Index,
			&o.Address,
			&o.ScriptHex,
			&o.Amount,
			&o.Confirmed,
			&o.Spent,
			&o.SpentBy,
			&o.OpReturn,
			&hasSlp,
			&slp.TokenID,
			&slp.Amount,
			&slp.HasBaton,
			&slp.Ticker,
			&operation,
			&slp.Name,
			&tokenType,
			&parentValid,
			&o.Timestamp,
			&o.BlockHeight,
		); err != nil {
			return nil, fmt.Errorf("scan utxo: %w", err)
		}

		if hasSlp {
			verdict, err := model.ParseVerdict(parentValid)
			if err != nil {
				return nil, fmt.Errorf("utxo %s: %w", o.Outpoint(), err)
			}
			slp.Operation = model.OperationKind(operation)
			slp.TokenType = model.TokenTypeFromCode(tokenType)
			slp.ParentValid = verdict
			o.Slp = &slp
		}
		outputs = append(outputs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utxos: %w", err)
	}
	return outputs, nil
}
