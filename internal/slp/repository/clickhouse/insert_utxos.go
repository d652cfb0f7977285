package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/shopspring/decimal"
)

// InsertUtxos upserts output rows keyed by txid and output index.
func (r *Repository) InsertUtxos(ctx context.Context, outputs []model.Output) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_utxos", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO slp_utxos (
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
	block_height,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare utxos batch: %w", err)
	}

	version := r.now()
	for _, o := range outputs {
		slp := model.SlpUtxo{Amount: decimal.Zero}
		if o.Slp != nil {
			slp = *o.Slp
		}
		if err = batch.Append(
			o.TxID,
			o.Index,
			o.Address,
			o.ScriptHex,
			o.Amount,
			o.Confirmed,
			o.Spent,
			o.SpentBy,
			o.OpReturn,
			o.Slp != nil,
			slp.TokenID,
			slp.Amount,
			slp.HasBaton,
			slp.Ticker,
			string(slp.Operation),
			slp.Name,
			uint16(slp.TokenType),
			string(slp.ParentValid),
			o.Timestamp,
			o.BlockHeight,
			version,
		); err != nil {
			return fmt.Errorf("append utxo: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert utxos: %w", err)
	}
	return nil
}
