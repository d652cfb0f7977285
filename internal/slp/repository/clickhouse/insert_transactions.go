package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// InsertTransactions upserts transaction records. The newest version of a
// txid wins on read.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO slp_transactions (
	txid,
	confirmed,
	fee,
	timestamp,
	from_block,
	block_hash,
	block_height,
	block_time,
	raw_hex,
	version,
	locktime,
	size,
	operation,
	token_ids,
	verdict,
	reason,
	inputs,
	outputs,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	version := r.now()
	for _, tx := range txs {
		var inputs, outputs, operation string
		if inputs, err = encodeInputs(tx.Inputs); err != nil {
			return fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		if outputs, err = encodeOutputs(tx.Outputs); err != nil {
			return fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		if operation, err = encodeOperation(tx.Operation); err != nil {
			return fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		verdict, reason := verdictColumns(tx)

		if err = batch.Append(
			tx.TxID,
			tx.Confirmed,
			tx.Fee,
			tx.Timestamp,
			tx.FromBlock,
			tx.BlockHash,
			tx.BlockHeight,
			tx.BlockTime,
			tx.RawHex,
			tx.Version,
			tx.LockTime,
			tx.Size,
			operation,
			tokenIDsOf(tx),
			verdict,
			reason,
			inputs,
			outputs,
			version,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
