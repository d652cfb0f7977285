package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

const transactionColumns = `
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
	verdict,
	reason,
	inputs,
	outputs`

// TransactionsByIDs loads the latest version of each requested transaction.
func (r *Repository) TransactionsByIDs(ctx context.Context, txIDs []string) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("transactions_by_ids", err, start)
	}()

	if len(txIDs) == 0 {
		return nil, nil
	}

	const query = `
SELECT` + transactionColumns + `
FROM slp_transactions FINAL
WHERE txid IN ?`

	rows, err := r.conn.Query(ctx, query, txIDs)
	if err != nil {
		return nil, fmt.Errorf("query transactions by ids: %w", err)
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

func scanTransactions(rows driver.Rows) ([]model.Transaction, error) {
	var txs []model.Transaction
	for rows.Next() {
		var (
			tx                         model.Transaction
			operation, verdict, reason string
			inputs, outputs            string
		)
		if err := rows.Scan(
			&tx.TxID,
			&tx.Confirmed,
			&tx.Fee,
			&tx.Timestamp,
			&tx.FromBlock,
			&tx.BlockHash,
			&tx.BlockHeight,
			&tx.BlockTime,
			&tx.RawHex,
			&tx.Version,
			&tx.LockTime,
			&tx.Size,
			&operation,
			&verdict,
			&reason,
			&inputs,
			&outputs,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		decoded, err := decodeTransaction(tx, operation, verdict, reason, inputs, outputs)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		txs = append(txs, decoded)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func decodeTransaction(tx model.Transaction, operation, verdict, reason, inputs, outputs string) (model.Transaction, error) {
	var err error
	if tx.Operation, err = decodeOperation(operation); err != nil {
		return model.Transaction{}, err
	}
	if tx.Inputs, err = decodeInputs(inputs); err != nil {
		return model.Transaction{}, err
	}
	if tx.Outputs, err = decodeOutputs(tx.TxID, outputs); err != nil {
		return model.Transaction{}, err
	}
	if verdict != "" {
		v, err := model.ParseVerdict(verdict)
		if err != nil {
			return model.Transaction{}, err
		}
		tx.Valid = &model.SlpValid{Verdict: v, Reason: reason}
	}
	return tx, nil
}
