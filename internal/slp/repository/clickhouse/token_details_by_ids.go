package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// TokenDetailsByIDs loads token metadata for tokenIDs.
func (r *Repository) TokenDetailsByIDs(ctx context.Context, tokenIDs []string) ([]model.TokenDetails, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("token_details_by_ids", err, start)
	}()

	if len(tokenIDs) == 0 {
		return nil, nil
	}

	const query = `
SELECT
	token_id,
	ticker,
	name,
	document_uri,
	decimals,
	token_type,
	genesis_height,
	last_mint_height,
	last_send_height
FROM slp_token_details FINAL
WHERE token_id IN ?`

	rows, err := r.conn.Query(ctx, query, tokenIDs)
	if err != nil {
		return nil, fmt.Errorf("query token details: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var res []model.TokenDetails
	for rows.Next() {
		var (
			d         model.TokenDetails
			tokenType uint16
		)
		if err = rows.Scan(
			&d.TokenID,
			&d.Ticker,
			&d.Name,
			&d.DocumentURI,
			&d.Decimals,
			&tokenType,
			&d.GenesisHeight,
			&d.LastMintHeight,
			&d.LastSendHeight,
		); err != nil {
			return nil, fmt.Errorf("scan token details: %w", err)
		}
		d.TokenType = model.TokenTypeFromCode(tokenType)
		res = append(res, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate token details: %w", err)
	}
	return res, nil
}
