package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
)

// InsertTokenDetails upserts token metadata.
func (r *Repository) InsertTokenDetails(ctx context.Context, details []model.TokenDetails) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_token_details", err, start)
	}()

	if len(details) == 0 {
		return nil
	}

	const query = `
INSERT INTO slp_token_details (
	token_id,
	ticker,
	name,
	document_uri,
	decimals,
	token_type,
	genesis_height,
	last_mint_height,
	last_send_height,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare token details batch: %w", err)
	}

	version := r.now()
	for _, d := range details {
		if err = batch.Append(
			d.TokenID,
			d.Ticker,
			d.Name,
			d.DocumentURI,
			d.Decimals,
			uint16(d.TokenType),
			d.GenesisHeight,
			d.LastMintHeight,
			d.LastSendHeight,
			version,
		); err != nil {
			return fmt.Errorf("append token details: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert token details: %w", err)
	}
	return nil
}
