package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/bitcoin"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/goodnatureofminers/slp-indexer/pkg/batcher"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// MempoolListener ingests unconfirmed transactions announced over ZMQ or
// found by polling the node mempool.
type MempoolListener struct {
	source       MempoolSource
	converter    Converter
	pipeline     Ingester
	utxos        UtxoStore
	txs          TransactionStore
	metrics      MempoolMetrics
	seen         *cache.Cache
	batcher      *batcher.Batcher[model.Transaction]
	rawTxs       <-chan []byte
	pollInterval time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

// NewMempoolListener builds a MempoolListener. rawTxs carries serialized
// transactions and may be nil; a zero interval disables polling.
func NewMempoolListener(
	source MempoolSource,
	converter Converter,
	pipeline Ingester,
	utxos UtxoStore,
	txs TransactionStore,
	metrics MempoolMetrics,
	rawTxs <-chan []byte,
	interval time.Duration,
	logger *zap.Logger,
) (*MempoolListener, error) {
	if source == nil || converter == nil || pipeline == nil || utxos == nil || txs == nil {
		return nil, errors.New("mempool listener dependencies are required")
	}
	if metrics == nil {
		return nil, errors.New("mempool listener metrics is required")
	}
	logger = logger.Named("mempoolListener")

	l := &MempoolListener{
		source:       source,
		converter:    converter,
		pipeline:     pipeline,
		utxos:        utxos,
		txs:          txs,
		metrics:      metrics,
		seen:         cache.New(mempoolDedupTTL, mempoolDedupCleanup),
		rawTxs:       rawTxs,
		pollInterval: interval,
		now:          time.Now,
		logger:       logger,
	}
	l.batcher = batcher.New[model.Transaction](logger.Named("txBatcher"), l.flush, batcher.Config{
		FlushSize:        mempoolFlushSize,
		FlushInterval:    mempoolFlushInterval,
		FlushesPerSecond: mempoolFlushesPerSecond,
	})
	return l, nil
}

// Run consumes announcements until the context is canceled.
func (l *MempoolListener) Run(ctx context.Context) error {
	l.batcher.Start(ctx)
	defer l.batcher.Stop()

	var tick <-chan time.Time
	if l.pollInterval > 0 {
		ticker := time.NewTicker(l.pollInterval)
		defer ticker.Stop()
		tick = ticker.C
		l.poll(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-l.rawTxs:
			if !ok {
				l.rawTxs = nil
				continue
			}
			l.handleRaw(ctx, raw)
		case <-tick:
			l.poll(ctx)
		}
	}
}

func (l *MempoolListener) handleRaw(ctx context.Context, raw []byte) {
	tx, err := l.converter.RawTransaction(raw, bitcoin.TxContext{Timestamp: l.now()})
	if err != nil {
		l.metrics.ObserveTransaction(outcomeRejected)
		l.logger.Warn("skip undecodable transaction", zap.Int("bytes", len(raw)), zap.Error(err))
		return
	}
	l.accept(ctx, tx)
}

func (l *MempoolListener) poll(ctx context.Context) {
	ids, err := l.source.MempoolTxIDs(ctx)
	if err != nil {
		l.logger.Warn("mempool poll failed", zap.Error(err))
		return
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		if _, found := l.seen.Get(id); found {
			continue
		}
		tx, err := l.source.MempoolTransaction(ctx, id, l.now())
		if err != nil {
			l.metrics.ObserveTransaction(outcomeRejected)
			l.logger.Debug("fetch mempool transaction failed", zap.String("txid", id), zap.Error(err))
			continue
		}
		l.accept(ctx, tx)
	}
}

func (l *MempoolListener) accept(ctx context.Context, tx model.Transaction) {
	if err := l.seen.Add(tx.TxID, struct{}{}, cache.DefaultExpiration); err != nil {
		l.metrics.ObserveTransaction(outcomeDuplicate)
		return
	}
	if err := l.batcher.Add(ctx, tx); err != nil {
		l.seen.Delete(tx.TxID)
		l.logger.Debug("transaction not queued", zap.String("txid", tx.TxID), zap.Error(err))
		return
	}
	l.metrics.ObserveTransaction(outcomeAccepted)
}

// flush ingests a batch. A failed batch is forgotten so the next
// announcement or poll picks its transactions up again.
func (l *MempoolListener) flush(ctx context.Context, txs []model.Transaction) error {
	if err := l.ingest(ctx, txs); err != nil {
		for _, tx := range txs {
			l.seen.Delete(tx.TxID)
		}
		return err
	}
	return nil
}

// ingest drops transactions that are already stored, which covers block
// transactions echoed on the rawtx topic, and ingests the relevant rest.
func (l *MempoolListener) ingest(ctx context.Context, txs []model.Transaction) error {
	ids := txIDs(txs)
	stored, err := l.txs.FetchTransactions(ctx, ids)
	if err != nil {
		return fmt.Errorf("check stored transactions: %w", err)
	}
	known := make(map[string]struct{}, len(stored))
	for _, s := range stored {
		known[s.TxID()] = struct{}{}
	}

	fresh := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := known[tx.TxID]; ok {
			l.metrics.ObserveTransaction(outcomeKnown)
			continue
		}
		fresh = append(fresh, tx)
	}

	selected, err := SelectIndexable(ctx, l.utxos, fresh)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return nil
	}
	if _, err := l.pipeline.Ingest(ctx, selected); err != nil {
		return fmt.Errorf("ingest mempool batch: %w", err)
	}
	return nil
}
