// Package ingester moves blocks and mempool transactions into the stores:
// resolution, placeholder persistence, validation and verdict propagation.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/slp/chain"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"github.com/goodnatureofminers/slp-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// Pipeline ingests ordered batches of transactions. Batches from concurrent
// callers run one at a time; the pool parallelizes resolution within a batch.
type Pipeline struct {
	mu        sync.Mutex
	pool      *workerpool.Pool
	annotator Annotator
	utxos     UtxoStore
	txs       TransactionStore
	validator Validator
	metrics   PipelineMetrics
	retry     retrier
	logger    *zap.Logger
}

// NewPipeline wires a Pipeline. The pool is shared and owned by the caller.
func NewPipeline(
	pool *workerpool.Pool,
	annotator Annotator,
	utxos UtxoStore,
	txs TransactionStore,
	validator Validator,
	metrics PipelineMetrics,
	retryDelay time.Duration,
	logger *zap.Logger,
) (*Pipeline, error) {
	if pool == nil {
		return nil, errors.New("worker pool is required")
	}
	if annotator == nil || validator == nil {
		return nil, errors.New("annotator and validator are required")
	}
	if utxos == nil || txs == nil {
		return nil, errors.New("stores are required")
	}
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	logger = logger.Named("pipeline")

	return &Pipeline{
		pool:      pool,
		annotator: annotator,
		utxos:     utxos,
		txs:       txs,
		validator: validator,
		metrics:   metrics,
		retry:     retrier{delay: retryDelay, logger: logger},
		logger:    logger,
	}, nil
}

// Ingest indexes txs in the given order and returns their final records.
// Replaying a batch keeps stored timestamps and decided verdicts.
func (p *Pipeline) Ingest(ctx context.Context, txs []model.Transaction) (_ []model.IndexerTransaction, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveBatch(err, len(txs), started)
	}()

	if len(txs) == 0 {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	annotated, err := p.annotate(ctx, txs)
	if err != nil {
		return nil, err
	}
	resolved, err := p.resolve(ctx, annotated)
	if err != nil {
		return nil, err
	}
	placeholders, err := p.persistPlaceholders(ctx, resolved)
	if err != nil {
		return nil, err
	}
	if err := p.validate(ctx, placeholders); err != nil {
		return nil, err
	}
	indexed, err := p.propagate(ctx, placeholders)
	if err != nil {
		return nil, err
	}

	p.logger.Info("batch ingested", zap.Int("transactions", len(indexed)), zap.Duration("took", time.Since(started)))
	return indexed, nil
}

func (p *Pipeline) annotate(ctx context.Context, txs []model.Transaction) ([]model.Transaction, error) {
	res := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		annotated, err := retryData(ctx, p.retry, "annotate "+tx.TxID, func() (model.Transaction, error) {
			return p.annotator.Annotate(ctx, tx)
		})
		if err != nil {
			return nil, err
		}
		res[i] = annotated
	}
	return res, nil
}

func (p *Pipeline) resolve(ctx context.Context, txs []model.Transaction) ([]model.Transaction, error) {
	inFlight := make(map[model.Outpoint]model.Output)
	var outputs []model.Output
	for _, tx := range txs {
		for _, o := range tx.Outputs {
			inFlight[o.Outpoint()] = o
			outputs = append(outputs, o)
		}
	}

	err := workerpool.Process(ctx, p.pool, chunk(outputs, outputChunkSize), func(ctx context.Context, part []model.Output) error {
		return p.retry.do(ctx, "save outputs", func() error {
			return p.utxos.Save(ctx, part)
		})
	})
	if err != nil {
		return nil, err
	}

	resolved := make([]model.Transaction, len(txs))
	err = workerpool.Process(ctx, p.pool, positions(len(txs)), func(ctx context.Context, i int) error {
		tx, err := p.resolveInputs(ctx, txs[i], inFlight)
		if err != nil {
			return err
		}
		resolved[i] = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (p *Pipeline) resolveInputs(ctx context.Context, tx model.Transaction, inFlight map[model.Outpoint]model.Output) (model.Transaction, error) {
	var wanted []model.Outpoint
	for _, in := range tx.Inputs {
		if !in.Coinbase {
			wanted = append(wanted, in.Outpoint())
		}
	}

	stored := make(map[model.Outpoint]model.Output, len(wanted))
	if len(wanted) > 0 {
		found, err := retryData(ctx, p.retry, "fetch spent outputs of "+tx.TxID, func() ([]model.Output, error) {
			return p.utxos.FetchByOutpoints(ctx, wanted)
		})
		if err != nil {
			return model.Transaction{}, err
		}
		for _, o := range found {
			stored[o.Outpoint()] = o
		}
	}

	inputs := make([]model.Input, len(tx.Inputs))
	var spent []model.Outpoint
	for i, in := range tx.Inputs {
		if in.Coinbase {
			var height uint64
			if tx.BlockHeight != nil {
				height = *tx.BlockHeight
			}
			inputs[i] = in.Resolve(chain.BlockReward(height), nil)
			continue
		}

		prev, ok := stored[in.Outpoint()]
		if !ok {
			prev, ok = inFlight[in.Outpoint()]
		}
		if !ok {
			inputs[i] = in
			continue
		}
		resolvedInput := in.Resolve(prev.Amount, prev.Slp)
		resolvedInput.Address = prev.Address
		inputs[i] = resolvedInput
		spent = append(spent, in.Outpoint())
	}

	if len(spent) > 0 {
		err := p.retry.do(ctx, "spend outputs of "+tx.TxID, func() error {
			return p.utxos.Spend(ctx, spent, tx.TxID)
		})
		if err != nil {
			return model.Transaction{}, err
		}
	}
	return tx.WithInputs(inputs), nil
}

func (p *Pipeline) persistPlaceholders(ctx context.Context, txs []model.Transaction) ([]model.IndexerTransaction, error) {
	ids := txIDs(txs)
	existing, err := retryData(ctx, p.retry, "fetch stored transactions", func() ([]model.IndexerTransaction, error) {
		return p.txs.FetchTransactions(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	stored := make(map[string]model.Transaction, len(existing))
	for _, e := range existing {
		stored[e.TxID()] = e.Transaction
	}

	res := make([]model.IndexerTransaction, len(txs))
	for i, tx := range txs {
		prev, seen := stored[tx.TxID]
		if seen && !prev.Timestamp.IsZero() {
			tx.Timestamp = prev.Timestamp
		}
		if !tx.IsToken() {
			res[i] = model.NewIndexerTransaction(tx.WithoutVerdict())
			continue
		}
		verdict := model.UnknownVerdict()
		if seen && prev.Valid != nil && !prev.Valid.IsUnknown() {
			verdict = *prev.Valid
		}
		res[i] = model.NewIndexerTransaction(tx.WithVerdict(verdict))
	}

	if err := p.retry.do(ctx, "save placeholders", func() error {
		return p.txs.SaveTransactions(ctx, res)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) validate(ctx context.Context, txs []model.IndexerTransaction) error {
	for _, itx := range txs {
		if !itx.Transaction.IsToken() {
			continue
		}
		id := itx.TxID()

		current, err := retryData(ctx, p.retry, "reload "+id, func() (*model.IndexerTransaction, error) {
			return p.txs.FetchTransaction(ctx, id)
		})
		if err != nil {
			return err
		}
		if current == nil {
			current = &itx
		}

		verdict, err := retryData(ctx, p.retry, "validate "+id, func() (model.SlpValid, error) {
			return p.validator.Validate(ctx, current.Transaction)
		})
		if err != nil {
			return err
		}
		p.logger.Debug("transaction validated", zap.String("txid", id), zap.Stringer("verdict", verdict))

		updated := current.WithVerdict(verdict)
		if err := p.retry.do(ctx, "save verdict of "+id, func() error {
			return p.txs.SaveTransactions(ctx, []model.IndexerTransaction{updated})
		}); err != nil {
			return err
		}
	}
	return nil
}

// propagate rereads the batch, since a cascade may have demoted any member,
// and copies every verdict onto the stored outputs.
func (p *Pipeline) propagate(ctx context.Context, placeholders []model.IndexerTransaction) ([]model.IndexerTransaction, error) {
	ids := make([]string, len(placeholders))
	for i, itx := range placeholders {
		ids[i] = itx.TxID()
	}
	fresh, err := retryData(ctx, p.retry, "reload batch", func() ([]model.IndexerTransaction, error) {
		return p.txs.FetchTransactions(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.IndexerTransaction, len(fresh))
	for _, itx := range fresh {
		byID[itx.TxID()] = itx
	}

	res := make([]model.IndexerTransaction, len(placeholders))
	for i, itx := range placeholders {
		if f, ok := byID[itx.TxID()]; ok {
			itx = f
		}
		res[i] = itx
	}

	err = workerpool.Process(ctx, p.pool, res, func(ctx context.Context, itx model.IndexerTransaction) error {
		return p.retry.do(ctx, "refresh validity of "+itx.TxID(), func() error {
			return p.utxos.RefreshValidity(ctx, itx.Transaction)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("propagate verdicts: %w", err)
	}
	return res, nil
}

func txIDs(txs []model.Transaction) []string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.TxID
	}
	return ids
}

func positions(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}

func chunk[T any](items []T, size int) [][]T {
	var res [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		res = append(res, items[start:end])
	}
	return res
}
