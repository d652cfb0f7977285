package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slp-indexer/internal/clock"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	headerstore "github.com/goodnatureofminers/slp-indexer/internal/slp/repository/badger"
	"go.uber.org/zap"
)

var errReorgTooDeep = errors.New("reorg deeper than allowed")

// BlockIngester follows the node's best chain block by block.
type BlockIngester struct {
	source        BlockSource
	headers       HeaderStore
	applier       *blockApplier
	reorg         Reorganizer
	metrics       BlockIngesterMetrics
	logger        *zap.Logger
	wait          func(context.Context, time.Duration, <-chan struct{}) error
	pollInterval  time.Duration
	errorSleep    time.Duration
	maxReorgDepth int
	startHeight   uint64
	blockSignal   <-chan struct{}
}

// NewBlockIngester builds a BlockIngester. An empty header store starts at
// startHeight. blockSignal may be nil, in which case the node is polled.
func NewBlockIngester(
	source BlockSource,
	pipeline Ingester,
	reorg Reorganizer,
	utxos UtxoStore,
	headers HeaderStore,
	metrics BlockIngesterMetrics,
	coin model.Coin,
	network model.Network,
	startHeight uint64,
	interval time.Duration,
	blockSignal <-chan struct{},
	logger *zap.Logger,
) (*BlockIngester, error) {
	if source == nil || pipeline == nil || reorg == nil || utxos == nil || headers == nil {
		return nil, errors.New("block ingester dependencies are required")
	}
	if metrics == nil {
		return nil, errors.New("block ingester metrics is required")
	}
	if interval <= 0 {
		interval = pollInterval
	}
	logger = logger.Named("blockIngester").With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)

	return &BlockIngester{
		source:        source,
		headers:       headers,
		applier:       &blockApplier{pipeline: pipeline, utxos: utxos, headers: headers, logger: logger},
		reorg:         reorg,
		metrics:       metrics,
		logger:        logger,
		wait:          clock.Wait,
		pollInterval:  interval,
		errorSleep:    errorSleepDuration,
		maxReorgDepth: maxReorgDepth,
		startHeight:   startHeight,
		blockSignal:   blockSignal,
	}, nil
}

// Run follows the chain until the context is canceled.
func (s *BlockIngester) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.errorSleep))
			if sleepErr := s.wait(ctx, s.errorSleep, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *BlockIngester) run(ctx context.Context) error {
	nodeTip, err := s.source.TipHeight(ctx)
	if err != nil {
		return fmt.Errorf("read node tip: %w", err)
	}

	tip, err := s.headers.Tip(ctx)
	switch {
	case errors.Is(err, headerstore.ErrNotFound):
		tip = nil
	case err != nil:
		return fmt.Errorf("read indexed tip: %w", err)
	}

	next := s.startHeight
	if tip != nil {
		forked, err := s.forked(ctx, *tip, nodeTip)
		if err != nil {
			return err
		}
		if forked {
			return s.handleFork(ctx, *tip, nodeTip)
		}
		next = tip.Height + 1
	}

	if next > nodeTip {
		s.logger.Debug("at node tip, waiting", zap.Uint64("height", nodeTip), zap.Duration("interval", s.pollInterval))
		return s.wait(ctx, s.pollInterval, s.blockSignal)
	}

	for height := next; height <= nodeTip; height++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		extended, err := s.ingestHeight(ctx, height, tip)
		if err != nil {
			return err
		}
		if !extended {
			// the node switched chains mid-walk; the next pass sees the fork
			return nil
		}
		tip, err = s.headers.Tip(ctx)
		if err != nil {
			return fmt.Errorf("read indexed tip: %w", err)
		}
	}
	return nil
}

func (s *BlockIngester) forked(ctx context.Context, tip model.BlockHeader, nodeTip uint64) (bool, error) {
	if tip.Height > nodeTip {
		return true, nil
	}
	hash, err := s.source.HashAt(ctx, tip.Height)
	if err != nil {
		return false, fmt.Errorf("read node hash at %d: %w", tip.Height, err)
	}
	return hash != tip.Hash, nil
}

func (s *BlockIngester) ingestHeight(ctx context.Context, height uint64, tip *model.BlockHeader) (_ bool, err error) {
	started := time.Now()

	block, err := s.source.BlockAt(ctx, height)
	if err != nil {
		s.metrics.ObserveBlock(err, height, started)
		return false, fmt.Errorf("fetch block %d: %w", height, err)
	}
	if tip != nil && block.PrevHash != tip.Hash {
		s.logger.Info("block does not extend indexed tip",
			zap.Uint64("height", height),
			zap.String("prev_hash", block.PrevHash),
			zap.String("tip_hash", tip.Hash),
		)
		return false, nil
	}

	err = s.applier.apply(ctx, block)
	s.metrics.ObserveBlock(err, height, started)
	if err != nil {
		return false, err
	}
	return true, nil
}

// handleFork walks back from the indexed tip until the stored and node
// hashes agree, then swaps the branches.
func (s *BlockIngester) handleFork(ctx context.Context, tip model.BlockHeader, nodeTip uint64) (err error) {
	var orphaned []model.Block
	defer func() {
		s.metrics.ObserveReorg(err, len(orphaned))
	}()

	forkHeight := tip.Height
	for {
		if len(orphaned) > s.maxReorgDepth {
			return fmt.Errorf("%w: more than %d blocks below %d", errReorgTooDeep, s.maxReorgDepth, tip.Height)
		}

		header, err := s.headers.ByHeight(ctx, forkHeight)
		if errors.Is(err, headerstore.ErrNotFound) {
			break
		}
		if err != nil {
			return fmt.Errorf("read indexed header %d: %w", forkHeight, err)
		}

		if forkHeight <= nodeTip {
			hash, err := s.source.HashAt(ctx, forkHeight)
			if err != nil {
				return fmt.Errorf("read node hash at %d: %w", forkHeight, err)
			}
			if hash == header.Hash {
				break
			}
		}
		orphaned = append(orphaned, model.Block{BlockHeader: *header})
		if forkHeight == 0 {
			break
		}
		forkHeight--
	}

	var connected []model.Block
	last := min(nodeTip, forkHeight+uint64(len(orphaned)))
	for height := forkHeight + 1; height <= last; height++ {
		block, err := s.source.BlockAt(ctx, height)
		if err != nil {
			return fmt.Errorf("fetch block %d: %w", height, err)
		}
		connected = append(connected, block)
	}

	s.logger.Warn("chain reorganization detected",
		zap.Uint64("fork_height", forkHeight),
		zap.Int("orphaned", len(orphaned)),
		zap.Int("connected", len(connected)),
	)
	return s.reorg.Reorganize(ctx, orphaned, connected)
}
