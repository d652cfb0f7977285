// Package batcher buffers items and hands them to a callback in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher: stopped")

// Config controls when a batch is flushed.
type Config struct {
	// FlushSize flushes as soon as this many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered on every tick.
	FlushInterval time.Duration
	// FlushesPerSecond caps the callback rate.
	FlushesPerSecond int
}

// Batcher buffers items and flushes them either by size or interval.
// Each flush receives its own slice, callers may keep it.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	items  chan T
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize < 1 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushesPerSecond < 1 {
		cfg.FlushesPerSecond = 1
	}
	return &Batcher[T]{
		logger: logger,
		flush:  flush,
		items:  make(chan T, cfg.FlushSize*2),
		cfg:    cfg,
		rl:     ratelimit.New(cfg.FlushesPerSecond),
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is queued and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	var buf []T
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		batch := buf
		buf = nil

		b.rl.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			// the loop context is gone, give the final flush a fresh one
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain()
			flush(ctx)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
