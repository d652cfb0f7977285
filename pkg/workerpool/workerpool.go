// Package workerpool provides a long-lived pool of goroutines shared by batch jobs.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("workerpool: closed")

// Pool runs submitted tasks on a fixed set of goroutines started once.
type Pool struct {
	size  int
	tasks chan func()
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// New starts a pool with size workers. Sizes below one are raised to one.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		size:  size,
		tasks: make(chan func()),
		quit:  make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.work()
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Close stops the workers after their current task and waits for them.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case task := <-p.tasks:
			task()
		}
	}
}

func (p *Pool) submit(ctx context.Context, task func()) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrClosed
	case p.tasks <- task:
		return nil
	}
}

// Process runs process for every item on the pool and waits for all of them.
// The first error cancels the context handed to the remaining items and is returned.
// Process must not be called from inside a task of the same pool.
func Process[T any](
	ctx context.Context,
	pool *Pool,
	items []T,
	process func(context.Context, T) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		item := item
		wg.Add(1)
		err := pool.submit(ctx, func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := process(ctx, item); err != nil {
				fail(err)
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
