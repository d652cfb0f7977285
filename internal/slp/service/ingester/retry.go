package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// retrier runs store calls with one retry after a constant delay.
type retrier struct {
	delay  time.Duration
	logger *zap.Logger
}

func (r retrier) policy(ctx context.Context) backoff.BackOffContext {
	return backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(r.delay), 1), ctx)
}

func (r retrier) notify(operation string) backoff.Notify {
	return func(err error, next time.Duration) {
		r.logger.Warn("store call failed, retrying",
			zap.String("operation", operation),
			zap.Duration("backoff", next),
			zap.Error(err),
		)
	}
}

func (r retrier) do(ctx context.Context, operation string, fn func() error) error {
	if err := backoff.RetryNotify(fn, r.policy(ctx), r.notify(operation)); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

func retryData[T any](ctx context.Context, r retrier, operation string, fn func() (T, error)) (T, error) {
	res, err := backoff.RetryNotifyWithData(fn, r.policy(ctx), r.notify(operation))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", operation, err)
	}
	return res, nil
}
