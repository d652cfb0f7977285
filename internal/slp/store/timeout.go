package store

import (
	"context"
	"errors"
)

// timedOut reports whether err came from the per-call deadline rather than
// from the caller's context.
func timedOut(parent context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil
}
