//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// startNodeSignals needs the zmq build tag; without it only polling is
// available.
func startNodeSignals(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, <-chan []byte, error) {
	if addr == "" {
		return nil, nil, nil
	}
	logger.Error("zmq address set but binary built without the zmq tag", zap.String("addr", addr))
	return nil, nil, errors.New("zmq support not compiled in, rebuild with -tags zmq")
}
