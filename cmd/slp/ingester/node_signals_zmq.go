//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const (
	topicHashBlock = "hashblock"
	topicRawTx     = "rawtx"
	rawTxBuffer    = 1024
)

// startNodeSignals subscribes to the node's block and transaction
// announcements. Without an address both channels are nil and the
// ingesters fall back to polling.
func startNodeSignals(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, <-chan []byte, error) {
	if addr == "" {
		return nil, nil, nil
	}

	sub, err := newSubscriber(addr, topicHashBlock, topicRawTx)
	if err != nil {
		return nil, nil, fmt.Errorf("connect zmq: %w", err)
	}
	logger = logger.Named("zmq").With(zap.String("addr", addr))

	blocks := make(chan struct{}, 1)
	rawTxs := make(chan []byte, rawTxBuffer)

	go func() {
		defer sub.Close()
		defer close(rawTxs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msgParts, err := sub.RecvMessageBytes(0)
			if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
				continue
			}
			if err != nil {
				logger.Warn("zmq recv failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(msgParts) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msgParts)))
				continue
			}

			switch string(msgParts[0]) {
			case topicHashBlock:
				select {
				case blocks <- struct{}{}:
				default:
				}
			case topicRawTx:
				select {
				case rawTxs <- msgParts[1]:
				case <-ctx.Done():
					return
				default:
					// the mempool poll picks up what is dropped here
					logger.Debug("raw transaction buffer full, dropping")
				}
			}
		}
	}()

	logger.Info("subscribed to node announcements")
	return blocks, rawTxs, nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}
	// lets the receive loop observe cancellation
	if err := sub.SetRcvtimeo(time.Second); err != nil {
		sub.Close()
		return nil, err
	}

	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}

	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
