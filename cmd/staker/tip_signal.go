//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startTipSignal without ZMQ support leaves the loop on slot timing alone.
func startTipSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq support not built in, ignoring zmq address", zap.String("zmq_addr", addr))
	}
	return nil, nil
}
