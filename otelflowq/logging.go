// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otelflowq

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PushFunc is the shape of a queue push operation: enqueue item, suspending
// as needed, and report whether it was admitted.
type PushFunc[T any] func(ctx context.Context, item T) error

// PopFunc is the shape of a queue pop operation: remove and return the item
// at the head, suspending until one is available or ctx is done.
type PopFunc[T any] func(ctx context.Context) (T, error)

// LoggedPush adds structured logging to a push operation. It logs the
// start and completion of the call, including timing information and any
// error.
func LoggedPush[T any](operationName string, fn PushFunc[T]) PushFunc[T] {
	return func(ctx context.Context, item T) error {
		logger := zap.L()

		logger.Debug("Starting push",
			zap.String("operation", operationName),
			zap.String("component", "otelflowq"))

		startTime := time.Now()
		err := fn(ctx, item)
		duration := time.Since(startTime)

		if err != nil {
			logger.Error("Push failed",
				zap.String("operation", operationName),
				zap.String("component", "otelflowq"),
				zap.Duration("duration", duration),
				zap.Error(err))
		} else {
			logger.Debug("Push completed",
				zap.String("operation", operationName),
				zap.String("component", "otelflowq"),
				zap.Duration("duration", duration))
		}

		return err
	}
}

// LoggedPop adds structured logging to a pop operation.
func LoggedPop[T any](operationName string, fn PopFunc[T]) PopFunc[T] {
	return func(ctx context.Context) (T, error) {
		logger := zap.L()

		logger.Debug("Starting pop",
			zap.String("operation", operationName),
			zap.String("component", "otelflowq"))

		startTime := time.Now()
		item, err := fn(ctx)
		duration := time.Since(startTime)

		if err != nil {
			logger.Error("Pop failed",
				zap.String("operation", operationName),
				zap.String("component", "otelflowq"),
				zap.Duration("duration", duration),
				zap.Error(err))
		} else {
			logger.Debug("Pop completed",
				zap.String("operation", operationName),
				zap.String("component", "otelflowq"),
				zap.Duration("duration", duration))
		}

		return item, err
	}
}
