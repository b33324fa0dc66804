// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otelflowq

import (
	"context"

	"go.opentelemetry.io/otel"
)

// TracedPush wraps a push operation in a span named operationName.
func TracedPush[T any](operationName string, fn PushFunc[T]) PushFunc[T] {
	return func(ctx context.Context, item T) error {
		tracer := otel.Tracer("otelflowq")
		ctx, span := tracer.Start(ctx, operationName)
		defer span.End()

		err := fn(ctx, item)
		if err != nil {
			span.RecordError(err)
		}
		return err
	}
}

// TracedPop wraps a pop operation in a span named operationName.
func TracedPop[T any](operationName string, fn PopFunc[T]) PopFunc[T] {
	return func(ctx context.Context) (T, error) {
		tracer := otel.Tracer("otelflowq")
		ctx, span := tracer.Start(ctx, operationName)
		defer span.End()

		item, err := fn(ctx)
		if err != nil {
			span.RecordError(err)
		}
		return item, err
	}
}
