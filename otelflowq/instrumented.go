// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otelflowq

// InstrumentedPush combines tracing, metrics, and logging for a push
// operation into a single wrapper, applied inside-out: logging innermost,
// then metrics, then tracing outermost so the span covers the full
// measured and logged call.
func InstrumentedPush[T any](operationName string, fn PushFunc[T]) PushFunc[T] {
	logged := LoggedPush(operationName, fn)
	measured := MetricsPush(operationName, logged)
	return TracedPush(operationName, measured)
}

// InstrumentedPop combines tracing, metrics, and logging for a pop
// operation into a single wrapper.
func InstrumentedPop[T any](operationName string, fn PopFunc[T]) PopFunc[T] {
	logged := LoggedPop(operationName, fn)
	measured := MetricsPop(operationName, logged)
	return TracedPop(operationName, measured)
}
