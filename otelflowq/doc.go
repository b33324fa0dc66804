// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package otelflowq adds structured logging, metrics, and tracing to
// github.com/arl/flowq queue operations. It wraps a Push or Pop call the
// same way the parent module's own companion package wraps a task
// function: the caller supplies the queue operation as a plain closure,
// and gets back a closure with identical signature that does the same
// work plus instrumentation.
//
// Queue operations don't share one signature across the three variants
// ([flowq.Unlimited.Push] is infallible and non-suspending;
// [flowq.Limited.Push] and [flowq.Resizable.Push] suspend and can fail),
// so this package instruments at the level of two function shapes,
// [PushFunc] and [PopFunc], and callers adapt whichever queue method they
// have to one of them.
package otelflowq
