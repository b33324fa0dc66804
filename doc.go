// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package flowq provides asynchronous, multi-producer/multi-consumer
// in-memory queues with first-class backpressure, introspection, and (for
// one variant) live resizing.
//
// Three variants share a common shape:
//
//   - [Unlimited]: unbounded, producers never block.
//   - [Limited]: fixed capacity at construction, producers block when full.
//   - [Resizable]: capacity may be grown or shrunk at runtime via
//     [Resizable.Resize].
//
// A queue is a single object shared by reference among any number of
// concurrent producer and consumer goroutines; there are no separate
// sender/receiver halves. All suspending operations take a
// [context.Context] and return its error verbatim on cancellation, leaving
// the queue's internal bookkeeping exactly as it was before the call. The
// one exception is [Resizable.Resize]: a shrink cancelled part way keeps the
// capacity steps it had already completed.
//
// # Availability
//
// [Unlimited.Available], [Limited.Available], and [Resizable.Available]
// report a signed count: items currently enqueued minus goroutines
// currently parked inside Pop waiting for one. A negative value is the
// library's distinguishing introspection feature — it tells a caller how
// many consumers are starved, not just that the queue is empty.
package flowq
