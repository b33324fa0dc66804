// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package waitq implements the fair FIFO waiter registry used to build the
// permit gates of spec §4.2: registering a waiter never blocks, and waking
// one always wakes the one that registered earliest among those still
// listening.
package waitq

import "github.com/arl/flowq/internal/lfqueue"

// Queue holds registered waiters in arrival order. The zero value is not
// usable; construct one with [New].
type Queue struct {
	inner *lfqueue.Queue[Waiter]
}

// New returns an empty waiter queue.
func New() *Queue {
	return &Queue{inner: lfqueue.New[Waiter]()}
}

// Add registers a new waiter at the back of the queue. It never blocks.
func (q *Queue) Add() Waiter {
	w := Waiter{
		q:          q,
		notifyChan: make(chan struct{}, 1),
	}
	q.inner.PushBack(w)
	return w
}

// Notify wakes the waiter at the front of the queue, if any, skipping over
// any that have already closed without being notified.
func (q *Queue) Notify() {
	for {
		w, ok := q.inner.PopFront()
		if !ok {
			return
		}

		select {
		case w.notifyChan <- struct{}{}:
			// The notification was sent.
			return
		default:
			// The channel was full, meaning that the waiter was closed. Loop
			// and try the next one.
		}
	}
}
