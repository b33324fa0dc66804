// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package avail implements the signed availability counter of spec §4.1: a
// counter whose decrement is reserved transactionally so that a consumer
// that parks before acquiring an item can still be observed (as a negative
// value) without corrupting the count if it is canceled before it ever gets
// one.
//
// Go has no destructors, so the "commit or roll back on scope exit" contract
// described by spec §4.1/§9 is expressed the way database/sql.Tx expresses
// it: the caller defers Txn.Rollback immediately after Sub and calls
// Txn.Commit on every successful path. Rollback is a no-op once Commit has
// run.
package avail

import "sync/atomic"

// Counter is safe for concurrent use. The zero value starts at 0.
type Counter struct {
	v atomic.Int64
}

// Add atomically increments the counter and returns the value after the
// increment. Used by producers after inserting an item.
func (c *Counter) Add() int64 {
	return c.v.Add(1)
}

// Get atomically reads the current value.
func (c *Counter) Get() int64 {
	return c.v.Load()
}

// Sub atomically decrements the counter and returns a reservation handle
// alongside the value after the decrement. The caller must eventually call
// Txn.Commit (on success) or Txn.Rollback (on cancellation); the usual
// pattern is:
//
//	txn, avail := counter.Sub()
//	defer txn.Rollback()
//	...
//	txn.Commit()
func (c *Counter) Sub() (Txn, int64) {
	return Txn{c: c}, c.v.Add(-1)
}

// Txn is the reservation handle returned by [Counter.Sub]. Its zero value
// would panic if rolled back, so it must always be obtained from Sub.
type Txn struct {
	c    *Counter
	done bool
}

// Commit acknowledges that the decrement is permanent. Must be called on
// every successful pop path; after Commit, Rollback is a no-op.
func (t *Txn) Commit() {
	t.done = true
}

// Rollback atomically increments the counter back, restoring the value it
// had before the paired Sub, unless Commit has already been called. This is
// the cancellation path: the consumer was interrupted before acquiring an
// item.
func (t *Txn) Rollback() {
	if t.done {
		return
	}
	t.done = true
	t.c.v.Add(1)
}
