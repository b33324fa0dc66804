// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package gate implements the fair async permit gate of spec §4.2: a
// semaphore whose waiters are released in arrival order, supporting both
// awaiting acquisition and non-blocking try-acquire.
//
// The acquire/re-check/block sequence below is the same one the teacher's
// Pool.launch uses to admit a task under a concurrency limit: tentatively
// claim a permit, and only register as a waiter (then re-check, in case a
// permit was released between the two checks) if none was available.
package gate

import (
	"context"
	"sync/atomic"

	"github.com/arl/flowq/internal/waitq"
)

// Gate is a fair counting semaphore. The zero value is not usable;
// construct one with [New].
type Gate struct {
	permits atomic.Int64
	waiters *waitq.Queue
}

// New returns a gate initialized with the given number of permits.
func New(initial int64) *Gate {
	g := &Gate{waiters: waitq.New()}
	g.permits.Store(initial)
	return g
}

// Permit is a single unit of admission acquired from a [Gate]. The zero
// value is not meaningful; obtain one from Acquire, TryAcquire, or
// AcquireMany.
type Permit struct {
	n int64
}

// Forget consumes the permit without returning it to the gate. Use this
// once the slot it reserved has been handed off to something else that now
// owns its accounting (spec §4.2/§9: the backing FIFO now holds the
// corresponding item).
func (Permit) Forget() {}

// N reports how many underlying permits this value represents (1 for
// Acquire/TryAcquire, n for AcquireMany(n)).
func (p Permit) N() int64 {
	return p.n
}

// TryAcquire attempts to acquire a single permit without blocking. It
// returns the zero Permit and false if none was immediately available.
func (g *Gate) TryAcquire() (Permit, bool) {
	return g.tryAcquireN(1)
}

func (g *Gate) tryAcquireN(n int64) (Permit, bool) {
	for {
		cur := g.permits.Load()
		if cur < n {
			return Permit{}, false
		}
		if g.permits.CompareAndSwap(cur, cur-n) {
			return Permit{n: n}, true
		}
	}
}

// Acquire blocks until a single permit is available or ctx is done,
// whichever happens first. Waiters are served in FIFO arrival order.
func (g *Gate) Acquire(ctx context.Context) (Permit, error) {
	return g.AcquireMany(ctx, 1)
}

// AcquireMany blocks until n permits are available atomically (all n are
// reserved together, not accumulated one at a time) or ctx is done.
func (g *Gate) AcquireMany(ctx context.Context, n int64) (Permit, error) {
	if err := ctx.Err(); err != nil {
		return Permit{}, err
	}

	if p, ok := g.tryAcquireN(n); ok {
		return p, nil
	}

	for {
		w := g.waiters.Add()

		// Re-check after registering, in case permits were released between
		// the failed try above and this registration.
		if p, ok := g.tryAcquireN(n); ok {
			w.Close()
			return p, nil
		}

		select {
		case <-w.Done():
			if p, ok := g.tryAcquireN(n); ok {
				return p, nil
			}
			// Spurious: another waiter (or AddPermits racing with a
			// concurrent acquirer) claimed the permits first. Loop and
			// register again at the back of the queue.
		case <-ctx.Done():
			w.Close()
			return Permit{}, ctx.Err()
		}
	}
}

// AddPermits releases n permits back to the gate, waking waiters as
// capacity allows.
func (g *Gate) AddPermits(n int64) {
	if n <= 0 {
		return
	}
	g.permits.Add(n)
	for range n {
		g.waiters.Notify()
	}
}

// AvailablePermits returns an advisory count of currently available
// permits.
func (g *Gate) AvailablePermits() int64 {
	return g.permits.Load()
}
