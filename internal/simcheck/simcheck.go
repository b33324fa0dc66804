// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package simcheck discrete-event-simulates a randomized schedule of
// push, pop, and resize operations against a [flowq.Resizable] queue and
// checks the quantified invariants of the coordination layer against a
// reference model, the same way the parent module's own job-duration
// estimator drives a randomized schedule of task events through a
// time-ordered heap and checks the result against its model.
//
// Every generated operation is assigned a simulated arrival time with
// random jitter and scheduled on a min-heap; draining the heap in time
// order (permuting same-instant arrivals, since no ordering is guaranteed
// between them) produces one interleaving out of many a real concurrent
// schedule could realize. Operations are applied with their non-suspending
// Try* forms so the whole schedule can be replayed synchronously: no
// operation actually blocks, so a "would block" push or pop is itself the
// event outcome being checked against the model, not a suspension.
package simcheck

import (
	"cmp"
	"context"
	"time"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arl/flowq"
)

// scheduledEvent is a single simulated arrival: at time Time, apply Apply
// to the queue and model under test.
type scheduledEvent struct {
	Time  time.Duration
	Apply func()
}

func (a *scheduledEvent) Cmp(b *scheduledEvent) int {
	return cmp.Compare(a.Time, b.Time)
}

// Config controls the shape of a generated schedule.
type Config struct {
	InitialCapacity int
	EventCount      int
	JitterUnit      time.Duration
	MaxJitterUnits  int
}

// Run generates Config.EventCount randomized push/pop/resize events,
// drains them in simulated time order, and asserts after every simulated
// instant (all events sharing one arrival time) that the queue's
// introspection surface agrees with a reference model. It
// fails t if any invariant is violated.
func Run(t *rapid.T, config Config) {
	chk := require.New(t)
	q := flowq.NewResizable[int](config.InitialCapacity)
	var model deque.Deque[int]
	capacity := config.InitialCapacity
	nextValue := 0

	var eventHeap heap.Heap[scheduledEvent, heap.Min]
	simTime := time.Duration(0)

	jitter := func() time.Duration {
		if config.MaxJitterUnits <= 0 || config.JitterUnit <= 0 {
			return 0
		}
		return config.JitterUnit * time.Duration(rapid.IntRange(0, config.MaxJitterUnits).Draw(t, "jitterUnits"))
	}

	kinds := []string{"tryPush", "tryPop", "growResize", "shrinkResize"}
	for i := 0; i < config.EventCount; i++ {
		kind := rapid.SampledFrom(kinds).Draw(t, "eventKind")
		at := simTime + jitter()

		switch kind {
		case "tryPush":
			value := nextValue
			nextValue++
			heap.PushOrderable(&eventHeap, scheduledEvent{
				Time: at,
				Apply: func() {
					ok := q.TryPush(value)
					chk.Equal(model.Len() < capacity, ok, "tryPush")
					if ok {
						model.PushBack(value)
					}
				},
			})

		case "tryPop":
			heap.PushOrderable(&eventHeap, scheduledEvent{
				Time: at,
				Apply: func() {
					v, ok := q.TryPop()
					chk.Equal(model.Len() > 0, ok, "tryPop")
					if ok {
						chk.Equal(model.PopFront(), v, "tryPop value")
					}
				},
			})

		case "growResize":
			delta := rapid.IntRange(0, 4).Draw(t, "growDelta")
			heap.PushOrderable(&eventHeap, scheduledEvent{
				Time: at,
				Apply: func() {
					target := capacity + delta
					chk.NoError(q.Resize(context.Background(), target))
					capacity = target
				},
			})

		case "shrinkResize":
			// Drawn independent of the current capacity (which may change
			// before this event is applied, if a concurrent event at the
			// same simulated instant is permuted ahead of it): the target
			// is clamped to zero at apply time instead of computed here.
			delta := rapid.IntRange(0, 8).Draw(t, "shrinkDelta")
			heap.PushOrderable(&eventHeap, scheduledEvent{
				Time: at,
				Apply: func() {
					target := max(capacity-delta, 0)
					chk.NoError(q.Resize(context.Background(), target))
					capacity = target
					for model.Len() > capacity {
						model.PopFront()
					}
				},
			})
		}

		simTime = at
		checkInvariants(chk, q, &model, capacity)
	}

	drainHeap(t, chk, &eventHeap, q, &model, &capacity)
}

func drainHeap(
	t *rapid.T,
	chk *require.Assertions,
	eventHeap *heap.Heap[scheduledEvent, heap.Min],
	q *flowq.Resizable[int],
	model *deque.Deque[int],
	capacity *int,
) {
	var concurrent []scheduledEvent
	for {
		event, ok := heap.PopOrderable(eventHeap)
		if !ok {
			return
		}
		concurrent = concurrent[:0]
		concurrent = append(concurrent, event)
		for {
			next, ok := heap.Peek(eventHeap)
			if !ok || next.Time != concurrent[0].Time {
				break
			}
			popped, _ := heap.PopOrderable(eventHeap)
			concurrent = append(concurrent, popped)
		}
		if len(concurrent) > 1 {
			concurrent = rapid.Permutation(concurrent).Draw(t, "concurrentEvents")
		}
		for _, e := range concurrent {
			e.Apply()
		}
		checkInvariants(chk, q, model, *capacity)
	}
}

func checkInvariants(chk *require.Assertions, q *flowq.Resizable[int], model *deque.Deque[int], capacity int) {
	chk.Equal(model.Len(), q.Len(), "len")
	chk.EqualValues(model.Len(), q.Available(), "available")
	chk.EqualValues(capacity, q.Capacity(), "capacity")
	chk.Equal(model.Len() == 0, q.IsEmpty(), "isEmpty")
}
