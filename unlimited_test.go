// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package flowq_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/arl/flowq"
	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestUnlimitedBasics(t *testing.T) {
	q := flowq.NewUnlimited[int]()
	require.True(t, q.IsEmpty())

	q.Push(1)
	q.Push(2)
	require.Equal(t, 2, q.Len())
	require.EqualValues(t, 2, q.Available())

	v, ok := q.TryPop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, err := q.Pop(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, ok = q.TryPop()
	require.False(t, ok)
}

func TestUnlimitedFromRoundTrip(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	q := flowq.UnlimitedFrom(items)
	require.Equal(t, len(items), q.Len())

	for _, want := range items {
		v, ok := q.TryPop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := q.TryPop()
	require.False(t, ok)
}

// TestUnlimitedAvailableGoesNegative is scenario 2 of spec §8, adapted to an
// unbounded queue.
func TestUnlimitedAvailableGoesNegative(t *testing.T) {
	q := flowq.NewUnlimited[int]()

	var wg sync.WaitGroup
	var barrier sync.WaitGroup
	barrier.Add(2)
	results := make(chan int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			barrier.Done()
			barrier.Wait()
			v, err := q.Pop(context.Background())
			require.NoError(t, err)
			results <- v
		}()
	}

	require.Eventually(t, func() bool {
		return q.Available() == -2
	}, time.Second, time.Millisecond)
	require.Equal(t, 0, q.Len())

	q.Push(0)
	q.Push(1)
	wg.Wait()
	close(results)

	seen := map[int]bool{}
	for v := range results {
		seen[v] = true
	}
	require.Len(t, seen, 2)
	require.Equal(t, 0, q.Len())
	require.EqualValues(t, 0, q.Available())
}

// TestUnlimitedWaitEmptyEdge is scenario 5 of spec §8.
func TestUnlimitedWaitEmptyEdge(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	q := flowq.UnlimitedFrom(items)

	var barrier sync.WaitGroup
	barrier.Add(1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		barrier.Wait()
		err := q.WaitEmpty(context.Background())
		require.NoError(t, err)
	}()
	barrier.Done()

	for range items {
		_, ok := q.TryPop()
		require.True(t, ok)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitEmpty did not return after queue was drained")
	}
	require.Equal(t, 0, q.Len())
}

func TestUnlimitedWaitEmptyAlreadyEmpty(t *testing.T) {
	q := flowq.NewUnlimited[int]()
	err := q.WaitEmpty(context.Background())
	require.NoError(t, err)
}

func TestUnlimitedPopCancellation(t *testing.T) {
	q := flowq.NewUnlimited[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.EqualValues(t, 0, q.Available())

	q.Push(42)
	v, ok := q.TryPop()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestUnlimitedParallelStress(t *testing.T) {
	q := flowq.NewUnlimited[int]()
	const consumers = 100
	const perConsumer = 100
	const total = consumers * perConsumer

	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perConsumer; j++ {
				_, err := q.Pop(context.Background())
				require.NoError(t, err)
			}
		}()
	}

	for i := 0; i < total; i++ {
		q.Push(i)
	}
	wg.Wait()
	require.Equal(t, 0, q.Len())
}

func TestUnlimitedRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := flowq.NewUnlimited[int]()
		var model deque.Deque[int]

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "value")
				q.Push(v)
				model.PushBack(v)
			},
			"tryPop": func(t *rapid.T) {
				v, ok := q.TryPop()
				if model.Len() == 0 {
					require.False(t, ok)
					return
				}
				require.True(t, ok)
				require.Equal(t, model.PopFront(), v)
			},
			"": func(t *rapid.T) {
				require.Equal(t, model.Len(), q.Len())
				require.EqualValues(t, model.Len(), q.Available())
			},
		})
	})
}
