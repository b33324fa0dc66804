// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package simcheck_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/arl/flowq/internal/simcheck"
)

func TestResizableScheduleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		simcheck.Run(t, simcheck.Config{
			InitialCapacity: rapid.IntRange(0, 8).Draw(t, "initialCapacity"),
			EventCount:      30,
			JitterUnit:      time.Millisecond,
			MaxJitterUnits:  5,
		})
	})
}

func TestResizableScheduleInvariantsNoJitter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		simcheck.Run(t, simcheck.Config{
			InitialCapacity: rapid.IntRange(0, 4).Draw(t, "initialCapacity"),
			EventCount:      50,
		})
	})
}
