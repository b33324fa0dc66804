// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package flowq

import "github.com/arl/flowq/internal/cerr"

// ErrInvalidCapacity is the panic value used by [NewLimited], [NewResizable],
// and [Resizable.Resize] when asked for a negative capacity.
const ErrInvalidCapacity = cerr.Error("flowq: capacity must be non-negative")
