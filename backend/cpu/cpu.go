// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/axial-ml/axial/buffer"
	internalcpu "github.com/axial-ml/axial/internal/backend/cpu"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all buffer operations
// with gonum-accelerated float64 reductions.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements buffer.Backend.
var _ buffer.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/axial-ml/axial/backend/cpu"
//	    "github.com/axial-ml/axial/named"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, err := named.Zeros(named.AxisSet{{Name: "x", Extent: 3}}, named.Float64, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
