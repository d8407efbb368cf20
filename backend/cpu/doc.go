// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum-accelerated float64 kernels
//   - Float64, Float32, Int64, Int32 and Bool support
//   - Stride-based broadcasting without materializing expansions
//
// # Basic Usage
//
//	import (
//	    "github.com/axial-ml/axial/backend/cpu"
//	    "github.com/axial-ml/axial/named"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with named arrays
//	    x, _ := named.FromSlice([]float64{1, 2, 3}, named.AxisSet{{Name: "x", Extent: 3}}, backend)
//	    y, _ := named.FromSlice([]float64{10, 20}, named.AxisSet{{Name: "y", Extent: 2}}, backend)
//	    z, _ := named.Add(x, y)
//	}
//
// # Thread Safety
//
// The CPU backend is stateless and safe for concurrent use. Each buffer
// operation is isolated and does not share mutable state.
package cpu
