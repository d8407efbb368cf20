// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package named provides named-axis arrays for the Axial framework.
//
// # Overview
//
// Every dimension of an array carries a semantic name. This package provides:
//   - Arrays whose dimensions are addressed by name, never by position
//   - Automatic alignment and broadcasting by axis name
//   - Implicit arrays (grids, ranges, random samples) defined by parameters
//   - Named indexing, reduction, and structural operations
//
// # Basic Usage
//
//	import (
//	    "github.com/axial-ml/axial/backend/cpu"
//	    "github.com/axial-ml/axial/named"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Arrays on different axes
//	    x, _ := named.FromSlice([]float64{1, 2, 3}, named.AxisSet{{Name: "x", Extent: 3}}, backend)
//	    y, _ := named.FromSlice([]float64{10, 20}, named.AxisSet{{Name: "y", Extent: 2}}, backend)
//
//	    // Operations align by name: the result spans both axes
//	    z, _ := named.Add(x, y) // axes {x:3, y:2}
//	}
//
// # Named Alignment
//
// Binary operations never match dimensions by position. Each operand is
// aligned by axis name before the kernel runs:
//   - An axis present in both operands must agree in extent, or be 1 in one
//   - An axis present in only one operand broadcasts across the other
//   - Result axes appear in first-seen order across the operands
//
// An extent mismatch on a shared axis is an error, never silent recycling.
//
// # Implicit Arrays
//
// Implicit arrays describe their values by rule rather than by buffer:
//
//	grid, _ := named.NewLinearSpace(0, 1, "x", 101, true, backend)
//	noise, _ := named.NewNormalRandomSample(0, 0.1, named.AxisSet{{Name: "x", Extent: 101}}, 7, backend)
//
// They materialize lazily and can be passed directly as operands anywhere
// an Array can.
//
// # Indexing and Reduction
//
// Selection and reduction address axes by name:
//
//	row, _ := arr.Get(named.Index{"y": named.At(0)})        // collapse y
//	window, _ := arr.Get(named.Index{"x": named.Span(2, 5)})
//	total, _ := arr.Sum("x")                                // reduce x away
//
// # Supported Data Types
//
// Arrays support the following element types via the buffer package:
//   - float64, float32 (floating-point)
//   - int64, int32 (signed integers)
//   - bool (masks and logical operations)
//
// # Error Handling
//
// All failures are reported as wrapped sentinel errors:
//
//	if errors.Is(err, named.ErrAxisMismatch) {
//	    // shared axis extents disagree
//	}
//
// See method documentation for the full list of operations.
package named
