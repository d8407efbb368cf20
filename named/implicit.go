// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package named

import (
	"github.com/axial-ml/axial/buffer"
	"github.com/axial-ml/axial/internal/named"
)

// Implicit array aliases
//
// Implicit arrays describe their values by rule rather than by buffer.
// Each implements ArrayLike, so it can be passed to any operation directly;
// Materialize produces the explicit Array on demand.

// LinearSpace is an implicit array of evenly spaced values over an interval.
type LinearSpace = named.LinearSpace

// LogarithmicSpace is an implicit array spaced evenly in exponent.
type LogarithmicSpace = named.LogarithmicSpace

// GeometricSpace is an implicit array spaced by a constant ratio.
type GeometricSpace = named.GeometricSpace

// ArrayRange is an implicit array of values from a start by a fixed step.
type ArrayRange = named.ArrayRange

// UniformRandomSample is an implicit array of uniform draws from [Start, Stop).
type UniformRandomSample = named.UniformRandomSample

// NormalRandomSample is an implicit array of normal draws.
type NormalRandomSample = named.NormalRandomSample

// StratifiedRandomSpace is an implicit array of jittered grid samples.
type StratifiedRandomSpace = named.StratifiedRandomSpace

// Implicit array constructors

// NewLinearSpace creates an implicit array of num evenly spaced values
// from start to stop along one axis. With endpoint, stop is the last
// value; without, the interval is half-open as in numpy.linspace.
//
// Example:
//
//	backend := cpu.New()
//	grid, err := named.NewLinearSpace(0, 1, "x", 5, true, backend)
//	// values 0, 0.25, 0.5, 0.75, 1
func NewLinearSpace(start, stop float64, axis string, num int, endpoint bool, b buffer.Backend) (*LinearSpace, error) {
	return named.NewLinearSpace(start, stop, axis, num, endpoint, b)
}

// NewLogarithmicSpace creates an implicit array of num values spaced
// evenly in exponent, from base**startExp to base**stopExp.
//
// Example:
//
//	backend := cpu.New()
//	freqs, err := named.NewLogarithmicSpace(0, 3, "f", 4, 10, true, backend)
//	// values 1, 10, 100, 1000
func NewLogarithmicSpace(startExp, stopExp float64, axis string, num int, base float64, endpoint bool, b buffer.Backend) (*LogarithmicSpace, error) {
	return named.NewLogarithmicSpace(startExp, stopExp, axis, num, base, endpoint, b)
}

// NewGeometricSpace creates an implicit array of num values spaced by a
// constant ratio from start to stop. Both endpoints must be nonzero and
// share a sign.
//
// Example:
//
//	backend := cpu.New()
//	steps, err := named.NewGeometricSpace(1, 8, "k", 4, true, backend)
//	// values 1, 2, 4, 8
func NewGeometricSpace(start, stop float64, axis string, num int, endpoint bool, b buffer.Backend) (*GeometricSpace, error) {
	return named.NewGeometricSpace(start, stop, axis, num, endpoint, b)
}

// NewArrayRange creates an implicit array of values from start toward
// stop (exclusive) by step, as in numpy.arange.
//
// Example:
//
//	backend := cpu.New()
//	idx, err := named.NewArrayRange(0, 5, 1, "i", backend)
//	// values 0, 1, 2, 3, 4
func NewArrayRange(start, stop, step float64, axis string, b buffer.Backend) (*ArrayRange, error) {
	return named.NewArrayRange(start, stop, step, axis, b)
}

// NewUniformRandomSample creates an implicit array of uniform draws from
// [start, stop) over the given axes. A negative seed draws a fresh one;
// the stored seed makes Materialize repeatable either way.
//
// Example:
//
//	backend := cpu.New()
//	noise, err := named.NewUniformRandomSample(0, 1, named.AxisSet{{Name: "x", Extent: 100}}, 7, backend)
func NewUniformRandomSample(start, stop float64, axes AxisSet, seed int64, b buffer.Backend) (*UniformRandomSample, error) {
	return named.NewUniformRandomSample(start, stop, axes, seed, b)
}

// NewNormalRandomSample creates an implicit array of normal draws with
// the given center and width over the given axes.
//
// Example:
//
//	backend := cpu.New()
//	noise, err := named.NewNormalRandomSample(0, 0.1, named.AxisSet{{Name: "x", Extent: 100}}, 7, backend)
func NewNormalRandomSample(center, width float64, axes AxisSet, seed int64, b buffer.Backend) (*NormalRandomSample, error) {
	return named.NewNormalRandomSample(center, width, axes, seed, b)
}

// NewStratifiedRandomSpace creates an implicit array of num samples, one
// drawn uniformly from each cell of an even partition of [start, stop].
// Centers returns the unjittered grid.
//
// Example:
//
//	backend := cpu.New()
//	samples, err := named.NewStratifiedRandomSpace(0, 10, "x", 10, false, 7, backend)
func NewStratifiedRandomSpace(start, stop float64, axis string, num int, endpoint bool, seed int64, b buffer.Backend) (*StratifiedRandomSpace, error) {
	return named.NewStratifiedRandomSpace(start, stop, axis, num, endpoint, seed, b)
}
