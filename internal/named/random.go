package named

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/axial-ml/axial/internal/buffer"
)

// Random implicit arrays are recipes too: the draw is fixed by the seed,
// so materializing twice yields the same elements. A negative seed asks
// the constructor to draw a fresh one, which is then stored, keeping
// Materialize repeatable.

func resolveSeed(seed int64) int64 {
	if seed >= 0 {
		return seed
	}
	return rand.Int64()
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// UniformRandomSample is an implicit array of independent draws uniform
// on [Start, Stop) over the given axes.
type UniformRandomSample struct {
	Start float64
	Stop  float64
	Axes  AxisSet
	Seed  int64

	backend buffer.Backend
}

// NewUniformRandomSample describes independent uniform draws on
// [start, stop) shaped by axes. A negative seed draws a fresh seed.
func NewUniformRandomSample(start, stop float64, axes AxisSet, seed int64, b buffer.Backend) (*UniformRandomSample, error) {
	if b == nil {
		return nil, fmt.Errorf("uniform: %w: nil backend", ErrInvalidParameter)
	}
	if err := axes.Validate(); err != nil {
		return nil, fmt.Errorf("uniform: %w", err)
	}
	return &UniformRandomSample{
		Start:   start,
		Stop:    stop,
		Axes:    axes.Clone(),
		Seed:    resolveSeed(seed),
		backend: b,
	}, nil
}

// Materialize realizes the draws as a concrete Float64 array.
func (u *UniformRandomSample) Materialize() (*Array, error) {
	rng := newRNG(u.Seed)
	span := u.Stop - u.Start
	values := make([]float64, u.Axes.Extents().NumElements())
	for i := range values {
		values[i] = u.Start + span*rng.Float64()
	}
	return FromSlice(values, u.Axes, u.backend)
}

func (u *UniformRandomSample) String() string {
	return fmt.Sprintf("UniformRandomSample(%s: %g..%g, seed=%d)", u.Axes, u.Start, u.Stop, u.Seed)
}

func (u *UniformRandomSample) isArrayLike() {}

// NormalRandomSample is an implicit array of independent Gaussian draws
// with mean Center and standard deviation Width over the given axes.
type NormalRandomSample struct {
	Center float64
	Width  float64
	Axes   AxisSet
	Seed   int64

	backend buffer.Backend
}

// NewNormalRandomSample describes independent normal draws shaped by
// axes. The width must be non-negative; a negative seed draws a fresh
// seed.
func NewNormalRandomSample(center, width float64, axes AxisSet, seed int64, b buffer.Backend) (*NormalRandomSample, error) {
	if b == nil {
		return nil, fmt.Errorf("normal: %w: nil backend", ErrInvalidParameter)
	}
	if width < 0 {
		return nil, fmt.Errorf("normal: %w: width must be non-negative, got %g", ErrInvalidParameter, width)
	}
	if err := axes.Validate(); err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}
	return &NormalRandomSample{
		Center:  center,
		Width:   width,
		Axes:    axes.Clone(),
		Seed:    resolveSeed(seed),
		backend: b,
	}, nil
}

// Materialize realizes the draws as a concrete Float64 array. Deviates
// come from the Box-Muller transform, two per pair of uniforms.
func (n *NormalRandomSample) Materialize() (*Array, error) {
	rng := newRNG(n.Seed)
	values := make([]float64, n.Axes.Extents().NumElements())
	for i := 0; i < len(values); i += 2 {
		// u1 stays in (0, 1] so the log is finite.
		u1 := 1 - rng.Float64()
		u2 := rng.Float64()
		r := math.Sqrt(-2 * math.Log(u1))
		values[i] = n.Center + n.Width*r*math.Cos(2*math.Pi*u2)
		if i+1 < len(values) {
			values[i+1] = n.Center + n.Width*r*math.Sin(2*math.Pi*u2)
		}
	}
	return FromSlice(values, n.Axes, n.backend)
}

func (n *NormalRandomSample) String() string {
	return fmt.Sprintf("NormalRandomSample(%s: center=%g, width=%g, seed=%d)", n.Axes, n.Center, n.Width, n.Seed)
}

func (n *NormalRandomSample) isArrayLike() {}

// StratifiedRandomSpace is an implicit 1-D array that jitters each
// sample of an evenly spaced grid uniformly within its own cell. The
// samples stay ordered and cover the interval without clumping.
type StratifiedRandomSpace struct {
	Start    float64
	Stop     float64
	Axis     string
	Num      int
	Endpoint bool
	Seed     int64

	backend buffer.Backend
}

// NewStratifiedRandomSpace describes num cell-jittered samples from
// start toward stop. A negative seed draws a fresh seed.
func NewStratifiedRandomSpace(start, stop float64, axis string, num int, endpoint bool, seed int64, b buffer.Backend) (*StratifiedRandomSpace, error) {
	if err := validateAxisParam("stratified", axis, b); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, fmt.Errorf("stratified: %w: num must be non-negative, got %d", ErrInvalidParameter, num)
	}
	return &StratifiedRandomSpace{
		Start:    start,
		Stop:     stop,
		Axis:     axis,
		Num:      num,
		Endpoint: endpoint,
		Seed:     resolveSeed(seed),
		backend:  b,
	}, nil
}

// Centers returns the undisturbed grid the samples jitter around.
func (s *StratifiedRandomSpace) Centers() *LinearSpace {
	return &LinearSpace{
		Start:    s.Start,
		Stop:     s.Stop,
		Axis:     s.Axis,
		Num:      s.Num,
		Endpoint: s.Endpoint,
		backend:  s.backend,
	}
}

// Materialize realizes the samples as a concrete 1-D Float64 array. Each
// sample moves from its grid center by a uniform offset within half a
// step either way; a single sample has no cell and stays put.
func (s *StratifiedRandomSpace) Materialize() (*Array, error) {
	values := linspaceValues(s.Start, s.Stop, s.Num, s.Endpoint)
	if s.Num > 1 {
		rng := newRNG(s.Seed)
		step := linspaceStep(s.Start, s.Stop, s.Num, s.Endpoint)
		for i := range values {
			values[i] += step * (rng.Float64() - 0.5)
		}
	}
	return fromValues(values, s.Axis, s.backend)
}

func (s *StratifiedRandomSpace) String() string {
	return fmt.Sprintf("StratifiedRandomSpace(%s: %g..%g, num=%d, endpoint=%t, seed=%d)",
		s.Axis, s.Start, s.Stop, s.Num, s.Endpoint, s.Seed)
}

func (s *StratifiedRandomSpace) isArrayLike() {}
