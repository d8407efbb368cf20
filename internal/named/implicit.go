package named

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/axial-ml/axial/internal/buffer"
)

// ArrayLike is a materialized array or a recipe for one. Implicit
// variants describe their elements by rule instead of storage and defer
// construction until an operation needs them; every operation accepts
// ArrayLike operands and materializes on entry. The interface is closed:
// the variants are *Array, *LinearSpace, *LogarithmicSpace,
// *GeometricSpace, *ArrayRange, *UniformRandomSample,
// *NormalRandomSample, and *StratifiedRandomSpace.
type ArrayLike interface {
	// Materialize realizes the value as a concrete array. Implicit
	// variants build a fresh Float64 array on every call.
	Materialize() (*Array, error)
	isArrayLike()
}

func validateAxisParam(op, axis string, b buffer.Backend) error {
	if b == nil {
		return fmt.Errorf("%s: %w: nil backend", op, ErrInvalidParameter)
	}
	if axis == "" {
		return fmt.Errorf("%s: %w: empty axis name", op, ErrInvalidParameter)
	}
	return nil
}

func fromValues(values []float64, axis string, b buffer.Backend) (*Array, error) {
	return FromSlice(values, AxisSet{{Name: axis, Extent: len(values)}}, b)
}

// linspaceStep returns the spacing linspaceValues uses, or 0 when fewer
// than two samples fix no spacing.
func linspaceStep(start, stop float64, num int, endpoint bool) float64 {
	if num < 2 {
		return 0
	}
	if endpoint {
		return (stop - start) / float64(num-1)
	}
	return (stop - start) / float64(num)
}

func linspaceValues(start, stop float64, num int, endpoint bool) []float64 {
	values := make([]float64, num)
	switch {
	case num == 0:
	case num == 1:
		values[0] = start
	case endpoint:
		floats.Span(values, start, stop)
	default:
		step := (stop - start) / float64(num)
		for i := range values {
			values[i] = start + float64(i)*step
		}
	}
	return values
}

// LinearSpace is an implicit 1-D array of Num evenly spaced samples from
// Start toward Stop along Axis. With Endpoint the last sample is exactly
// Stop; otherwise Stop is excluded and the spacing shrinks accordingly.
type LinearSpace struct {
	Start    float64
	Stop     float64
	Axis     string
	Num      int
	Endpoint bool

	backend buffer.Backend
}

// NewLinearSpace describes num evenly spaced samples from start toward
// stop. A num of 0 describes an empty axis; a num of 1 yields just start.
func NewLinearSpace(start, stop float64, axis string, num int, endpoint bool, b buffer.Backend) (*LinearSpace, error) {
	if err := validateAxisParam("linspace", axis, b); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, fmt.Errorf("linspace: %w: num must be non-negative, got %d", ErrInvalidParameter, num)
	}
	return &LinearSpace{Start: start, Stop: stop, Axis: axis, Num: num, Endpoint: endpoint, backend: b}, nil
}

// Step returns the spacing between consecutive samples, or 0 when fewer
// than two samples fix no spacing.
func (s *LinearSpace) Step() float64 {
	return linspaceStep(s.Start, s.Stop, s.Num, s.Endpoint)
}

// Materialize realizes the samples as a concrete 1-D Float64 array.
func (s *LinearSpace) Materialize() (*Array, error) {
	return fromValues(linspaceValues(s.Start, s.Stop, s.Num, s.Endpoint), s.Axis, s.backend)
}

func (s *LinearSpace) String() string {
	return fmt.Sprintf("LinearSpace(%s: %g..%g, num=%d, endpoint=%t)",
		s.Axis, s.Start, s.Stop, s.Num, s.Endpoint)
}

func (s *LinearSpace) isArrayLike() {}

// LogarithmicSpace is an implicit 1-D array whose samples are Base raised
// to exponents evenly spaced from StartExponent toward StopExponent.
type LogarithmicSpace struct {
	StartExponent float64
	StopExponent  float64
	Base          float64
	Axis          string
	Num           int
	Endpoint      bool

	backend buffer.Backend
}

// NewLogarithmicSpace describes num samples of base raised to evenly
// spaced exponents. The base must be positive.
func NewLogarithmicSpace(startExp, stopExp float64, axis string, num int, base float64, endpoint bool, b buffer.Backend) (*LogarithmicSpace, error) {
	if err := validateAxisParam("logspace", axis, b); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, fmt.Errorf("logspace: %w: num must be non-negative, got %d", ErrInvalidParameter, num)
	}
	if base <= 0 {
		return nil, fmt.Errorf("logspace: %w: base must be positive, got %g", ErrInvalidParameter, base)
	}
	return &LogarithmicSpace{
		StartExponent: startExp,
		StopExponent:  stopExp,
		Base:          base,
		Axis:          axis,
		Num:           num,
		Endpoint:      endpoint,
		backend:       b,
	}, nil
}

// Start returns the first sample value, Base raised to StartExponent.
func (s *LogarithmicSpace) Start() float64 { return math.Pow(s.Base, s.StartExponent) }

// Stop returns the value the samples run toward, Base raised to
// StopExponent.
func (s *LogarithmicSpace) Stop() float64 { return math.Pow(s.Base, s.StopExponent) }

// Materialize realizes the samples as a concrete 1-D Float64 array.
func (s *LogarithmicSpace) Materialize() (*Array, error) {
	values := linspaceValues(s.StartExponent, s.StopExponent, s.Num, s.Endpoint)
	for i, e := range values {
		values[i] = math.Pow(s.Base, e)
	}
	return fromValues(values, s.Axis, s.backend)
}

func (s *LogarithmicSpace) String() string {
	return fmt.Sprintf("LogarithmicSpace(%s: %g^%g..%g^%g, num=%d, endpoint=%t)",
		s.Axis, s.Base, s.StartExponent, s.Base, s.StopExponent, s.Num, s.Endpoint)
}

func (s *LogarithmicSpace) isArrayLike() {}

// GeometricSpace is an implicit 1-D array of Num samples spaced by a
// constant ratio from Start toward Stop. The endpoints must be nonzero
// and share a sign.
type GeometricSpace struct {
	Start    float64
	Stop     float64
	Axis     string
	Num      int
	Endpoint bool

	backend buffer.Backend
}

// NewGeometricSpace describes num geometrically spaced samples from
// start toward stop.
func NewGeometricSpace(start, stop float64, axis string, num int, endpoint bool, b buffer.Backend) (*GeometricSpace, error) {
	if err := validateAxisParam("geomspace", axis, b); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, fmt.Errorf("geomspace: %w: num must be non-negative, got %d", ErrInvalidParameter, num)
	}
	if start == 0 || stop == 0 {
		return nil, fmt.Errorf("geomspace: %w: endpoints must be nonzero, got %g..%g", ErrInvalidParameter, start, stop)
	}
	if (start < 0) != (stop < 0) {
		return nil, fmt.Errorf("geomspace: %w: endpoints must share a sign, got %g..%g", ErrInvalidParameter, start, stop)
	}
	return &GeometricSpace{Start: start, Stop: stop, Axis: axis, Num: num, Endpoint: endpoint, backend: b}, nil
}

// Ratio returns the multiplicative step between consecutive samples, or
// 0 when fewer than two samples fix no ratio.
func (g *GeometricSpace) Ratio() float64 {
	if g.Num < 2 {
		return 0
	}
	if g.Endpoint {
		return math.Pow(g.Stop/g.Start, 1/float64(g.Num-1))
	}
	return math.Pow(g.Stop/g.Start, 1/float64(g.Num))
}

// Materialize realizes the samples as a concrete 1-D Float64 array. The
// spacing is computed in log space on the magnitudes and the shared sign
// restored afterward, with the endpoints set exactly.
func (g *GeometricSpace) Materialize() (*Array, error) {
	values := linspaceValues(math.Log10(math.Abs(g.Start)), math.Log10(math.Abs(g.Stop)), g.Num, g.Endpoint)
	sign := 1.0
	if g.Start < 0 {
		sign = -1
	}
	for i, e := range values {
		values[i] = sign * math.Pow(10, e)
	}
	if g.Num > 0 {
		values[0] = g.Start
		if g.Endpoint && g.Num > 1 {
			values[g.Num-1] = g.Stop
		}
	}
	return fromValues(values, g.Axis, g.backend)
}

func (g *GeometricSpace) String() string {
	return fmt.Sprintf("GeometricSpace(%s: %g..%g, num=%d, endpoint=%t)",
		g.Axis, g.Start, g.Stop, g.Num, g.Endpoint)
}

func (g *GeometricSpace) isArrayLike() {}

// ArrayRange is an implicit 1-D array of samples Start, Start+Step,
// Start+2*Step, ... over the half-open interval toward Stop. A negative
// Step counts down.
type ArrayRange struct {
	Start float64
	Stop  float64
	Step  float64
	Axis  string

	backend buffer.Backend
}

// NewArrayRange describes the half-open range [start, stop) sampled
// every step. The step must be nonzero.
func NewArrayRange(start, stop, step float64, axis string, b buffer.Backend) (*ArrayRange, error) {
	if err := validateAxisParam("arange", axis, b); err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, fmt.Errorf("arange: %w: step must be nonzero", ErrInvalidParameter)
	}
	return &ArrayRange{Start: start, Stop: stop, Step: step, Axis: axis, backend: b}, nil
}

// Num returns the number of samples the half-open range produces. A
// range that never reaches Stop from Start produces none.
func (r *ArrayRange) Num() int {
	n := int(math.Ceil((r.Stop - r.Start) / r.Step))
	if n < 0 {
		return 0
	}
	return n
}

// Materialize realizes the samples as a concrete 1-D Float64 array.
func (r *ArrayRange) Materialize() (*Array, error) {
	values := make([]float64, r.Num())
	for i := range values {
		values[i] = r.Start + float64(i)*r.Step
	}
	return fromValues(values, r.Axis, r.backend)
}

func (r *ArrayRange) String() string {
	return fmt.Sprintf("ArrayRange(%s: %g..%g step %g)", r.Axis, r.Start, r.Stop, r.Step)
}

func (r *ArrayRange) isArrayLike() {}
