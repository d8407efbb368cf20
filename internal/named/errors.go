package named

import "errors"

// Sentinel errors for the named-axis layer. Every fallible operation wraps
// one of these with context; match with errors.Is.
var (
	// ErrAxisMismatch reports operands that share an axis name with
	// incompatible extents, or an axis-name collision.
	ErrAxisMismatch = errors.New("named: axis mismatch")

	// ErrAxisNotFound reports a reduction, selection, or transpose that
	// references an axis name the array does not have.
	ErrAxisNotFound = errors.New("named: axis not found")

	// ErrShapeMismatch reports a buffer/axes rank disagreement, a mask of
	// the wrong length, or an out-of-range offset.
	ErrShapeMismatch = errors.New("named: shape mismatch")

	// ErrInvalidParameter reports a malformed argument: negative sample
	// counts, empty axis names, unsupported dtypes, nil backends.
	ErrInvalidParameter = errors.New("named: invalid parameter")
)
