package buffer

import "errors"

// Sentinel errors returned by buffer construction and validation.
// Wrap with fmt.Errorf("...: %w", Err...) to add context; match with
// errors.Is.
var (
	// ErrShapeMismatch indicates an invalid shape or incompatible extents.
	ErrShapeMismatch = errors.New("buffer: shape mismatch")

	// ErrInvalidParameter indicates an out-of-domain argument.
	ErrInvalidParameter = errors.New("buffer: invalid parameter")
)
