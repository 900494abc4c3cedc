package contour

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for them;
// diagnostic detail is attached via fmt.Errorf("%w: ...", ErrX).
var (
	// ErrInvalidLevels is returned when a level sequence is neither
	// non-decreasing nor non-increasing throughout (spec.md §4.1).
	ErrInvalidLevels = errors.New("contour: invalid levels")

	// ErrInvalidGrid is returned when a grid's rank or shape cannot be
	// contoured (spec.md §4, 2-D only).
	ErrInvalidGrid = errors.New("contour: invalid grid")

	// ErrInconsistentArrayShapes is returned when Flatten is given arrays
	// of differing shape (spec.md §4.6 "Multi-array flattener").
	ErrInconsistentArrayShapes = errors.New("contour: inconsistent array shapes")
)
