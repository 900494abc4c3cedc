package peak

import "errors"

// ErrInvalidCriteria is returned when a RectExclusion's {Lo,Hi} length or a
// DiagExclusion's DimI/DimJ names an axis the grid's rank doesn't have.
var ErrInvalidCriteria = errors.New("peak: invalid criteria")

// ErrInvalidGrid is returned when the grid's rank is outside [1,10].
var ErrInvalidGrid = errors.New("peak: invalid grid")
