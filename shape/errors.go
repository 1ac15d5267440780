package shape

import (
	"errors"
	"strconv"
)

var (
	ErrNegativeLength     = errors.New("length must not be negative")
	ErrNonFinite          = errors.New("length must be finite")
	ErrDegenerateTriangle = errors.New("sides violate the triangle inequality")
)

// InvalidShapeError reports which field of which shape broke a constraint.
// Err is one of the sentinel errors above.
type InvalidShapeError struct {
	Kind  Kind
	Field string
	Value float64
	Err   error
}

// Error formats as "shape: invalid {Kind}.{Field} ({Value}): {Err}".
func (e *InvalidShapeError) Error() string {
	return "shape: invalid " + e.Kind.String() + "." + e.Field +
		" (" + strconv.FormatFloat(e.Value, 'g', -1, 64) + "): " + e.Err.Error()
}

func (e *InvalidShapeError) Unwrap() error {
	return e.Err
}
