package validation

import (
	"errors"
	"strconv"
)

// Kind classifies a validation failure. The set is closed.
type Kind int

const (
	KindInvalidEmail Kind = iota + 1
	KindInvalidAge
	KindDivisionByZero
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEmail:
		return "invalid_email"
	case KindInvalidAge:
		return "invalid_age"
	case KindDivisionByZero:
		return "division_by_zero"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a sealed interface implemented only by the failure types of this
// package.
type Error interface {
	error
	Kind() Kind
	validationError()
}

var (
	_ Error = (*InvalidEmailError)(nil)
	_ Error = (*InvalidAgeError)(nil)
	_ Error = DivisionByZeroError{}
)

// InvalidEmailError carries the rejected address verbatim.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return "invalid email format: " + e.Email
}

func (*InvalidEmailError) Kind() Kind       { return KindInvalidEmail }
func (*InvalidEmailError) validationError() {}

// InvalidAgeError carries the out-of-range age.
type InvalidAgeError struct {
	Age int
}

func (e *InvalidAgeError) Error() string {
	return "invalid age: " + strconv.Itoa(e.Age)
}

func (*InvalidAgeError) Kind() Kind       { return KindInvalidAge }
func (*InvalidAgeError) validationError() {}

// DivisionByZeroError has no payload; compare against ErrDivisionByZero.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

func (DivisionByZeroError) Kind() Kind       { return KindDivisionByZero }
func (DivisionByZeroError) validationError() {}

var ErrDivisionByZero error = DivisionByZeroError{}

// KindOf reports the Kind of the first validation failure in err's chain.
func KindOf(err error) (Kind, bool) {
	var verr Error
	if errors.As(err, &verr) {
		return verr.Kind(), true
	}
	return 0, false
}

// Match dispatches on the concrete failure type. It panics if err is not a
// validation failure; use KindOf first when the origin is unknown.
func Match[R any](
	err Error,
	onEmail func(*InvalidEmailError) R,
	onAge func(*InvalidAgeError) R,
	onDivision func(DivisionByZeroError) R,
) R {
	switch e := err.(type) {
	case *InvalidEmailError:
		return onEmail(e)
	case *InvalidAgeError:
		return onAge(e)
	case DivisionByZeroError:
		return onDivision(e)
	}
	panic("exhaustive match fallback, error type: " + err.Error())
}
