// Package validation checks domain values and reports a specific, inspectable
// failure instead of a boolean.
//
// Every function is pure and total: it either succeeds or returns exactly one
// failure from the closed set InvalidEmailError, InvalidAgeError and
// DivisionByZeroError. Callers inspect failures with errors.As, errors.Is,
// KindOf or Match.
package validation

import (
	"regexp"
)

const (
	MinAge = 0
	MaxAge = 150
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail succeeds iff the whole string is local-part@domain.tld with a
// tld of at least two letters.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &InvalidEmailError{Email: email}
	}
	return nil
}

// ValidateAge succeeds iff MinAge <= age <= MaxAge.
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return &InvalidAgeError{Age: age}
	}
	return nil
}

// SafeDivide returns a/b, or ErrDivisionByZero when b is zero.
func SafeDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
