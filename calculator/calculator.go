// Package calculator provides a chainable floating-point accumulator.
//
// Calculator is a value. Every operation has a value receiver and returns a
// new Calculator, so chains never alias shared state:
//
//	result := calculator.New().Add(10).Multiply(2).Add(5).Result() // 25
package calculator

import (
	"fmt"

	"github.com/on-the-ground/pure_ive_go/validation"
)

type Calculator struct {
	result float64
}

func New() Calculator {
	return Calculator{}
}

func (c Calculator) Add(value float64) Calculator {
	c.result += value
	return c
}

func (c Calculator) Multiply(value float64) Calculator {
	c.result *= value
	return c
}

// Divide divides by value. A zero divisor leaves the accumulator unchanged;
// use TryDivide to observe the rejection.
func (c Calculator) Divide(value float64) Calculator {
	next, _ := c.TryDivide(value)
	return next
}

// TryDivide divides by value through validation.SafeDivide. On a zero
// divisor it returns c unchanged together with validation.ErrDivisionByZero.
func (c Calculator) TryDivide(value float64) (Calculator, error) {
	quotient, err := validation.SafeDivide(c.result, value)
	if err != nil {
		return c, err
	}
	c.result = quotient
	return c, nil
}

func (c Calculator) Reset() Calculator {
	return Calculator{}
}

func (c Calculator) Result() float64 {
	return c.result
}

func (c Calculator) String() string {
	return fmt.Sprintf("Calculator(result = %.2f)", c.result)
}
