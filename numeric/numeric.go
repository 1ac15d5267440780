// Package numeric holds small integer helpers: factorial, fibonacci, a
// number classifier and a mean. Factorial and fibonacci terms are memoized
// through pure.Tableize.
package numeric

import (
	"errors"
	"fmt"
	"slices"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/on-the-ground/pure_ive_go/validation"
)

const (
	// MaxFactorial is the largest n whose factorial fits in a uint64.
	MaxFactorial = 20
	// MaxFibonacci is the longest sequence whose terms all fit in a uint64.
	MaxFibonacci = 94

	defaultTableSize = 128
)

var ErrOverflow = errors.New("result overflows uint64")

// Tables owns the memo tables behind Factorial and Fibonacci. Close releases
// them.
type Tables struct {
	scope     *pure.Scope
	factorial func(uint) uint64
	fibonacci func(int) uint64
}

// NewTables builds memoized helpers whose tables hold up to tableSize entries
// per generation.
func NewTables(tableSize uint32, opts ...pure.Option) *Tables {
	t := &Tables{scope: pure.NewScope()}
	opts = append(slices.Clone(opts), pure.WithScope(t.scope))
	t.factorial = pure.TableizeI1O1(func(n uint) uint64 {
		if n <= 1 {
			return 1
		}
		return uint64(n) * t.factorial(n-1)
	}, tableSize, opts...)
	t.fibonacci = pure.TableizeI1O1(func(i int) uint64 {
		if i <= 1 {
			return uint64(i)
		}
		return t.fibonacci(i-1) + t.fibonacci(i-2)
	}, tableSize, opts...)
	return t
}

func (t *Tables) Close() {
	t.scope.Close()
}

// Factorial returns n!, or ErrOverflow above MaxFactorial.
func (t *Tables) Factorial(n uint) (uint64, error) {
	if n > MaxFactorial {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
	}
	return t.factorial(n), nil
}

// Fibonacci returns the first n terms starting 0, 1. n <= 0 yields an empty
// slice; n above MaxFibonacci yields ErrOverflow.
func (t *Tables) Fibonacci(n int) ([]uint64, error) {
	if n > MaxFibonacci {
		return nil, fmt.Errorf("fibonacci of length %d: %w", n, ErrOverflow)
	}
	seq := make([]uint64, 0, max(n, 0))
	for i := range max(n, 0) {
		seq = append(seq, t.fibonacci(i))
	}
	return seq, nil
}

var defaultTables = NewTables(defaultTableSize)

func Factorial(n uint) (uint64, error) {
	return defaultTables.Factorial(n)
}

func Fibonacci(n int) ([]uint64, error) {
	return defaultTables.Fibonacci(n)
}

// DescribeNumber classifies n. The first matching rule wins: zero, 1..3,
// negative, even, anything else.
func DescribeNumber(n int) string {
	switch {
	case n == 0:
		return "zero"
	case n >= 1 && n <= 3:
		return "small positive"
	case n < 0:
		return "negative"
	case n%2 == 0:
		return "even"
	default:
		return "other"
	}
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Mean averages values. An empty slice is rejected with
// validation.ErrDivisionByZero.
func Mean[T Number](values []T) (float64, error) {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return validation.SafeDivide(sum, float64(len(values)))
}
