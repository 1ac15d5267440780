// Package shape evaluates a closed set of geometric shapes.
//
// Shape is a sealed interface: Circle, Rectangle and Triangle are its only
// implementations. All three are immutable values whose methods are pure
// functions of their fields. Use Match for exhaustive dispatch.
//
// Constructors reject negative or non-finite lengths and triangles whose
// sides violate the triangle inequality. A collinear triangle (a+b == c) is
// accepted and has area 0. A Triangle literal that bypasses NewTriangle and
// is not a valid triangle also reports area 0; Validate explains why.
package shape

import (
	"fmt"
	"math"
)

type Shape interface {
	Kind() Kind
	Area() float64
	Perimeter() float64
	Description() string
	// Validate reports whether the stored fields satisfy the constructor's
	// constraints. Literals built without a constructor may fail it.
	Validate() error

	shape()
}

var (
	_ Shape = Circle{}
	_ Shape = Rectangle{}
	_ Shape = Triangle{}
)

type Circle struct {
	Radius float64
}

func NewCircle(radius float64) (Circle, error) {
	c := Circle{Radius: radius}
	if err := c.Validate(); err != nil {
		return Circle{}, err
	}
	return c, nil
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

func (c Circle) Description() string {
	return fmt.Sprintf("Circle with radius %.2f", c.Radius)
}

func (c Circle) String() string { return c.Description() }

func (c Circle) Validate() error {
	return checkLength(KindCircle, "Radius", c.Radius)
}

func (Circle) shape() {}

type Rectangle struct {
	Width  float64
	Height float64
}

func NewRectangle(width, height float64) (Rectangle, error) {
	r := Rectangle{Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

func (r Rectangle) Description() string {
	return fmt.Sprintf("Rectangle %.2f x %.2f", r.Width, r.Height)
}

func (r Rectangle) String() string { return r.Description() }

func (r Rectangle) Validate() error {
	if err := checkLength(KindRectangle, "Width", r.Width); err != nil {
		return err
	}
	return checkLength(KindRectangle, "Height", r.Height)
}

func (Rectangle) shape() {}

type Triangle struct {
	A float64
	B float64
	C float64
}

func NewTriangle(a, b, c float64) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

func (Triangle) Kind() Kind { return KindTriangle }

// Area uses Heron's formula. Invalid triangles report 0, and the radicand is
// clamped at 0 so collinear sides never produce NaN through rounding.
func (t Triangle) Area() float64 {
	if t.Validate() != nil {
		return 0
	}
	s := (t.A + t.B + t.C) / 2
	return math.Sqrt(math.Max(0, s*(s-t.A)*(s-t.B)*(s-t.C)))
}

func (t Triangle) Perimeter() float64 {
	return t.A + t.B + t.C
}

func (t Triangle) Description() string {
	return fmt.Sprintf("Triangle with sides %.2f, %.2f, %.2f", t.A, t.B, t.C)
}

func (t Triangle) String() string { return t.Description() }

func (t Triangle) Validate() error {
	for _, side := range []struct {
		field string
		value float64
	}{{"A", t.A}, {"B", t.B}, {"C", t.C}} {
		if err := checkLength(KindTriangle, side.field, side.value); err != nil {
			return err
		}
	}
	switch {
	case t.A+t.B < t.C:
		return &InvalidShapeError{Kind: KindTriangle, Field: "C", Value: t.C, Err: ErrDegenerateTriangle}
	case t.A+t.C < t.B:
		return &InvalidShapeError{Kind: KindTriangle, Field: "B", Value: t.B, Err: ErrDegenerateTriangle}
	case t.B+t.C < t.A:
		return &InvalidShapeError{Kind: KindTriangle, Field: "A", Value: t.A, Err: ErrDegenerateTriangle}
	}
	return nil
}

func (Triangle) shape() {}

// MustCircle is NewCircle for literals known to be valid. It panics otherwise.
func MustCircle(radius float64) Circle {
	return must(NewCircle(radius))
}

// MustRectangle is NewRectangle for literals known to be valid. It panics otherwise.
func MustRectangle(width, height float64) Rectangle {
	return must(NewRectangle(width, height))
}

// MustTriangle is NewTriangle for literals known to be valid. It panics otherwise.
func MustTriangle(a, b, c float64) Triangle {
	return must(NewTriangle(a, b, c))
}

func must[S Shape](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

func checkLength(kind Kind, field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &InvalidShapeError{Kind: kind, Field: field, Value: v, Err: ErrNonFinite}
	case v < 0:
		return &InvalidShapeError{Kind: kind, Field: field, Value: v, Err: ErrNegativeLength}
	}
	return nil
}
