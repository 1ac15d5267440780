package shape

import "fmt"

// Match dispatches on the concrete variant of s. Every variant needs a
// callback, so adding a variant breaks every call site at compile time.
func Match[R any](
	s Shape,
	onCircle func(Circle) R,
	onRectangle func(Rectangle) R,
	onTriangle func(Triangle) R,
) R {
	switch v := s.(type) {
	case Circle:
		return onCircle(v)
	case Rectangle:
		return onRectangle(v)
	case Triangle:
		return onTriangle(v)
	}
	panic(fmt.Sprintf("exhaustive match fallback, shape type: %T", s))
}

// Measurement is a flattened snapshot of a shape's derived quantities.
type Measurement struct {
	Kind        Kind    `json:"kind" yaml:"kind"`
	Description string  `json:"description" yaml:"description"`
	Area        float64 `json:"area" yaml:"area"`
	Perimeter   float64 `json:"perimeter" yaml:"perimeter"`
}

func Measure(s Shape) Measurement {
	return Measurement{
		Kind:        s.Kind(),
		Description: s.Description(),
		Area:        s.Area(),
		Perimeter:   s.Perimeter(),
	}
}

// String formats as "{Description} -> Area: %.2f, Perimeter: %.2f".
func (m Measurement) String() string {
	return fmt.Sprintf("%s -> Area: %.2f, Perimeter: %.2f", m.Description, m.Area, m.Perimeter)
}
