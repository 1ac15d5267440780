package shape

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the tagged serialized form of a Shape. Kind selects the
// variant and only that variant's fields may be set, for example
// {kind: triangle, a: 3, b: 4, c: 5}.
type Document struct {
	Kind   Kind    `json:"kind" yaml:"kind"`
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	A      float64 `json:"a,omitempty" yaml:"a,omitempty"`
	B      float64 `json:"b,omitempty" yaml:"b,omitempty"`
	C      float64 `json:"c,omitempty" yaml:"c,omitempty"`
}

func DocumentOf(s Shape) Document {
	return Match(s,
		func(c Circle) Document {
			return Document{Kind: KindCircle, Radius: c.Radius}
		},
		func(r Rectangle) Document {
			return Document{Kind: KindRectangle, Width: r.Width, Height: r.Height}
		},
		func(t Triangle) Document {
			return Document{Kind: KindTriangle, A: t.A, B: t.B, C: t.C}
		},
	)
}

// Shape builds the variant named by Kind through its constructor.
func (d Document) Shape() (Shape, error) {
	switch d.Kind {
	case KindCircle:
		if d.Width != 0 || d.Height != 0 || d.A != 0 || d.B != 0 || d.C != 0 {
			return nil, d.strayFields()
		}
		return built(NewCircle(d.Radius))
	case KindRectangle:
		if d.Radius != 0 || d.A != 0 || d.B != 0 || d.C != 0 {
			return nil, d.strayFields()
		}
		return built(NewRectangle(d.Width, d.Height))
	case KindTriangle:
		if d.Radius != 0 || d.Width != 0 || d.Height != 0 {
			return nil, d.strayFields()
		}
		return built(NewTriangle(d.A, d.B, d.C))
	default:
		return nil, fmt.Errorf("shape: document has invalid kind %v", d.Kind)
	}
}

func built[S Shape](s S, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d Document) strayFields() error {
	return fmt.Errorf("shape: %s document carries fields of another kind", d.Kind)
}

func EncodeYAML(shapes []Shape) ([]byte, error) {
	return yaml.Marshal(documentsOf(shapes))
}

// DecodeYAML reads a YAML sequence of documents. Unknown keys are rejected.
func DecodeYAML(data []byte) ([]Shape, error) {
	var docs []Document
	if err := yamlUnmarshalStrict(data, &docs); err != nil {
		return nil, fmt.Errorf("shape: decode yaml: %w", err)
	}
	return shapesOf(docs)
}

func EncodeJSON(shapes []Shape) ([]byte, error) {
	return json.Marshal(documentsOf(shapes))
}

// DecodeJSON reads a JSON array of documents. Unknown keys are rejected.
func DecodeJSON(data []byte) ([]Shape, error) {
	var docs []Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("shape: decode json: %w", err)
	}
	return shapesOf(docs)
}

func documentsOf(shapes []Shape) []Document {
	docs := make([]Document, len(shapes))
	for i, s := range shapes {
		docs[i] = DocumentOf(s)
	}
	return docs
}

func shapesOf(docs []Document) ([]Shape, error) {
	shapes := make([]Shape, 0, len(docs))
	for i, d := range docs {
		s, err := d.Shape()
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
