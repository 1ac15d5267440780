package shape

import (
	"fmt"
	"strings"
)

// Kind names a Shape variant. The zero value is not a valid Kind.
type Kind int

const (
	KindCircle Kind = iota + 1
	KindRectangle
	KindTriangle
)

// Textual forms used by String, ParseKind and the text codecs.
const (
	KindCircleStr    = "circle"
	KindRectangleStr = "rectangle"
	KindTriangleStr  = "triangle"
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return KindCircleStr
	case KindRectangle:
		return KindRectangleStr
	case KindTriangle:
		return KindTriangleStr
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k >= KindCircle && k <= KindTriangle
}

// ParseKind accepts the textual forms case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case KindCircleStr:
		return KindCircle, nil
	case KindRectangleStr:
		return KindRectangle, nil
	case KindTriangleStr:
		return KindTriangle, nil
	default:
		return 0, fmt.Errorf("shape: invalid Kind value: %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("shape: cannot marshal invalid Kind value: %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(data []byte) error {
	parsed, err := ParseKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
