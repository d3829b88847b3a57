package vbogroup

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownDrawMode is returned for a draw mode outside of the seven
// supported primitive assembly modes.
var ErrUnknownDrawMode = errors.New("unknown draw mode")

// DrawMode selects how the flat vertex list of a Group
// is assembled into primitives.
type DrawMode uint8

// The seven modes mirror the GL_POINTS .. GL_TRIANGLE_FAN enumeration.
const (
	Points DrawMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// DrawModes lists the valid modes, in display order.
var DrawModes = [...]DrawMode{Points, Lines, LineStrip, LineLoop, Triangles, TriangleStrip, TriangleFan}

var modeNames = [...]string{
	Points:        "Points",
	Lines:         "Lines",
	LineStrip:     "Line Strip",
	LineLoop:      "Line Loop",
	Triangles:     "Triangles",
	TriangleStrip: "Triangle Strip",
	TriangleFan:   "Triangle Fan",
}

// Valid reports whether m is one of the seven supported modes.
func (m DrawMode) Valid() bool { return int(m) < len(modeNames) }

func (m DrawMode) String() string {
	if !m.Valid() {
		return "<unknown DrawMode>"
	}
	return modeNames[m]
}

// ParseDrawMode reads a mode from its display name, such as "Line Strip".
// Case and surrounding spaces are ignored.
func ParseDrawMode(s string) (DrawMode, error) {
	s = strings.TrimSpace(s)
	for i, name := range modeNames {
		if strings.EqualFold(name, s) {
			return DrawMode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDrawMode, "%q", s)
}

func (m DrawMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknownDrawMode, "value %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *DrawMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDrawMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
