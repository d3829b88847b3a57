package vbogroup

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidColor is returned when a color string is not of the form #RRGGBB.
var ErrInvalidColor = errors.New("invalid color, expected #RRGGBB")

// Color is an opaque RGB color.
// Its text form is the 7 characters #RRGGBB, written in upper case.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{0xff, 0xff, 0xff}
	Red   = Color{R: 0xff}
)

// ParseColor reads a color in the #RRGGBB format.
// Hex digits are case insensitive.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, errors.Wrapf(ErrInvalidColor, "got %q", s)
	}
	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(ErrInvalidColor, "got %q", s)
		}
		out[i] = uint8(v)
	}
	return Color{R: out[0], G: out[1], B: out[2]}, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
// It is intended for literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical #RRGGBB form.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
