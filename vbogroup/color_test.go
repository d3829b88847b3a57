package vbogroup

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorRoundTrip(t *testing.T) {
	for _, input := range []string{"#A1B2C3", "#a1b2c3", "#A1b2C3"} {
		c, err := ParseColor(input)
		require.NoError(t, err)
		assert.Equal(t, "#A1B2C3", c.String())
		assert.Equal(t, Color{0xa1, 0xb2, 0xc3}, c)
	}
	assert.Equal(t, "#000000", Black.String())
	assert.Equal(t, "#FF0000", Red.String())
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "A1B2C3", "#A1B2C", "#A1B2C3D", "#G1B2C3", "red", "#+1B2C3"} {
		_, err := ParseColor(input)
		assert.True(t, errors.Is(err, ErrInvalidColor), input)
	}
	assert.Panics(t, func() { MustParseColor("nope") })
}

func TestColorIsOpaque(t *testing.T) {
	c := MustParseColor("#FF8000")
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, got)
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#0a0B0c")))
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0A0B0C", string(b))
	assert.Error(t, c.UnmarshalText([]byte("blue")))
}

func TestDrawModeNames(t *testing.T) {
	for _, m := range DrawModes {
		assert.True(t, m.Valid())
		parsed, err := ParseDrawMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	m, err := ParseDrawMode("  triangle fan ")
	require.NoError(t, err)
	assert.Equal(t, TriangleFan, m)

	_, err = ParseDrawMode("Quads")
	assert.True(t, errors.Is(err, ErrUnknownDrawMode))

	bad := DrawMode(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "<unknown DrawMode>", bad.String())
	_, err = bad.MarshalText()
	assert.Error(t, err)
}

func TestDemoScene(t *testing.T) {
	s := NewDemoScene()
	require.Equal(t, 1, s.Len())
	g := s.Group(0)
	assert.Equal(t, "VBO 1", g.Name)
	assert.Equal(t, Points, g.Mode())
	require.Equal(t, 2, g.Len())
	assert.Equal(t, Red, g.At(0).Color)
	assert.Equal(t, Red, g.At(1).Color)
}

func TestSceneGroups(t *testing.T) {
	s := NewScene()
	a := s.AddGroup("")
	b := s.AddGroup("second")
	assert.Equal(t, DefaultGroupName, a.Name)

	assert.False(t, s.MoveGroupUp(0))
	assert.False(t, s.MoveGroupDown(1))
	assert.True(t, s.MoveGroupDown(0))
	assert.Equal(t, []*Group{b, a}, s.Groups())
	assert.True(t, s.MoveGroupUp(1))
	assert.Equal(t, []*Group{a, b}, s.Groups())

	assert.False(t, s.RemoveGroup(2))
	assert.True(t, s.RemoveGroup(0))
	assert.Equal(t, []*Group{b}, s.Groups())
	s.Push(a)
	assert.Equal(t, 2, s.Len())
}

func TestRemoveGroupReleasesTail(t *testing.T) {
	s := NewScene()
	a := s.AddGroup("a")
	b := s.AddGroup("b")
	c := s.AddGroup("c")
	require.True(t, s.RemoveGroup(1))
	assert.Equal(t, []*Group{a, c}, s.Groups())
	backing := s.groups[:3]
	assert.Nil(t, backing[2])
	assert.NotContains(t, backing, b)
}
