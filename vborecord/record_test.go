package vborecord

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(10, 20)
	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)

	points := []vbodraw.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	r.Clear()
	r.BeginPath()
	r.MoveTo(vbodraw.Point{X: 1, Y: 1})
	r.LineTo(vbodraw.Point{X: 2, Y: 1.5})
	r.ClosePath()
	r.Stroke(color.NRGBA{R: 0xff, A: 0xff}, 2)
	r.FillPolygon(points, vbogroup.MustParseColor("#00ff00"))
	points[0].X = 100 // the record is not aliased

	assert.Equal(t, []Stroke{{Color: vbogroup.Red, Width: 2}}, r.Strokes())
	assert.Equal(t, []FillPolygon{{Points: []vbodraw.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, Color: vbogroup.Color{G: 0xff}}}, r.Fills())
	assert.Equal(t, `clear
begin
M1.000,1.000
L2.000,1.500
Z
stroke #FF0000 2.000
fill #00FF00 1.000,2.000 3.000,4.000 5.000,6.000`, r.String())

	r.Reset()
	assert.Empty(t, r.Ops)
	assert.Equal(t, "", r.String())
}
