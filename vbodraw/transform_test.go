package vbodraw_test

import (
	"testing"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	tr := vbodraw.NewTransform(400, 300, 20)
	assert.Equal(t, 20., tr.Scale())
	assert.Equal(t, vbodraw.Point{X: 200, Y: 150}, tr.Center())
	assert.Equal(t, tr.Center(), tr.Apply(0, 0))
	assert.Equal(t, vbodraw.Point{X: 220, Y: 130}, tr.Apply(1, 1), "y axis is flipped")
	assert.Equal(t, vbodraw.Point{X: 0, Y: 150}, tr.Apply(-10, 0), "span covers the width")

	def := vbodraw.NewTransform(400, 300, 0)
	assert.Equal(t, tr, def)
}
