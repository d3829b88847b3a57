package vbodraw

import (
	"github.com/srwiley/rasterx"
)

// DefaultSpan is the number of model units spanning the surface width.
const DefaultSpan = 20

// Transform maps model space (origin at the center, y up)
// to surface space (origin at the top left, y down).
type Transform struct {
	m             rasterx.Matrix2D
	scale         float64
	width, height float64
}

// NewTransform returns the transform for a `width` x `height` surface,
// where `span` model units fill the width.
// A non positive span is replaced by DefaultSpan.
func NewTransform(width, height int, span float64) Transform {
	if span <= 0 {
		span = DefaultSpan
	}
	w, h := float64(width), float64(height)
	scale := w / span
	return Transform{
		m:     rasterx.Identity.Translate(w/2, h/2).Scale(scale, -scale),
		scale: scale,
		width: w, height: h,
	}
}

// Apply converts a model space position.
func (t Transform) Apply(x, y float64) Point {
	sx, sy := t.m.Transform(x, y)
	return Point{sx, sy}
}

// Scale returns the number of pixels per model unit.
func (t Transform) Scale() float64 { return t.scale }

// Center returns the image of the model origin.
func (t Transform) Center() Point { return Point{t.width / 2, t.height / 2} }
