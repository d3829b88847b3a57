package vbodraw

import (
	"image/color"
)

// Point is a position in surface space (pixels for rasters),
// with y pointing down.
type Point struct{ X, Y float64 }

// Surface knows how to do the actual draw operations
// but doesn't need any VBO knowledge.
// In particular, the coordinate transform is already applied to the points
// before sending them to the Surface.
type Surface interface {
	// Size returns the current dimensions of the surface.
	// It is queried at each redraw, so that a surface may be resized between two redraws.
	Size() (width, height int)

	// Clear erases the whole surface to its background.
	Clear()

	// BeginPath discards the current path and starts an empty one.
	BeginPath()

	// MoveTo starts a new sub path at `p`.
	MoveTo(p Point)

	// LineTo adds a line from the current point to `p`.
	LineTo(p Point)

	// ClosePath adds a line back to the start of the current sub path.
	ClosePath()

	// Stroke draws the outline of the current path.
	Stroke(c color.Color, width float64)

	// FillPolygon fills the closed polygon `points`, independently of the current path.
	FillPolygon(points []Point, c color.Color)
}
