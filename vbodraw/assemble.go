package vbodraw

import (
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/pkg/errors"
)

// This file implements how a flat vertex list is grouped
// into primitives, for each draw mode.
// Only indices are computed here: positions and colors are
// looked up by the renderer.

// Kind is the type of a primitive.
type Kind uint8

const (
	PointKind Kind = iota + 1
	SegmentKind
	TriangleKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case SegmentKind:
		return "Segment"
	case TriangleKind:
		return "Triangle"
	default:
		return "<unknown Kind>"
	}
}

// Primitive references 1, 2 or 3 vertices of a group, by index.
type Primitive struct {
	Kind    Kind
	Indices [3]int // only the first Len() are used
}

// Len returns the number of vertices of the primitive.
func (p Primitive) Len() int { return int(p.Kind) }

// Vertices returns the used indices.
func (p Primitive) Vertices() []int { return p.Indices[:p.Len()] }

// ColorIndex returns the vertex whose color is used to draw the primitive:
// its lowest indexed vertex.
func (p Primitive) ColorIndex() int {
	lowest := p.Indices[0]
	for _, i := range p.Indices[1:p.Len()] {
		lowest = min(lowest, i)
	}
	return lowest
}

func point(i int) Primitive      { return Primitive{Kind: PointKind, Indices: [3]int{i}} }
func segment(i, j int) Primitive { return Primitive{Kind: SegmentKind, Indices: [3]int{i, j}} }
func triangle(i, j, k int) Primitive {
	return Primitive{Kind: TriangleKind, Indices: [3]int{i, j, k}}
}

// Count returns the number of primitives `mode` produces for n vertices,
// or -1 for an invalid mode.
func Count(mode vbogroup.DrawMode, n int) int {
	if n < 0 {
		n = 0
	}
	switch mode {
	case vbogroup.Points:
		return n
	case vbogroup.Lines:
		return n / 2
	case vbogroup.LineStrip:
		return max(n-1, 0)
	case vbogroup.LineLoop:
		if n < 2 {
			return 0
		}
		return n
	case vbogroup.Triangles:
		return n / 3
	case vbogroup.TriangleStrip, vbogroup.TriangleFan:
		return max(n-2, 0)
	default:
		return -1
	}
}

// Assemble groups n vertices into primitives according to `mode`.
// Incomplete trailing primitives are dropped, so that too few vertices
// simply yield no primitive. An invalid mode returns an error
// wrapping vbogroup.ErrUnknownDrawMode.
func Assemble(mode vbogroup.DrawMode, n int) ([]Primitive, error) {
	count := Count(mode, n)
	if count < 0 {
		return nil, errors.Wrapf(vbogroup.ErrUnknownDrawMode, "value %d", uint8(mode))
	}
	out := make([]Primitive, 0, count)
	switch mode {
	case vbogroup.Points:
		for i := 0; i < n; i++ {
			out = append(out, point(i))
		}
	case vbogroup.Lines:
		for i := 0; i+1 < n; i += 2 {
			out = append(out, segment(i, i+1))
		}
	case vbogroup.LineStrip, vbogroup.LineLoop:
		for i := 0; i+1 < n; i++ {
			out = append(out, segment(i, i+1))
		}
		if mode == vbogroup.LineLoop && n >= 2 {
			out = append(out, segment(n-1, 0)) // closing edge
		}
	case vbogroup.Triangles:
		for i := 0; i+2 < n; i += 3 {
			out = append(out, triangle(i, i+1, i+2))
		}
	case vbogroup.TriangleStrip:
		for i := 0; i+2 < n; i++ {
			out = append(out, triangle(i, i+1, i+2))
		}
	case vbogroup.TriangleFan:
		// vertex 0 is the pivot of every triangle
		for i := 1; i+1 < n; i++ {
			out = append(out, triangle(0, i, i+1))
		}
	}
	return out, nil
}
