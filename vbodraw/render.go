// Given a list of VBOs, implements how to draw them
// on a 2D surface, mimicking the primitive assembly stage
// of a graphics pipeline.
// This requires a Surface implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package vbodraw

import (
	"image/color"

	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNilGroup is reported for a nil entry in the rendered groups.
var ErrNilGroup = errors.New("nil group")

// Renderer draws groups of vertices. It holds no state between calls:
// each Render clears the surface and redraws everything.
type Renderer struct {
	Span      float64     // model units across the surface width (DefaultSpan if 0)
	AxisColor color.Color // color of the reference cross-hair (black if nil)
	AxisWidth float64     // width of the reference cross-hair (1 if 0)
}

// DefaultRenderer uses a span of 20 units and a thin black cross-hair.
var DefaultRenderer = Renderer{Span: DefaultSpan, AxisColor: vbogroup.Black, AxisWidth: 1}

// Stats reports what was drawn by Render.
type Stats struct {
	// Primitives holds, for each group, the number of primitives drawn,
	// or -1 if the group was skipped.
	Primitives []int
}

// Total returns the number of primitives drawn.
func (st Stats) Total() int {
	out := 0
	for _, n := range st.Primitives {
		if n > 0 {
			out += n
		}
	}
	return out
}

// Render uses DefaultRenderer to draw `groups` on `s`.
func Render(groups []*vbogroup.Group, s Surface) error {
	_, err := DefaultRenderer.Render(groups, s)
	return err
}

// Render clears `s`, draws the cross-hair and then every group, in order.
// A nil group or a group with an invalid draw mode is not drawn: its error is collected
// and the other groups are still rendered. The returned error combines
// the errors of all the skipped groups.
func (r Renderer) Render(groups []*vbogroup.Group, s Surface) (Stats, error) {
	w, h := s.Size()
	tr := NewTransform(w, h, r.Span)

	s.Clear()
	r.drawAxes(s, w, h)

	ps := pass{s: s, tr: tr, lineWidth: tr.Scale() / 2}
	stats := Stats{Primitives: make([]int, len(groups))}
	var errs error
	for i, g := range groups {
		if g == nil {
			err := errors.Wrapf(ErrNilGroup, "group %d", i)
			logger.Warn("skipping group", zap.Int("index", i), zap.Error(err))
			errs = multierr.Append(errs, err)
			stats.Primitives[i] = -1
			continue
		}
		prims, err := Assemble(g.Mode(), g.Len())
		if err != nil {
			err = errors.Wrapf(err, "group %d (%s)", i, g.Name)
			logger.Warn("skipping group", zap.Int("index", i), zap.String("name", g.Name), zap.Error(err))
			errs = multierr.Append(errs, err)
			stats.Primitives[i] = -1
			continue
		}
		ps.drawGroup(g, prims)
		stats.Primitives[i] = len(prims)
		logger.Debug("group drawn", zap.Int("index", i), zap.String("name", g.Name),
			zap.Stringer("mode", g.Mode()), zap.Int("vertices", g.Len()), zap.Int("primitives", len(prims)))
	}
	return stats, errs
}

// drawAxes strokes the two lines through the center of the surface.
func (r Renderer) drawAxes(s Surface, w, h int) {
	axisColor, axisWidth := r.AxisColor, r.AxisWidth
	if axisColor == nil {
		axisColor = vbogroup.Black
	}
	if axisWidth <= 0 {
		axisWidth = 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	s.BeginPath()
	s.MoveTo(Point{cx, 0})
	s.LineTo(Point{cx, float64(h)})
	s.MoveTo(Point{0, cy})
	s.LineTo(Point{float64(w), cy})
	s.Stroke(axisColor, axisWidth)
}

// pass holds the settings shared by all the groups of one Render call.
type pass struct {
	s         Surface
	tr        Transform
	lineWidth float64
}

func (p pass) position(g *vbogroup.Group, i int) Point {
	v := g.At(i)
	return p.tr.Apply(v.X, v.Y)
}

func (p pass) drawGroup(g *vbogroup.Group, prims []Primitive) {
	if len(prims) == 0 {
		return
	}
	switch prims[0].Kind {
	case PointKind:
		for _, prim := range prims {
			p.drawPoint(g, prim)
		}
	case SegmentKind:
		p.drawSegments(g, prims)
	case TriangleKind:
		for _, prim := range prims {
			c := g.At(prim.ColorIndex()).Color
			a, b, d := p.position(g, prim.Indices[0]), p.position(g, prim.Indices[1]), p.position(g, prim.Indices[2])
			p.s.FillPolygon([]Point{a, b, d}, c)
		}
	}
}

// drawPoint fills a square of side lineWidth, centered on the vertex.
func (p pass) drawPoint(g *vbogroup.Group, prim Primitive) {
	i := prim.Indices[0]
	c := g.At(i).Color
	center := p.position(g, i)
	half := p.lineWidth / 2
	p.s.FillPolygon([]Point{
		{center.X - half, center.Y - half},
		{center.X + half, center.Y - half},
		{center.X + half, center.Y + half},
		{center.X - half, center.Y + half},
	}, c)
}

// drawSegments strokes the segments, joining into one path the
// consecutive segments which share an end point and a color.
// A strip of uniform color is thus drawn as a single connected path,
// while Lines always produce one path per segment.
func (p pass) drawSegments(g *vbogroup.Group, prims []Primitive) {
	var (
		open         bool
		start, last  int // vertex indices of the current path
		currentColor vbogroup.Color
	)
	flush := func() {
		if open {
			p.s.Stroke(currentColor, p.lineWidth)
			open = false
		}
	}
	for _, prim := range prims {
		from, to := prim.Indices[0], prim.Indices[1]
		c := g.At(prim.ColorIndex()).Color
		if !open || c != currentColor || from != last {
			flush()
			p.s.BeginPath()
			p.s.MoveTo(p.position(g, from))
			start, currentColor, open = from, c, true
		}
		if to == start {
			p.s.ClosePath()
		} else {
			p.s.LineTo(p.position(g, to))
		}
		last = to
	}
	flush()
}
