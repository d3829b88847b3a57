// Implements a Surface which records the draw operations
// instead of painting them, so that renderings may be inspected
// or compared without a real backend.
package vborecord

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
)

var _ vbodraw.Surface = (*Recorder)(nil) // assert interface conformance

// Operation is one of the recorded surface calls.
type Operation interface {
	isOperation()
}

type Clear struct{}

type BeginPath struct{}

type MoveTo vbodraw.Point

type LineTo vbodraw.Point

type ClosePath struct{}

type Stroke struct {
	Color vbogroup.Color
	Width float64
}

type FillPolygon struct {
	Points []vbodraw.Point
	Color  vbogroup.Color
}

func (Clear) isOperation()       {}
func (BeginPath) isOperation()   {}
func (MoveTo) isOperation()      {}
func (LineTo) isOperation()      {}
func (ClosePath) isOperation()   {}
func (Stroke) isOperation()      {}
func (FillPolygon) isOperation() {}

// toColor converts any color to the opaque color used in the records.
func toColor(c color.Color) vbogroup.Color {
	if vc, ok := c.(vbogroup.Color); ok {
		return vc
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return vbogroup.Color{R: nc.R, G: nc.G, B: nc.B}
}

// Recorder stores every operation it receives.
// Clear does not discard the record, so that a whole redraw can be checked,
// use Reset for that.
type Recorder struct {
	Width, Height int
	Ops           []Operation
}

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Clear{}) }

func (r *Recorder) BeginPath() { r.Ops = append(r.Ops, BeginPath{}) }

func (r *Recorder) MoveTo(p vbodraw.Point) { r.Ops = append(r.Ops, MoveTo(p)) }

func (r *Recorder) LineTo(p vbodraw.Point) { r.Ops = append(r.Ops, LineTo(p)) }

func (r *Recorder) ClosePath() { r.Ops = append(r.Ops, ClosePath{}) }

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.Ops = append(r.Ops, Stroke{Color: toColor(c), Width: width})
}

func (r *Recorder) FillPolygon(points []vbodraw.Point, c color.Color) {
	r.Ops = append(r.Ops, FillPolygon{Points: append([]vbodraw.Point(nil), points...), Color: toColor(c)})
}

// Strokes returns the recorded Stroke operations.
func (r *Recorder) Strokes() []Stroke {
	var out []Stroke
	for _, op := range r.Ops {
		if s, ok := op.(Stroke); ok {
			out = append(out, s)
		}
	}
	return out
}

// Fills returns the recorded FillPolygon operations.
func (r *Recorder) Fills() []FillPolygon {
	var out []FillPolygon
	for _, op := range r.Ops {
		if f, ok := op.(FillPolygon); ok {
			out = append(out, f)
		}
	}
	return out
}

func formatPoint(p vbodraw.Point) string { return fmt.Sprintf("%4.3f,%4.3f", p.X, p.Y) }

// String returns a readable representation of the record,
// one operation per line, using SVG path letters for the path commands.
func (r *Recorder) String() string {
	chunks := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		switch op := op.(type) {
		case Clear:
			chunks[i] = "clear"
		case BeginPath:
			chunks[i] = "begin"
		case MoveTo:
			chunks[i] = "M" + formatPoint(vbodraw.Point(op))
		case LineTo:
			chunks[i] = "L" + formatPoint(vbodraw.Point(op))
		case ClosePath:
			chunks[i] = "Z"
		case Stroke:
			chunks[i] = fmt.Sprintf("stroke %s %4.3f", op.Color, op.Width)
		case FillPolygon:
			points := make([]string, len(op.Points))
			for j, p := range op.Points {
				points[j] = formatPoint(p)
			}
			chunks[i] = fmt.Sprintf("fill %s %s", op.Color, strings.Join(points, " "))
		}
	}
	return strings.Join(chunks, "\n")
}
