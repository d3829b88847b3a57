// Implements a PDF backend to render VBOs,
// by wrapping github.com/jung-kurt/gofpdf.
// Each redraw starts a new page, so that successive
// states of a scene may be collected in one document.
package vbopdf

import (
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

var _ vbodraw.Surface = (*Surface)(nil) // assert interface conformance

// pending path, written when stroked
type subpath struct {
	points []vbodraw.Point
	closed bool
}

// Surface writes to a gofpdf document, using points as unit,
// with the origin at the top left corner of the page.
type Surface struct {
	pdf        *gofpdf.Fpdf
	background color.Color

	path []subpath
}

// NewSurface returns a surface writing pages of `width` x `height` points
// into a new document.
func NewSurface(width, height int) *Surface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return NewRenderer(pdf)
}

// NewRenderer return a surface which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Surface {
	return &Surface{pdf: pdf, background: vbogroup.White}
}

// PDF returns the underlying document.
func (s *Surface) PDF() *gofpdf.Fpdf { return s.pdf }

func toRGB(c color.Color) (r, g, b int) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B)
}

func (s *Surface) Size() (int, int) {
	w, h := s.pdf.GetPageSize()
	return int(math.Round(w)), int(math.Round(h))
}

// Clear starts a new page, painted with the background color.
func (s *Surface) Clear() {
	s.pdf.AddPage()
	s.pdf.SetLineCapStyle("butt")
	s.pdf.SetLineJoinStyle("miter")
	w, h := s.pdf.GetPageSize()
	s.pdf.SetFillColor(toRGB(s.background))
	s.pdf.Rect(0, 0, w, h, "F")
	s.path = s.path[:0]
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) MoveTo(p vbodraw.Point) {
	s.path = append(s.path, subpath{points: []vbodraw.Point{p}})
}

func (s *Surface) LineTo(p vbodraw.Point) {
	if len(s.path) == 0 {
		s.MoveTo(p)
		return
	}
	last := &s.path[len(s.path)-1]
	last.points = append(last.points, p)
}

func (s *Surface) ClosePath() {
	if len(s.path) == 0 {
		return
	}
	last := &s.path[len(s.path)-1]
	last.closed = true
	s.path = append(s.path, subpath{points: []vbodraw.Point{last.points[0]}})
}

// Stroke paints the pending path. The color and width are
// set before the path is written: graphics state operators
// are not allowed inside a PDF path object.
func (s *Surface) Stroke(c color.Color, width float64) {
	drawable := false
	for _, sp := range s.path {
		if len(sp.points) >= 2 {
			drawable = true
			break
		}
	}
	if !drawable {
		return
	}
	s.pdf.SetDrawColor(toRGB(c))
	s.pdf.SetLineWidth(width)
	for _, sp := range s.path {
		if len(sp.points) < 2 {
			continue
		}
		s.pdf.MoveTo(sp.points[0].X, sp.points[0].Y)
		for _, p := range sp.points[1:] {
			s.pdf.LineTo(p.X, p.Y)
		}
		if sp.closed {
			s.pdf.ClosePath()
		}
	}
	s.pdf.DrawPath("D")
}

func (s *Surface) FillPolygon(points []vbodraw.Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	pts := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	s.pdf.SetFillColor(toRGB(c))
	s.pdf.Polygon(pts, "F")
}

// Output writes the document to `w`. The surface must not be used afterwards.
func (s *Surface) Output(w io.Writer) error {
	return errors.Wrap(s.pdf.Output(w), "writing pdf")
}

// OutputFileAndClose writes the document into the file `fileName`.
// The surface must not be used afterwards.
func (s *Surface) OutputFileAndClose(fileName string) error {
	return errors.Wrapf(s.pdf.OutputFileAndClose(fileName), "writing %s", fileName)
}

// RenderToPDF renders the groups on one page of a new document
// and writes it to `w`.
func RenderToPDF(groups []*vbogroup.Group, width, height int, r vbodraw.Renderer, w io.Writer) error {
	s := NewSurface(width, height)
	_, renderErr := r.Render(groups, s)
	if err := s.Output(w); err != nil {
		return err
	}
	return renderErr
}
