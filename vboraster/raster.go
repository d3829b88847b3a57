// Implements a raster backend to render VBOs,
// by wrapping rasterx.
package vboraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ vbodraw.Surface = (*Surface)(nil) // assert interface conformance

// miter limit of the HTML canvas
const miterLimit = 10

// Options parametrize a Surface.
type Options struct {
	Background color.Color // white if nil
}

// subpath is a polyline of the current path
type subpath struct {
	points []fixed.Point26_6
	closed bool
}

// Surface paints into an RGBA image.
// The current path is stored until Stroke is called, since
// rasterx needs the stroke width before receiving the points.
type Surface struct {
	img        *image.RGBA
	background color.Color

	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	path []subpath
}

// NewSurface returns a surface painting into a new
// `width` x `height` image.
func NewSurface(width, height int, opts Options) *Surface {
	s := &Surface{background: opts.Background}
	if s.background == nil {
		s.background = vbogroup.White
	}
	s.Resize(width, height)
	return s
}

// Resize replaces the image by a blank one of the given size.
// The new size is used by the next redraw.
func (s *Surface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, s.img, s.img.Bounds())
	s.dasher = rasterx.NewDasher(width, height, scanner)
	s.filler = rasterx.NewFiller(width, height, scanner)
	s.path = s.path[:0]
}

// Image returns the image painted so far. It is reallocated by Resize.
func (s *Surface) Image() *image.RGBA { return s.img }

func toFixed(p vbodraw.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	s.path = s.path[:0]
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) MoveTo(p vbodraw.Point) {
	s.path = append(s.path, subpath{points: []fixed.Point26_6{toFixed(p)}})
}

func (s *Surface) LineTo(p vbodraw.Point) {
	if len(s.path) == 0 { // behaves like MoveTo
		s.MoveTo(p)
		return
	}
	last := &s.path[len(s.path)-1]
	last.points = append(last.points, toFixed(p))
}

func (s *Surface) ClosePath() {
	if len(s.path) == 0 {
		return
	}
	last := &s.path[len(s.path)-1]
	last.closed = true
	// following LineTo start from the same point, in a new sub path
	s.path = append(s.path, subpath{points: []fixed.Point26_6{last.points[0]}})
}

func (s *Surface) Stroke(c color.Color, width float64) {
	s.dasher.Clear()
	s.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	for _, sp := range s.path {
		if len(sp.points) < 2 {
			continue
		}
		s.dasher.Start(sp.points[0])
		for _, p := range sp.points[1:] {
			s.dasher.Line(p)
		}
		s.dasher.Stop(sp.closed)
	}
	s.dasher.SetColor(c)
	s.dasher.Draw()
}

func (s *Surface) FillPolygon(points []vbodraw.Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	s.filler.Clear()
	s.filler.SetWinding(true)
	s.filler.Start(toFixed(points[0]))
	for _, p := range points[1:] {
		s.filler.Line(toFixed(p))
	}
	s.filler.Stop(true)
	s.filler.SetColor(c)
	s.filler.Draw()
}

// EncodePNG writes the current image to `w`.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current image into the file `filePath`.
func (s *Surface) SavePNG(filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err = s.EncodePNG(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", filePath)
	}
	return f.Close()
}

// RenderToImage uses a ScannerGV instance to render the
// groups into a new image and returns it.
// As for vbodraw.Renderer.Render, a non nil error does not
// mean the image is empty: only the invalid groups are missing.
func RenderToImage(groups []*vbogroup.Group, width, height int, r vbodraw.Renderer) (*image.RGBA, error) {
	s := NewSurface(width, height, Options{})
	_, err := r.Render(groups, s)
	return s.Image(), err
}
