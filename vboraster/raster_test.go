package vboraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColorNear(t *testing.T, want color.Color, got color.RGBA) {
	t.Helper()
	w := color.RGBAModel.Convert(want).(color.RGBA)
	assert.InDelta(t, w.R, got.R, 2, "red")
	assert.InDelta(t, w.G, got.G, 2, "green")
	assert.InDelta(t, w.B, got.B, 2, "blue")
}

func triangleScene() *vbogroup.Scene {
	scene := vbogroup.NewScene()
	g := scene.AddGroup("tri")
	v := g.NewVertex()
	v.Color = vbogroup.MustParseColor("#1080F0")
	g.Append(v)        // (0, 0)
	g.AddVertex(8, 0)  // right
	g.AddVertex(0, -8) // below, since y points up
	g.SetDrawMode(vbogroup.Triangles)
	return scene
}

func TestRenderTriangle(t *testing.T) {
	// 200x200: 10 pixels per unit, origin at (100, 100)
	img, err := RenderToImage(triangleScene().Groups(), 200, 200, vbodraw.DefaultRenderer)
	require.NoError(t, err)

	// inside the triangle, away from the axes
	assertColorNear(t, vbogroup.MustParseColor("#1080F0"), img.RGBAAt(120, 120))
	// background
	assertColorNear(t, vbogroup.White, img.RGBAAt(5, 5))
	assertColorNear(t, vbogroup.White, img.RGBAAt(80, 120))
	// the cross-hair is painted over the background
	assert.NotEqual(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(100, 10))
	assert.NotEqual(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(10, 100))
}

func TestRenderStrokes(t *testing.T) {
	scene := vbogroup.NewScene()
	g := scene.AddGroup("strip")
	v := g.NewVertex()
	v.X, v.Y, v.Color = -5, 5, vbogroup.Red
	g.Append(v)
	g.AddVertex(5, 5)
	g.SetDrawMode(vbogroup.LineStrip)

	s := NewSurface(200, 200, Options{})
	require.NoError(t, vbodraw.NewView(scene, s, vbodraw.DefaultRenderer).Redraw())
	// the line goes through y = 50 with a width of 5 pixels
	assertColorNear(t, vbogroup.Red, s.Image().RGBAAt(70, 50))
	assertColorNear(t, vbogroup.White, s.Image().RGBAAt(70, 60))
	// butt caps: nothing before the first vertex
	assertColorNear(t, vbogroup.White, s.Image().RGBAAt(45, 50))
}

func TestRenderPoints(t *testing.T) {
	scene := vbogroup.NewScene()
	g := scene.AddGroup("pts")
	v := g.NewVertex()
	v.X, v.Y, v.Color = 2, 2, vbogroup.MustParseColor("#00FF00")
	g.Append(v)

	// 400x400: 20 pixels per unit, squares of 10 pixels
	img, err := RenderToImage(scene.Groups(), 400, 400, vbodraw.DefaultRenderer)
	require.NoError(t, err)
	assertColorNear(t, vbogroup.MustParseColor("#00FF00"), img.RGBAAt(240, 160))
	assertColorNear(t, vbogroup.White, img.RGBAAt(250, 160))
}

func TestResizeAndBackground(t *testing.T) {
	s := NewSurface(10, 10, Options{Background: vbogroup.Black})
	s.Resize(30, 20)
	w, h := s.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)
	s.Clear()
	assertColorNear(t, vbogroup.Black, s.Image().RGBAAt(29, 19))

	// degenerate inputs are ignored
	s.FillPolygon([]vbodraw.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, vbogroup.Red)
	s.ClosePath()
	s.LineTo(vbodraw.Point{X: 3, Y: 3})
	s.Stroke(vbogroup.Red, 1)
	assertColorNear(t, vbogroup.Black, s.Image().RGBAAt(1, 1))
}

func TestInvalidGroupStillRendersOthers(t *testing.T) {
	scene := triangleScene()
	bad := scene.AddGroup("bad")
	bad.SetDrawMode(vbogroup.DrawMode(12))
	img, err := RenderToImage(scene.Groups(), 200, 200, vbodraw.DefaultRenderer)
	assert.Error(t, err)
	assertColorNear(t, vbogroup.MustParseColor("#1080F0"), img.RGBAAt(120, 120))
}

func TestSavePNG(t *testing.T) {
	s := NewSurface(120, 80, Options{})
	require.NoError(t, vbodraw.Render(vbogroup.NewDemoScene().Groups(), s))

	filePath := filepath.Join(t.TempDir(), "demo.png")
	require.NoError(t, s.SavePNG(filePath))

	b, err := os.ReadFile(filePath)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), decoded.Bounds())

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	assert.Equal(t, b, buf.Bytes())

	assert.Error(t, s.SavePNG(filepath.Join(t.TempDir(), "missing", "demo.png")))
}
