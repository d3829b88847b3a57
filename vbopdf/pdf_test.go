package vbopdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fanScene() *vbogroup.Scene {
	scene := vbogroup.NewScene()
	g := scene.AddGroup("fan")
	v := g.NewVertex()
	v.Color = vbogroup.Red
	g.Append(v)
	g.AddVertex(2, 0)
	g.AddVertex(2, 2)
	g.AddVertex(0, 2)
	g.SetDrawMode(vbogroup.TriangleFan)

	loop := scene.AddGroup("loop")
	loop.AddVertex(-1, -1)
	loop.AddVertex(-3, -1)
	loop.AddVertex(-3, -3)
	loop.SetColor(0, vbogroup.MustParseColor("#0000FF"))
	loop.SetDrawMode(vbogroup.LineLoop)
	return scene
}

func TestSize(t *testing.T) {
	s := NewSurface(300, 200)
	w, h := s.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestRenderPages(t *testing.T) {
	scene := fanScene()
	s := NewSurface(400, 400)
	s.PDF().SetCompression(false)
	view := vbodraw.NewView(scene, s, vbodraw.DefaultRenderer)

	require.NoError(t, view.Redraw())
	scene.Group(0).SetDrawMode(vbogroup.TriangleStrip)
	require.NoError(t, view.Redraw())
	assert.Equal(t, 2, s.PDF().PageCount())

	var buf bytes.Buffer
	require.NoError(t, s.Output(&buf))
	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), " rg")
	assert.Contains(t, string(out), " RG")
}

func TestRenderToPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderToPDF(vbogroup.NewDemoScene().Groups(), 200, 200, vbodraw.DefaultRenderer, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	// invalid groups are reported, but the document is still written
	scene := fanScene()
	scene.Group(1).SetDrawMode(vbogroup.DrawMode(77))
	buf.Reset()
	err := RenderToPDF(scene.Groups(), 200, 200, vbodraw.DefaultRenderer, &buf)
	assert.Error(t, err)
	assert.NotZero(t, buf.Len())
}

func TestOutputFile(t *testing.T) {
	s := NewSurface(100, 100)
	require.NoError(t, vbodraw.Render(fanScene().Groups(), s))
	// degenerate inputs are ignored
	s.BeginPath()
	s.ClosePath()
	s.Stroke(vbogroup.Black, 1)
	s.FillPolygon([]vbodraw.Point{{X: 0, Y: 0}}, vbogroup.Black)

	fileName := filepath.Join(t.TempDir(), "fan.pdf")
	require.NoError(t, s.OutputFileAndClose(fileName))
	info, err := os.Stat(fileName)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

var paintOps = map[string]bool{
	"S": true, "s": true, "f": true, "f*": true,
	"B": true, "B*": true, "b": true, "b*": true, "n": true,
}

// checkPathObjects scans an uncompressed content stream and returns
// the number of stroked paths. It fails if a graphics state operator
// appears inside a path object, or if a stroked path is not preceded
// by its color and width.
func checkPathObjects(t *testing.T, content string) int {
	t.Helper()
	var (
		inPath             bool
		hasColor, hasWidth bool // since the last painted path
		strokes            int
	)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		isColor := strings.HasSuffix(line, " G") || strings.HasSuffix(line, " RG") ||
			strings.HasSuffix(line, " g") || strings.HasSuffix(line, " rg")
		isWidth := strings.HasSuffix(line, " w")
		switch {
		case strings.HasSuffix(line, " m"):
			inPath = true
		case paintOps[line]:
			if !inPath {
				continue
			}
			if line == "S" {
				strokes++
				assert.True(t, hasColor, "stroke %d without color", strokes)
				assert.True(t, hasWidth, "stroke %d without width", strokes)
			}
			inPath, hasColor, hasWidth = false, false, false
		case isColor || isWidth:
			assert.False(t, inPath, "graphics state operator %q inside a path object", line)
			hasColor = hasColor || isColor
			hasWidth = hasWidth || isWidth
		}
	}
	return strokes
}

func TestStrokeStateBeforePath(t *testing.T) {
	scene := vbogroup.NewScene()
	g := scene.AddGroup("segment")
	g.SetDrawMode(vbogroup.Lines)
	g.AddVertex(0, 0)
	g.AddVertex(1, 0)
	fan := fanScene()
	scene.Push(fan.Group(1)) // loop: blue, black, black

	s := NewSurface(200, 200)
	s.PDF().SetCompression(false)
	require.NoError(t, vbodraw.Render(scene.Groups(), s))

	var buf bytes.Buffer
	require.NoError(t, s.Output(&buf))
	// cross-hair, segment, then one path per color change of the loop
	assert.Equal(t, 5, checkPathObjects(t, buf.String()))
}
