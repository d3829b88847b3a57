// Provides reading and writing of scene documents,
// which describe a list of VBOs in XML or YAML:
//
//	<scene>
//		<group name="VBO 1" mode="Triangle Fan">
//			<vertex x="0" y="0" color="#FF0000"/>
//		</group>
//	</scene>
//
//	groups:
//	  - name: VBO 1
//	    mode: Triangle Fan
//	    vertices:
//	      - {x: 0, y: 0, color: "#FF0000"}
package vboscene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorMode determines how unsupported content is handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unknown elements and attributes,
	// and keeps unknown draw modes so that rendering reports them.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode behaves like IgnoreErrorMode, but logs a warning.
	WarnErrorMode
	// StrictErrorMode returns an error.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// Format is the encoding of a scene document.
type Format uint8

const (
	XML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	default:
		return "<unknown Format>"
	}
}

var (
	// ErrUnknownFormat is returned for unsupported file extensions.
	ErrUnknownFormat = errors.New("unknown scene format")
	// ErrInvalidScene is returned for malformed documents.
	ErrInvalidScene = errors.New("invalid scene document")
)

// FormatFromPath deduces the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return XML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "file %s", path)
	}
}

// unknownMode marks a group whose mode could not be parsed.
// It is kept as is so that rendering refuses the group.
const unknownMode = vbogroup.DrawMode(0xff)

var logger = zap.NewNop()

// SetLogger configures the logger used in WarnErrorMode.
// Pass nil to disable logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// document is the format independent content of a scene file.
type document struct {
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Name     string      `yaml:"name"`
	Mode     string      `yaml:"mode,omitempty"`
	Vertices []vertexDoc `yaml:"vertices"`
}

type vertexDoc struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color,omitempty"`
}

// report applies the error mode to an unsupported content
func (m ErrorMode) report(msg string, fields ...zap.Field) error {
	switch m {
	case StrictErrorMode:
		return errors.Wrap(ErrInvalidScene, msg)
	case WarnErrorMode:
		logger.Warn(msg, fields...)
	}
	return nil
}

// build converts the document into a scene.
func (doc document) build(errMode ErrorMode) (*vbogroup.Scene, error) {
	scene := vbogroup.NewScene()
	for i, gd := range doc.Groups {
		g := vbogroup.NewGroup(gd.Name)
		if gd.Mode != "" {
			mode, err := vbogroup.ParseDrawMode(gd.Mode)
			if err != nil {
				if err := errMode.report("unknown draw mode "+gd.Mode, zap.Int("group", i)); err != nil {
					return nil, err
				}
				mode = unknownMode
			}
			g.SetDrawMode(mode)
		}
		for j, vd := range gd.Vertices {
			v := g.NewVertex()
			v.X, v.Y = vd.X, vd.Y
			if vd.Color != "" {
				c, err := vbogroup.ParseColor(vd.Color)
				if err != nil {
					if err := errMode.report("invalid color "+vd.Color, zap.Int("group", i), zap.Int("vertex", j)); err != nil {
						return nil, err
					}
				} else {
					v.Color = c
				}
			}
			g.Append(v)
		}
		scene.Push(g)
	}
	return scene, nil
}

// newDocument converts a scene into its serialized form.
func newDocument(scene *vbogroup.Scene) (document, error) {
	doc := document{Groups: make([]groupDoc, scene.Len())}
	for i, g := range scene.Groups() {
		if !g.Mode().Valid() {
			return document{}, errors.Wrapf(vbogroup.ErrUnknownDrawMode, "group %d (%s)", i, g.Name)
		}
		gd := groupDoc{Name: g.Name, Mode: g.Mode().String(), Vertices: make([]vertexDoc, g.Len())}
		for j, v := range g.Vertices() {
			gd.Vertices[j] = vertexDoc{X: v.X, Y: v.Y, Color: v.Color.String()}
		}
		doc.Groups[i] = gd
	}
	return doc, nil
}

// ReadFile reads the scene from the named file, whose
// format is deduced from its extension.
func ReadFile(path string, errMode ErrorMode) (*vbogroup.Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scene, err := Read(f, format, errMode)
	return scene, errors.Wrapf(err, "reading %s", path)
}

// WriteFile writes the scene into the named file, whose
// format is deduced from its extension.
func WriteFile(path string, scene *vbogroup.Scene) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, format, scene); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
