package vboscene

import (
	"io"

	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/pkg/errors"
)

// Read reads a scene from the given stream.
// Vertices without color inherit the color of their predecessor,
// as when they are added interactively; groups without mode are drawn as Points.
// errMode determines if unknown content is ignored, logged as a warning
// or reported as an error.
func Read(stream io.Reader, format Format, errMode ErrorMode) (*vbogroup.Scene, error) {
	var (
		doc document
		err error
	)
	switch format {
	case XML:
		doc, err = readXML(stream, errMode)
	case YAML:
		doc, err = readYAML(stream, errMode)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}
	if err != nil {
		return nil, err
	}
	return doc.build(errMode)
}

// Write serializes the scene. Vertex ids are not written:
// they are minted again when reading.
// A group with an invalid draw mode cannot be written.
func Write(w io.Writer, format Format, scene *vbogroup.Scene) error {
	doc, err := newDocument(scene)
	if err != nil {
		return err
	}
	switch format {
	case XML:
		return writeXML(w, doc)
	case YAML:
		return writeYAML(w, doc)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}
}
