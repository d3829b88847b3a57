package vboscene

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// readYAML reads the document from a YAML stream.
// Unknown fields are only detected in StrictErrorMode.
func readYAML(stream io.Reader, errMode ErrorMode) (document, error) {
	var doc document
	dec := yaml.NewDecoder(stream)
	dec.KnownFields(errMode == StrictErrorMode)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return doc, errors.Wrap(ErrInvalidScene, "empty document")
		}
		return doc, errors.Wrapf(ErrInvalidScene, "parsing yaml: %s", err)
	}
	return doc, nil
}

func writeYAML(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
