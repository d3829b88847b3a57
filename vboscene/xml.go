package vboscene

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// xml output layout; the input is read token by token
// to apply the error mode on unknown content.
type (
	xmlScene struct {
		XMLName xml.Name   `xml:"scene"`
		Groups  []xmlGroup `xml:"group"`
	}
	xmlGroup struct {
		Name     string      `xml:"name,attr"`
		Mode     string      `xml:"mode,attr"`
		Vertices []xmlVertex `xml:"vertex"`
	}
	xmlVertex struct {
		X     float64 `xml:"x,attr"`
		Y     float64 `xml:"y,attr"`
		Color string  `xml:"color,attr"`
	}
)

func parseCoordinate(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidScene, "invalid %s coordinate %q", name, v)
	}
	return f, nil
}

func readGroupAttrs(se xml.StartElement, errMode ErrorMode) (groupDoc, error) {
	var gd groupDoc
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "name":
			gd.Name = attr.Value
		case "mode":
			gd.Mode = attr.Value
		default:
			if err := errMode.report("cannot process group attribute "+attr.Name.Local); err != nil {
				return gd, err
			}
		}
	}
	return gd, nil
}

func readVertexAttrs(se xml.StartElement, errMode ErrorMode) (vd vertexDoc, err error) {
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "x":
			vd.X, err = parseCoordinate("x", attr.Value)
		case "y":
			vd.Y, err = parseCoordinate("y", attr.Value)
		case "color":
			vd.Color = attr.Value
		default:
			err = errMode.report("cannot process vertex attribute " + attr.Name.Local)
		}
		if err != nil {
			return vd, err
		}
	}
	return vd, nil
}

// readXML reads the document from an XML stream.
func readXML(stream io.Reader, errMode ErrorMode) (document, error) {
	var (
		doc              document
		inScene, inGroup bool
		seenScene        bool
	)
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenScene {
					return doc, errors.Wrap(ErrInvalidScene, "missing scene element")
				}
				return doc, nil
			}
			return doc, errors.Wrap(err, "parsing xml")
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			switch {
			case se.Name.Local == "scene" && !seenScene:
				inScene, seenScene = true, true
			case se.Name.Local == "group" && inScene && !inGroup:
				gd, err := readGroupAttrs(se, errMode)
				if err != nil {
					return doc, err
				}
				doc.Groups = append(doc.Groups, gd)
				inGroup = true
			case se.Name.Local == "vertex" && inGroup:
				vd, err := readVertexAttrs(se, errMode)
				if err != nil {
					return doc, err
				}
				last := &doc.Groups[len(doc.Groups)-1]
				last.Vertices = append(last.Vertices, vd)
				if err = decoder.Skip(); err != nil {
					return doc, errors.Wrap(err, "parsing xml")
				}
			default:
				if err := errMode.report("cannot process element "+se.Name.Local, zap.Int64("offset", decoder.InputOffset())); err != nil {
					return doc, err
				}
				if err = decoder.Skip(); err != nil {
					return doc, errors.Wrap(err, "parsing xml")
				}
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "group":
				inGroup = false
			case "scene":
				inScene = false
			}
		}
	}
}

func writeXML(w io.Writer, doc document) error {
	out := xmlScene{Groups: make([]xmlGroup, len(doc.Groups))}
	for i, gd := range doc.Groups {
		xg := xmlGroup{Name: gd.Name, Mode: gd.Mode, Vertices: make([]xmlVertex, len(gd.Vertices))}
		for j, vd := range gd.Vertices {
			xg.Vertices[j] = xmlVertex(vd)
		}
		out.Groups[i] = xg
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(out); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
