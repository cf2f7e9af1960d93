package svg

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Decode reads a document made of the known element variants back into a
// tree. A <defs> found directly under <svg> is folded back into the
// definitions of that svg element, so decoding then serializing a document
// written by Serialize reproduces it.
func Decode(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, errors.New("decode: no root element")
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode")
		}
		if start, ok := token.(xml.StartElement); ok {
			return decodeElement(decoder, start)
		}
	}
}

// DecodeString is Decode over a string.
func DecodeString(s string) (*Element, error) {
	return Decode(strings.NewReader(s))
}

func decodeElement(decoder *xml.Decoder, start xml.StartElement) (*Element, error) {
	v, err := LookupVariant(start.Name.Local)
	if err != nil {
		return nil, err
	}
	e := New(v)
	for _, attr := range start.Attr {
		key := attr.Name.Local
		if attr.Name.Space == "xmlns" {
			key = "xmlns:" + key
		}
		e.SetAttr(key, attr.Value)
	}

	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, errors.Wrapf(err, "decoding <%s>", start.Name.Local)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			child, err := decodeElement(decoder, tok)
			if err != nil {
				return nil, err
			}
			if v == SvgVariant && child.variant == DefsVariant {
				for _, def := range child.children {
					e.AddDef(def)
				}
				continue
			}
			e.Append(child)

		case xml.CharData:
			text.Write(tok)

		case xml.EndElement:
			if s := text.String(); strings.TrimSpace(s) != "" {
				e.SetText(s)
			}
			return e, nil
		}
	}
}
