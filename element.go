package svg

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/vodvud/shift-svg/logger"
)

// Attr is a single key="value" pair. Attributes keep the order in which
// they were first set.
type Attr struct {
	Key   string
	Value string
}

// Element is a node of a markup document. It owns its children; an element
// must not be appended to more than one parent.
//
// Definitions registered with AddDef stay on the element that registered
// them. Only an Svg element, when serialized, gathers the definitions of its
// whole subtree and writes them once inside a leading <defs> child.
type Element struct {
	variant  Variant
	attrs    []Attr
	children []*Element
	text     *string
	defs     []*Element
}

// New creates an element of the given variant with attrs set in order.
func New(v Variant, attrs ...Attr) *Element {
	e := &Element{variant: v}
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Value)
	}
	return e
}

// NewElement creates an empty element for a tag name such as "path" or "g".
func NewElement(tag string, attrs ...Attr) (*Element, error) {
	v, err := LookupVariant(tag)
	if err != nil {
		return nil, err
	}
	return New(v, attrs...), nil
}

// Convenience constructors for each variant.
func NewSvg(attrs ...Attr) *Element { return New(SvgVariant, attrs...) }
func NewGroup(attrs ...Attr) *Element { return New(GroupVariant, attrs...) }
func NewDefs(attrs ...Attr) *Element { return New(DefsVariant, attrs...) }
func NewPath(attrs ...Attr) *Element { return New(PathVariant, attrs...) }
func NewCircle(attrs ...Attr) *Element { return New(CircleVariant, attrs...) }
func NewRect(attrs ...Attr) *Element { return New(RectVariant, attrs...) }
func NewLine(attrs ...Attr) *Element { return New(LineVariant, attrs...) }
func NewMarker(attrs ...Attr) *Element { return New(MarkerVariant, attrs...) }
func NewText(attrs ...Attr) *Element { return New(TextVariant, attrs...) }
func NewPolygon(attrs ...Attr) *Element { return New(PolygonVariant, attrs...) }

// Variant returns the kind of the element.
func (e *Element) Variant() Variant { return e.variant }

// Attrs returns a copy of the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	return append([]Attr(nil), e.attrs...)
}

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, overwriting any previous value in place.
func (e *Element) SetAttr(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// SetNumber sets a numeric attribute using FormatNumber.
func (e *Element) SetNumber(key string, v float64) *Element {
	return e.SetAttr(key, FormatNumber(v))
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	e.children = append(e.children, child)
	return child
}

// AppendTag creates an empty element for tag, appends it and returns it.
func (e *Element) AppendTag(tag string) (*Element, error) {
	child, err := NewElement(tag)
	if err != nil {
		return nil, err
	}
	return e.Append(child), nil
}

// Children returns the children in append order.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// HasElements reports whether e has at least one child.
func (e *Element) HasElements() bool {
	return len(e.children) > 0
}

// AddDef registers def as a definition needed by e and returns def.
func (e *Element) AddDef(def *Element) *Element {
	e.defs = append(e.defs, def)
	return def
}

// Defs returns the definitions registered directly on e.
func (e *Element) Defs() []*Element {
	return append([]*Element(nil), e.defs...)
}

// SetText sets the character content written right after the opening tag.
// The text is written verbatim.
func (e *Element) SetText(s string) *Element {
	e.text = &s
	return e
}

// Text returns the character content and whether it was set.
func (e *Element) Text() (string, bool) {
	if e.text == nil {
		return "", false
	}
	return *e.text, true
}

// Serialize validates the tree and renders it as markup. Elements are
// never self-closed. Attribute values and text are not escaped.
func (e *Element) Serialize() (string, error) {
	var b strings.Builder
	if err := e.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteTo implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	s, err := e.Serialize()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// SaveAs serializes e into the file at path. It returns the path on success
// and false on any failure; the cause is logged, not returned.
func (e *Element) SaveAs(path string) (string, bool) {
	s, err := e.Serialize()
	if err != nil {
		logger.Logger.Errorw("Cannot serialize element", "path", path, "error", err)
		return "", false
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		logger.Logger.Warnw("Cannot save element", "path", path, "error", err)
		return "", false
	}
	return path, true
}

func (e *Element) validate() error {
	if !e.variant.valid() {
		return newUnknownVariant(strconv.Itoa(int(e.variant)))
	}
	info := variants[e.variant]
	for _, field := range info.mandatory {
		if _, ok := e.Attr(field); !ok {
			return newMissingAttribute(e.variant, field)
		}
	}
	if info.check != nil {
		return info.check(e)
	}
	return nil
}

func (e *Element) write(b *strings.Builder) error {
	if err := e.validate(); err != nil {
		return err
	}

	tag := e.variant.Tag()
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if e.text != nil {
		b.WriteString(*e.text)
	}

	if len(e.children) > 0 {
		// definitions must precede everything that may reference them
		if e.variant == SvgVariant {
			if defs := e.collectDefs(); len(defs) > 0 {
				area := NewDefs()
				area.children = defs
				if err := area.write(b); err != nil {
					return errors.Wrapf(err, "<%s>", tag)
				}
			}
		}
		for _, child := range e.children {
			if err := child.write(b); err != nil {
				return errors.Wrapf(err, "<%s>", tag)
			}
		}
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return nil
}

// collectDefs returns e's own definitions followed by those of every
// descendant, depth-first in pre-order.
func (e *Element) collectDefs() []*Element {
	defs := append([]*Element(nil), e.defs...)
	var walk func(n *Element)
	walk = func(n *Element) {
		defs = append(defs, n.defs...)
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, c := range e.children {
		walk(c)
	}
	return defs
}
