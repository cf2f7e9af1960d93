package shift

import (
	"math"

	svg "github.com/vodvud/shift-svg"
)

const (
	// radius of the pie in viewBox units
	radius = 100

	// labelShrink scales multi-character labels down so they fit a slice.
	labelShrink = 0.67

	// labelSizeOffset is added to the per-slice share to get the base font size.
	labelSizeOffset = 40

	quarterTurn = math.Pi / 2
)

// Renderer draws pie icons from catalog entries.
type Renderer struct {
	catalog *Catalog
}

// NewRenderer returns a renderer that resolves keys against c, or against
// Default when c is nil.
func NewRenderer(c *Catalog) *Renderer {
	if c == nil {
		c = Default
	}
	return &Renderer{catalog: c}
}

// Catalog returns the catalog keys are resolved against.
func (r *Renderer) Catalog() *Catalog {
	return r.catalog
}

// RenderKey resolves key and renders the resulting entries. A key with no
// known token renders as the empty string.
func (r *Renderer) RenderKey(key string) (string, error) {
	return r.Render(r.catalog.Resolve(key))
}

// Render draws one equal slice per entry and returns the SVG document. It
// returns the empty string for no entries.
func (r *Renderer) Render(entries []Entry) (string, error) {
	doc := Document(entries)
	if doc == nil {
		return "", nil
	}
	return doc.Serialize()
}

// Document builds the icon tree for entries without serializing it, or
// returns nil when entries is empty.
//
// Slices start at the top of the circle when there is more than one. A
// single entry is drawn as one full-circle arc whose start point is nudged
// off the end point, since an arc between identical points draws nothing.
func Document(entries []Entry) *svg.Element {
	count := len(entries)
	if count == 0 {
		return nil
	}

	span := 100 / float64(count)
	baseSize := svg.Round(100/float64(count), 3) + labelSizeOffset

	fills := fillGroup()
	labels := labelGroup()

	start := svg.PolarPoint(0, radius)
	if count > 1 {
		start = svg.Rotate(start, quarterTurn)
	}

	var n float64
	for _, entry := range entries {
		n = svg.Round(n+span, 3)
		end := svg.PolarPoint(2*math.Pi*(n/100), radius)

		var flags string
		var anchor svg.Tuple
		if count > 1 {
			flags = "0,1"
			end = svg.Rotate(end, quarterTurn)
			// halfway out along the end boundary, turned back half a slice
			anchor = svg.Rotate(end.Scale(0.5), -(2*math.Pi/float64(count))/2)
		} else {
			flags = "1,0"
			start[1] = -0.01
		}

		fills.Append(svg.NewPath()).
			SetAttr("d", "M0,0 L"+svg.FormatTuple(start)+" A100,100 0 "+flags+" "+svg.FormatTuple(end)+" Z").
			SetAttr("fill", entry.Fill)

		if entry.Label != "" {
			labels.Append(svg.NewText()).
				SetNumber("x", anchor[0]).
				SetNumber("y", anchor[1]).
				SetAttr("dy", "0.333em").
				SetNumber("dx", 0).
				SetAttr("fill", entry.LabelColor()).
				SetAttr("font-size", svg.FormatNumber(FontSize(entry.Label, baseSize))+"px").
				SetText(entry.Label)
		}

		start = end
	}

	doc := svg.NewSvg(
		svg.Attr{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
		svg.Attr{Key: "width", Value: "24"},
		svg.Attr{Key: "height", Value: "24"},
		svg.Attr{Key: "viewBox", Value: "-100 -100 200 200"},
	)
	doc.Append(fills)
	if labels.HasElements() {
		doc.Append(labels)
	}
	return doc
}

// FontSize returns the label font size for a slice whose single-glyph size
// is base. Longer labels shrink with their byte length.
func FontSize(label string, base float64) float64 {
	if len(label) > 1 {
		return svg.Round(base/(float64(len(label))*labelShrink), 3)
	}
	return base
}

func fillGroup() *svg.Element {
	return svg.NewGroup(svg.Attr{Key: "stroke", Value: "none"})
}

func labelGroup() *svg.Element {
	return svg.NewGroup(
		svg.Attr{Key: "text-anchor", Value: "middle"},
		svg.Attr{Key: "font-family", Value: "Arial"},
		svg.Attr{Key: "font-weight", Value: "bold"},
		svg.Attr{Key: "stroke", Value: "none"},
	)
}
