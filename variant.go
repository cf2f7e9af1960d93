package svg

// Variant tells the builder which kind of element a node is. The set is
// closed; every variant has a tag name and a list of attributes that must
// be present before the node can be serialized.
type Variant int

// These are the element kinds the builder knows how to emit
const (
	SvgVariant Variant = iota
	GroupVariant
	DefsVariant
	PathVariant
	CircleVariant
	RectVariant
	LineVariant
	MarkerVariant
	TextVariant
	PolygonVariant
)

// Tag names as they appear in markup.
const (
	TagSvg     = "svg"
	TagGroup   = "g"
	TagDefs    = "defs"
	TagPath    = "path"
	TagCircle  = "circle"
	TagRect    = "rect"
	TagLine    = "line"
	TagMarker  = "marker"
	TagText    = "text"
	TagPolygon = "polygon"
)

type variantInfo struct {
	tag       string
	mandatory []string
	// check validates attribute values once the mandatory set is present.
	check func(e *Element) error
}

var variants = [...]variantInfo{
	SvgVariant:     {tag: TagSvg, mandatory: []string{"width", "height"}},
	GroupVariant:   {tag: TagGroup},
	DefsVariant:    {tag: TagDefs},
	PathVariant:    {tag: TagPath, mandatory: []string{"d"}},
	CircleVariant:  {tag: TagCircle, mandatory: []string{"cx", "cy", "r"}},
	RectVariant:    {tag: TagRect, mandatory: []string{"width", "height"}},
	LineVariant:    {tag: TagLine, mandatory: []string{"x1", "y1", "x2", "y2"}},
	MarkerVariant:  {tag: TagMarker, mandatory: []string{"id"}},
	TextVariant:    {tag: TagText, mandatory: []string{"x", "y"}},
	PolygonVariant: {tag: TagPolygon, mandatory: []string{"points"}},
}

func init() {
	variants[PathVariant].check = checkPathData
}

var byTag = func() map[string]Variant {
	m := make(map[string]Variant, len(variants))
	for v, info := range variants {
		if _, dup := m[info.tag]; dup {
			panic("svg: duplicate tag " + info.tag)
		}
		m[info.tag] = Variant(v)
	}
	return m
}()

// Tag returns the markup tag name of the variant.
func (v Variant) Tag() string {
	if !v.valid() {
		return ""
	}
	return variants[v].tag
}

// Mandatory returns the attributes that must be set on an element of this
// variant before it can be serialized.
func (v Variant) Mandatory() []string {
	if !v.valid() {
		return nil
	}
	return append([]string(nil), variants[v].mandatory...)
}

func (v Variant) String() string {
	return v.Tag()
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variants)
}

// LookupVariant maps a tag name to its variant. Unknown tags yield an
// *UnknownVariantError.
func LookupVariant(tag string) (Variant, error) {
	v, ok := byTag[tag]
	if !ok {
		return 0, newUnknownVariant(tag)
	}
	return v, nil
}
