package diagram

// Shape selects how an element is drawn.
type Shape string

const (
	ShapeBox        Shape = "box"
	ShapeRoundedBox Shape = "rounded"
	ShapeEllipse    Shape = "ellipse"
	ShapePerson     Shape = "person"
	ShapeComponent  Shape = "component"
	ShapeCylinder   Shape = "cylinder"
)

// Border selects the stroke pattern of an element outline.
type Border string

const (
	BorderSolid  Border = "solid"
	BorderDashed Border = "dashed"
	BorderDotted Border = "dotted"
)

// Style is the resolved presentation record for a single element. Tag-based
// resolution happens outside the engine; by the time a Style reaches the
// bounds calculator or renderer it is final.
type Style struct {
	Shape           Shape   `toml:"shape" json:"shape,omitempty"`
	Stroke          string  `toml:"stroke" json:"stroke,omitempty"`
	Fill            string  `toml:"fill" json:"fill,omitempty"`
	Border          Border  `toml:"border" json:"border,omitempty"`
	FontSize        float64 `toml:"font_size" json:"fontSize,omitempty"`
	Thickness       float64 `toml:"thickness" json:"thickness,omitempty"`
	ShowMetadata    bool    `toml:"show_metadata" json:"showMetadata,omitempty"`
	ShowDescription bool    `toml:"show_description" json:"showDescription,omitempty"`
	// Routing is the style-level default strategy for relationships
	// touching elements styled by this record: "direct", "curved" or
	// "orthogonal".
	Routing string `toml:"routing" json:"routing,omitempty"`
}

// Merge overlays the non-zero fields of o onto s and returns the result.
func (s Style) Merge(o Style) Style {
	if o.Shape != "" {
		s.Shape = o.Shape
	}
	if o.Stroke != "" {
		s.Stroke = o.Stroke
	}
	if o.Fill != "" {
		s.Fill = o.Fill
	}
	if o.Border != "" {
		s.Border = o.Border
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.Thickness > 0 {
		s.Thickness = o.Thickness
	}
	if o.ShowMetadata {
		s.ShowMetadata = true
	}
	if o.ShowDescription {
		s.ShowDescription = true
	}
	if o.Routing != "" {
		s.Routing = o.Routing
	}
	return s
}
