// Package config loads renderer themes from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"archdraw/diagram"
)

// Theme is the user-tunable rendering configuration. Zero values fall back
// to the defaults, so a theme file only needs to state what it changes.
type Theme struct {
	// Element is the base style applied to every element before any
	// per-element or per-tag style.
	Element diagram.Style `toml:"element"`
	// Padding is the boundary clearance around nested children.
	Padding float64 `toml:"padding"`
	// Tags maps a tag name to the style overlay applied to elements
	// carrying that tag.
	Tags map[string]diagram.Style `toml:"tags"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Element: diagram.Style{
			Shape:    diagram.ShapeBox,
			Stroke:   "#1168bd",
			Fill:     "#ffffff",
			Border:   diagram.BorderSolid,
			FontSize: 14,
			Routing:  "direct",
		},
		Padding: 20,
	}
}

// Load reads a theme file and merges it over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("read theme: %w", err)
	}

	var overlay Theme
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return theme, fmt.Errorf("parse theme %s: %w", path, err)
	}

	theme.Element = theme.Element.Merge(overlay.Element)
	if overlay.Padding > 0 {
		theme.Padding = overlay.Padding
	}
	if len(overlay.Tags) > 0 {
		theme.Tags = overlay.Tags
	}
	return theme, theme.validate()
}

// Resolve returns the effective style for an element: the base style with
// the overlay of every tag the element carries, applied in the element's
// declared tag order.
func (t Theme) Resolve(el diagram.Element) diagram.Style {
	style := t.Element
	for _, tag := range el.Tags {
		if overlay, ok := t.Tags[tag]; ok {
			style = style.Merge(overlay)
		}
	}
	return style
}

func (t Theme) validate() error {
	if err := validStyle(t.Element); err != nil {
		return fmt.Errorf("element style: %w", err)
	}
	for tag, style := range t.Tags {
		if err := validStyle(style); err != nil {
			return fmt.Errorf("tag %q style: %w", tag, err)
		}
	}
	return nil
}

func validStyle(s diagram.Style) error {
	switch s.Shape {
	case "", diagram.ShapeBox, diagram.ShapeRoundedBox, diagram.ShapeEllipse,
		diagram.ShapePerson, diagram.ShapeComponent, diagram.ShapeCylinder:
	default:
		return fmt.Errorf("unknown shape %q", s.Shape)
	}
	switch s.Border {
	case "", diagram.BorderSolid, diagram.BorderDashed, diagram.BorderDotted:
	default:
		return fmt.Errorf("unknown border %q", s.Border)
	}
	switch s.Routing {
	case "", "direct", "curved", "orthogonal":
	default:
		return fmt.Errorf("unknown routing strategy %q", s.Routing)
	}
	if s.FontSize < 0 || s.Thickness < 0 {
		return fmt.Errorf("negative size")
	}
	return nil
}
