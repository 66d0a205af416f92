// Package bounds turns element placement hints into definitive rectangles
// and maintains the per-pass cache of every element's rectangle. The cache
// doubles as the obstacle set during relationship routing.
package bounds

import (
	"archdraw/diagram"
	"archdraw/geometry"
)

// Shape default sizes and label padding.
const (
	DefaultWidth  = 200.0
	DefaultHeight = 150.0

	HorizontalPadding = 30.0
	VerticalPadding   = 25.0

	// PersonHeadAllowance reserves vertical space for the figure glyph
	// drawn above a person element's label.
	PersonHeadAllowance = 60.0

	DefaultFontSize = 14.0
)

// Calculate produces the definitive rectangle for an element. An explicit
// placement size is authoritative; otherwise the size is derived from the
// rendered label text, floored at the shape default. The result is never
// degenerate.
func Calculate(el diagram.Element, placement diagram.Placement, style diagram.Style) geometry.Rect {
	if placement.HasExplicitSize() {
		return geometry.NewRect(placement.X, placement.Y, placement.Width, placement.Height)
	}

	fontSize := style.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	lines := labelLines(el, style)
	var widest float64
	for _, line := range lines {
		if w := TextWidth(line, fontSize); w > widest {
			widest = w
		}
	}

	width := widest + 2*HorizontalPadding
	height := float64(len(lines))*LineHeight(fontSize) + 2*VerticalPadding
	if width < DefaultWidth {
		width = DefaultWidth
	}
	if height < DefaultHeight {
		height = DefaultHeight
	}
	// The head allowance sits on top of the floored label area, so a
	// short-label person never gives up label space to the figure glyph.
	if style.Shape == diagram.ShapePerson {
		height += PersonHeadAllowance
	}
	return geometry.NewRect(placement.X, placement.Y, width, height)
}

// labelLines collects the text lines the element will render: always the
// name, plus technology and description when the style asks for them.
func labelLines(el diagram.Element, style diagram.Style) []string {
	lines := []string{el.Name}
	if style.ShowMetadata && el.Technology != "" {
		lines = append(lines, "["+el.Technology+"]")
	}
	if style.ShowDescription && el.Description != "" {
		lines = append(lines, el.Description)
	}
	return lines
}
