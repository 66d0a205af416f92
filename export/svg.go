// Package export writes rendered diagrams to file formats. Each exporter
// implements render.Surface so the renderer stays unaware of output targets.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"archdraw/geometry"
	"archdraw/render"
)

// svgMargin is the whitespace kept around the drawn content.
const svgMargin = 20.0

// SVG is a Surface that accumulates draw calls as SVG markup. The document
// wrapper is emitted by Bytes, once the content extent is known.
type SVG struct {
	body   bytes.Buffer
	extent geometry.Rect
	empty  bool
}

// NewSVG returns an empty SVG surface.
func NewSVG() *SVG {
	return &SVG{empty: true}
}

func (s *SVG) DrawRect(r geometry.Rect, p render.Paint) {
	s.grow(r)
	fmt.Fprintf(&s.body, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"%s/>`+"\n",
		r.Left, r.Top, r.Width, r.Height, paintAttrs(p))
}

func (s *SVG) DrawRoundedRect(r geometry.Rect, radius float64, p render.Paint) {
	s.grow(r)
	fmt.Fprintf(&s.body, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f"%s/>`+"\n",
		r.Left, r.Top, r.Width, r.Height, radius, paintAttrs(p))
}

func (s *SVG) DrawPath(path geometry.Path, p render.Paint) {
	if path.IsEmpty() {
		return
	}
	s.grow(path.Bounds())

	var d strings.Builder
	fmt.Fprintf(&d, "M %.1f %.1f", path.Start.X, path.Start.Y)
	for _, seg := range path.Segments {
		switch seg.Kind {
		case geometry.QuadSegment:
			fmt.Fprintf(&d, " Q %.1f %.1f %.1f %.1f",
				seg.Control.X, seg.Control.Y, seg.To.X, seg.To.Y)
		default:
			fmt.Fprintf(&d, " L %.1f %.1f", seg.To.X, seg.To.Y)
		}
	}
	// Relationship paths are open strokes, never filled.
	open := p
	open.Fill = "none"
	fmt.Fprintf(&s.body, `  <path d="%s"%s/>`+"\n", d.String(), paintAttrs(open))
}

func (s *SVG) DrawCircle(center geometry.Point, radius float64, p render.Paint) {
	s.grow(geometry.NewRect(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	fmt.Fprintf(&s.body, `  <circle cx="%.1f" cy="%.1f" r="%.1f"%s/>`+"\n",
		center.X, center.Y, radius, paintAttrs(p))
}

func (s *SVG) DrawLine(a, b geometry.Point, p render.Paint) {
	s.grow(geometry.RectFromPoints(a, b))
	fmt.Fprintf(&s.body, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"%s/>`+"\n",
		a.X, a.Y, b.X, b.Y, paintAttrs(p))
}

// Bytes returns the complete SVG document. The viewBox fits the recorded
// content plus a fixed margin.
func (s *SVG) Bytes() []byte {
	box := s.extent.Expand(svgMargin)
	if s.empty {
		box = geometry.NewRect(0, 0, 2*svgMargin, 2*svgMargin)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		box.Left, box.Top, box.Width, box.Height, box.Width, box.Height)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) grow(r geometry.Rect) {
	if s.empty {
		s.extent = r
		s.empty = false
		return
	}
	s.extent = s.extent.Union(r)
}

func paintAttrs(p render.Paint) string {
	var b strings.Builder
	stroke := p.Stroke
	if stroke == "" {
		stroke = "none"
	}
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` stroke="%s" fill="%s"`, stroke, fill)
	if p.Thickness > 0 {
		fmt.Fprintf(&b, ` stroke-width="%.1f"`, p.Thickness)
	}
	if len(p.Dash) > 0 {
		parts := make([]string, len(p.Dash))
		for i, d := range p.Dash {
			parts[i] = fmt.Sprintf("%.0f", d)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return b.String()
}
