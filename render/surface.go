// Package render orchestrates one layout pass: element bounds, boundary
// hierarchies, relationship routing and the draw commands that put it all
// on a surface. The engine owns no drawing surface itself; callers supply
// anything implementing Surface (SVG writer, terminal canvas, recorder).
package render

import "archdraw/geometry"

// Paint carries the resolved stroke/fill settings for one draw call.
type Paint struct {
	Stroke    string
	Fill      string
	Thickness float64
	// Dash is the on/off dash pattern in drawing units; nil means solid.
	Dash []float64
}

// Surface is the minimal capability set the renderer draws against.
type Surface interface {
	DrawRect(r geometry.Rect, p Paint)
	DrawRoundedRect(r geometry.Rect, radius float64, p Paint)
	DrawPath(path geometry.Path, p Paint)
	DrawCircle(center geometry.Point, radius float64, p Paint)
	DrawLine(a, b geometry.Point, p Paint)
}

// Stroke dash patterns per border style.
var (
	dashedPattern = []float64{8, 4}
	dottedPattern = []float64{2, 3}
)

// levelDash returns the boundary stroke pattern for a nesting depth, so
// sibling levels stay visually distinguishable. The pattern choice is
// cosmetic and never feeds back into geometry.
func levelDash(level int) []float64 {
	switch level % 3 {
	case 1:
		return dashedPattern
	case 2:
		return dottedPattern
	default:
		return nil
	}
}
