package render

import (
	"archdraw/diagram"
	"archdraw/geometry"
	"archdraw/hittest"
)

// RenderedElement is one element as it was drawn: definitive rectangle,
// shape and nesting level. Elements appear in draw order, containers before
// their children, so the slice index doubles as z-order.
type RenderedElement struct {
	ID    string
	Rect  geometry.Rect
	Shape diagram.Shape
	Level int
}

// RenderedPath is one routed relationship.
type RenderedPath struct {
	ID   string
	Path geometry.Path
}

// Frame is the output of one render pass: everything needed for hit-testing
// without re-running layout. It is discarded when placements, visibility or
// styles change and the next pass rebuilds it.
type Frame struct {
	Elements []RenderedElement
	Paths    []RenderedPath
	// Warnings collects the soft conditions of the pass: skipped
	// relationships, containment cycles, detour ceilings.
	Warnings []string
}

// Bounds returns the union of all rendered geometry, for viewport fitting.
func (f *Frame) Bounds() geometry.Rect {
	var out geometry.Rect
	first := true
	grow := func(r geometry.Rect) {
		if first {
			out = r
			first = false
			return
		}
		out = out.Union(r)
	}
	for _, el := range f.Elements {
		grow(el.Rect)
	}
	for _, p := range f.Paths {
		grow(p.Path.Bounds())
	}
	return out
}

// Targets adapts the frame's elements for hit-testing; z follows draw order.
func (f *Frame) Targets() []hittest.Target {
	targets := make([]hittest.Target, len(f.Elements))
	for i, el := range f.Elements {
		targets[i] = hittest.Target{ID: el.ID, Rect: el.Rect, Shape: el.Shape, Z: i}
	}
	return targets
}

// PathTargets adapts the frame's relationship paths for hit-testing.
func (f *Frame) PathTargets() []hittest.PathTarget {
	targets := make([]hittest.PathTarget, len(f.Paths))
	for i, p := range f.Paths {
		targets[i] = hittest.PathTarget{ID: p.ID, Path: p.Path}
	}
	return targets
}

// HitPoint resolves a pointer position against the frame.
func (f *Frame) HitPoint(p geometry.Point, tolerance float64) hittest.Result {
	return hittest.Point(p, f.Targets(), f.PathTargets(), tolerance)
}

// HitRegion resolves a marquee region against the frame.
func (f *Frame) HitRegion(r geometry.Rect) hittest.RegionResult {
	return hittest.Region(r, f.Targets(), f.PathTargets())
}
