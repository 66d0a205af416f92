// Package hittest resolves pointer positions and marquee regions against
// rendered diagram geometry: which element or relationship, if any, sits
// under a point or inside a rectangle.
package hittest

import (
	"math"
	"sort"

	"archdraw/diagram"
	"archdraw/geometry"
)

// Kind discriminates hit results.
type Kind int

const (
	KindNone Kind = iota
	KindElement
	KindRelationship
)

// String returns the result kind name.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindRelationship:
		return "relationship"
	default:
		return "none"
	}
}

// Result is the outcome of a point hit test.
type Result struct {
	Kind Kind
	ID   string
}

// NoHit is the result when nothing qualifies.
var NoHit = Result{Kind: KindNone}

// Target is one rendered element: its definitive rectangle, the shape used
// to draw it (which decides the containment test) and its z-order. Higher Z
// is drawn later and wins ties; nested elements carry higher Z than their
// containers.
type Target struct {
	ID    string
	Rect  geometry.Rect
	Shape diagram.Shape
	Z     int
}

// PathTarget is one rendered relationship path.
type PathTarget struct {
	ID   string
	Path geometry.Path
}

// curveSamples is the flattening resolution for distance tests against
// curved paths.
const curveSamples = 16

// Point finds what lies under p. Elements are tested topmost-first; an
// element hit beats any relationship. Relationships hit when the minimum
// distance from p to the path is within tolerance; the nearest one wins.
func Point(p geometry.Point, elements []Target, paths []PathTarget, tolerance float64) Result {
	if el, ok := topmostAt(p, elements); ok {
		return Result{Kind: KindElement, ID: el.ID}
	}

	bestID := ""
	best := math.Inf(1)
	for _, pt := range paths {
		d := distanceToPath(p, pt.Path)
		if d <= tolerance && d < best {
			best = d
			bestID = pt.ID
		}
	}
	if bestID != "" {
		return Result{Kind: KindRelationship, ID: bestID}
	}
	return NoHit
}

// RegionResult lists everything selected by a marquee region.
type RegionResult struct {
	ElementIDs      []string
	RelationshipIDs []string
}

// Region performs marquee selection: elements are included when their
// rectangle is fully contained in the region, relationships when any part
// of their path intersects it. Ids are returned sorted for determinism.
func Region(region geometry.Rect, elements []Target, paths []PathTarget) RegionResult {
	var res RegionResult
	for _, el := range elements {
		if region.ContainsRect(el.Rect) {
			res.ElementIDs = append(res.ElementIDs, el.ID)
		}
	}
	for _, pt := range paths {
		if pathIntersectsRect(pt.Path, region) {
			res.RelationshipIDs = append(res.RelationshipIDs, pt.ID)
		}
	}
	sort.Strings(res.ElementIDs)
	sort.Strings(res.RelationshipIDs)
	return res
}

// topmostAt returns the highest-Z element containing p.
func topmostAt(p geometry.Point, elements []Target) (Target, bool) {
	found := false
	var best Target
	for _, el := range elements {
		if !shapeContains(el, p) {
			continue
		}
		if !found || el.Z > best.Z {
			best = el
			found = true
		}
	}
	return best, found
}

// shapeContains applies the containment test appropriate to the element's
// rendered shape. Ellipses use the inscribed-ellipse equation; everything
// else is a plain rectangle test.
func shapeContains(el Target, p geometry.Point) bool {
	switch el.Shape {
	case diagram.ShapeEllipse:
		return ellipseContains(el.Rect, p)
	default:
		return el.Rect.Contains(p)
	}
}

// ellipseContains tests p against the ellipse inscribed in r.
func ellipseContains(r geometry.Rect, p geometry.Point) bool {
	if r.IsDegenerate() {
		return false
	}
	c := r.Center()
	nx := (p.X - c.X) / (r.Width / 2)
	ny := (p.Y - c.Y) / (r.Height / 2)
	return nx*nx+ny*ny <= 1
}

// distanceToPath returns the minimum distance from p to the flattened path.
// Dashed or dotted rendering does not change the logical path tested here.
func distanceToPath(p geometry.Point, path geometry.Path) float64 {
	pts := path.Flatten(curveSamples)
	if len(pts) == 1 {
		return p.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 0; i < len(pts)-1; i++ {
		if d := geometry.DistanceToSegment(p, pts[i], pts[i+1]); d < best {
			best = d
		}
	}
	return best
}

// pathIntersectsRect reports whether any flattened segment touches r.
func pathIntersectsRect(path geometry.Path, r geometry.Rect) bool {
	pts := path.Flatten(curveSamples)
	if len(pts) == 1 {
		return r.Contains(pts[0])
	}
	for i := 0; i < len(pts)-1; i++ {
		if geometry.SegmentIntersectsRect(pts[i], pts[i+1], r) {
			return true
		}
	}
	return false
}
