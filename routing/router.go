package routing

import (
	"archdraw/diagram"
	"archdraw/geometry"
)

const (
	// CurveOffsetRatio scales the perpendicular control-point offset of a
	// curved path with the distance between centers.
	CurveOffsetRatio = 0.2
	// MaxCurveOffset bounds the control-point offset so long edges do not
	// balloon.
	MaxCurveOffset = 60.0
	// StubLength is the length of the fallback stub produced for
	// degenerate geometry.
	StubLength = 10.0
	// SelfLoopBulge is how far a self-relationship loop extends beyond
	// the element body.
	SelfLoopBulge = 40.0

	minSeparation = 1e-6
)

// Router computes relationship paths. The zero value is not usable; use
// NewRouter.
type Router struct {
	// ObstaclePadding is the clearance orthogonal routing keeps around
	// obstacle rectangles.
	ObstaclePadding float64
	// MaxDetours bounds the obstacle-avoidance retries for orthogonal
	// routing. Past the ceiling the best-effort path is returned even if
	// it still collides.
	MaxDetours int
}

// NewRouter creates a router with default tuning.
func NewRouter() *Router {
	return &Router{
		ObstaclePadding: 10,
		MaxDetours:      4,
	}
}

// Route computes the path for one relationship. src and dst are the cached
// endpoint rectangles; obstacles are every other element rectangle in the
// pass; lateral is the de-overlap offset from Context.LateralOffset. The
// result always has at least one non-zero-length segment.
func (rt *Router) Route(rel diagram.Relationship, src, dst geometry.Rect, strategy Strategy, obstacles []geometry.Rect, lateral float64) geometry.Path {
	if rel.IsSelf() {
		return rt.selfLoop(src)
	}
	switch strategy {
	case Curved:
		return rt.curved(src, dst, lateral)
	case Orthogonal:
		return rt.orthogonal(src, dst, obstacles)
	default:
		return rt.direct(src, dst, lateral)
	}
}

// direct connects the two centers and trims both ends to the rectangle
// boundaries. A non-zero lateral shifts the whole line perpendicular to
// its direction, which keeps bidirectional pairs apart.
func (rt *Router) direct(src, dst geometry.Rect, lateral float64) geometry.Path {
	a, b := src.Center(), dst.Center()
	dir := b.Sub(a)
	if dir.Length() < minSeparation {
		return stub(a, geometry.Point{X: 1})
	}

	if lateral != 0 {
		off := dir.Normalize().Perp().Scale(lateral)
		a = a.Add(off)
		b = b.Add(off)
	}

	start, okS := src.EdgeIntersection(a, b)
	end, okE := dst.EdgeIntersection(b, a)
	if !okS || !okE || start.Distance(end) < minSeparation {
		// Overlapping or coincident rectangles: a minimum-length stub
		// toward the other center keeps the path renderable.
		return stub(src.Center(), dir)
	}

	p := geometry.NewPath(start)
	p.LineTo(end)
	return p
}

// curved builds a quadratic curve whose control point sits perpendicular to
// the center line, offset proportionally to its length. The proportional
// offset alone separates opposing curved edges; lateral adds the explicit
// pair/group offset on top.
func (rt *Router) curved(src, dst geometry.Rect, lateral float64) geometry.Path {
	a, b := src.Center(), dst.Center()
	dir := b.Sub(a)
	length := dir.Length()
	if length < minSeparation {
		return stub(a, geometry.Point{X: 1})
	}

	mag := geometry.Clamp(length*CurveOffsetRatio, 0, MaxCurveOffset) + lateral
	control := a.Midpoint(b).Add(dir.Normalize().Perp().Scale(mag))

	// Trim along the end tangents; fall back to the center line when the
	// control point lands inside an endpoint rectangle.
	start, okS := src.EdgeIntersection(a, control)
	if !okS {
		start, okS = src.EdgeIntersection(a, b)
	}
	end, okE := dst.EdgeIntersection(b, control)
	if !okE {
		end, okE = dst.EdgeIntersection(b, a)
	}
	if !okS || !okE || start.Distance(end) < minSeparation {
		return stub(src.Center(), dir)
	}

	p := geometry.NewPath(start)
	p.QuadTo(control, end)
	return p
}

// selfLoop routes a relationship from an element to itself: out the right
// side, around the top-right corner, back in through the top edge. The
// bulge is fixed, so the loop stays visible regardless of element size.
func (rt *Router) selfLoop(r geometry.Rect) geometry.Path {
	c := r.Center()
	p := geometry.NewPath(geometry.Point{X: r.Right(), Y: c.Y})
	p.LineTo(geometry.Point{X: r.Right() + SelfLoopBulge, Y: c.Y})
	p.LineTo(geometry.Point{X: r.Right() + SelfLoopBulge, Y: r.Top - SelfLoopBulge})
	p.LineTo(geometry.Point{X: c.X, Y: r.Top - SelfLoopBulge})
	p.LineTo(geometry.Point{X: c.X, Y: r.Top})
	return p
}

// stub produces the minimum-length fallback path for degenerate geometry,
// pointing along dir or due east when dir is zero.
func stub(from geometry.Point, dir geometry.Point) geometry.Path {
	if dir.Length() < minSeparation {
		dir = geometry.Point{X: 1}
	}
	p := geometry.NewPath(from)
	p.LineTo(from.Add(dir.Normalize().Scale(StubLength)))
	return p
}
