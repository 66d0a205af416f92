package routing

import (
	"math"

	"archdraw/geometry"
)

// detourMargin is the extra clearance a detour lane keeps beyond the
// padded obstacle extent, so the rerouted segment no longer touches it.
const detourMargin = 2.0

// orthogonal computes a Manhattan path between the two rectangles. The
// minimal path is an L through one corner; each segment is swept against
// the padded obstacles and colliding segments are rerouted around the
// obstacle extent, up to MaxDetours times. If collisions remain after the
// ceiling the best-effort path is returned rather than failing.
func (rt *Router) orthogonal(src, dst geometry.Rect, obstacles []geometry.Rect) geometry.Path {
	points := rt.initialWaypoints(src, dst)

	for attempt := 0; attempt < rt.MaxDetours; attempt++ {
		seg, obstacle, found := rt.firstCollision(points, obstacles)
		if !found {
			break
		}
		points = rt.detour(points, seg, obstacle)
	}

	points = simplifyWaypoints(points)
	if len(points) < 2 {
		return stub(src.Center(), dst.Center().Sub(src.Center()))
	}
	p := geometry.NewPath(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	return p
}

// initialWaypoints picks the boundary exit and entry points by the dominant
// axis between the centers and connects them with at most one bend.
func (rt *Router) initialWaypoints(src, dst geometry.Rect) []geometry.Point {
	sc, dc := src.Center(), dst.Center()
	dx := dc.X - sc.X
	dy := dc.Y - sc.Y

	if math.Abs(dx) >= math.Abs(dy) {
		start := geometry.Point{X: src.Left, Y: sc.Y}
		if dx >= 0 {
			start.X = src.Right()
		}
		// When the exit lane already spans the target vertically the
		// path enters straight through the facing side; a bend there
		// would land the corner inside the target.
		if sc.Y >= dst.Top && sc.Y <= dst.Bottom() {
			end := geometry.Point{X: dst.Right(), Y: sc.Y}
			if dx >= 0 {
				end.X = dst.Left
			}
			return []geometry.Point{start, end}
		}
		end := geometry.Point{X: dc.X, Y: dst.Bottom()}
		if dy > 0 {
			end.Y = dst.Top
		}
		corner := geometry.Point{X: dc.X, Y: sc.Y}
		return []geometry.Point{start, corner, end}
	}

	start := geometry.Point{X: sc.X, Y: src.Top}
	if dy >= 0 {
		start.Y = src.Bottom()
	}
	if sc.X >= dst.Left && sc.X <= dst.Right() {
		end := geometry.Point{X: sc.X, Y: dst.Bottom()}
		if dy >= 0 {
			end.Y = dst.Top
		}
		return []geometry.Point{start, end}
	}
	end := geometry.Point{X: dst.Right(), Y: dc.Y}
	if dx > 0 {
		end.X = dst.Left
	}
	corner := geometry.Point{X: sc.X, Y: dc.Y}
	return []geometry.Point{start, corner, end}
}

// firstCollision finds the first path segment crossing a padded obstacle.
func (rt *Router) firstCollision(points []geometry.Point, obstacles []geometry.Rect) (int, geometry.Rect, bool) {
	for i := 0; i < len(points)-1; i++ {
		for _, o := range obstacles {
			if geometry.SegmentIntersectsRect(points[i], points[i+1], o.Expand(rt.ObstaclePadding)) {
				return i, o, true
			}
		}
	}
	return 0, geometry.Rect{}, false
}

// detour replaces the colliding segment with a three-segment jog running
// along the nearer side of the obstacle's padded extent. The extra bends
// may themselves collide; the caller re-sweeps until the retry ceiling.
func (rt *Router) detour(points []geometry.Point, seg int, obstacle geometry.Rect) []geometry.Point {
	lane := obstacle.Expand(rt.ObstaclePadding + detourMargin)
	p1, p2 := points[seg], points[seg+1]

	var jog []geometry.Point
	if p1.Y == p2.Y {
		// Horizontal segment: shift the travel lane above or below the
		// obstacle, whichever is closer to the current lane.
		y := lane.Bottom()
		if p1.Y-lane.Top <= lane.Bottom()-p1.Y {
			y = lane.Top
		}
		jog = []geometry.Point{
			{X: p1.X, Y: y},
			{X: p2.X, Y: y},
		}
	} else {
		// Vertical segment: shift left or right of the obstacle.
		x := lane.Right()
		if p1.X-lane.Left <= lane.Right()-p1.X {
			x = lane.Left
		}
		jog = []geometry.Point{
			{X: x, Y: p1.Y},
			{X: x, Y: p2.Y},
		}
	}

	out := make([]geometry.Point, 0, len(points)+2)
	out = append(out, points[:seg+1]...)
	out = append(out, jog...)
	out = append(out, points[seg+1:]...)
	return out
}

// simplifyWaypoints drops duplicate and collinear intermediate points.
func simplifyWaypoints(points []geometry.Point) []geometry.Point {
	if len(points) < 2 {
		return points
	}
	out := []geometry.Point{points[0]}
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	if len(out) < 3 {
		return out
	}
	simplified := []geometry.Point{out[0]}
	for i := 1; i < len(out)-1; i++ {
		prev := simplified[len(simplified)-1]
		next := out[i+1]
		sameX := prev.X == out[i].X && out[i].X == next.X
		sameY := prev.Y == out[i].Y && out[i].Y == next.Y
		if !sameX && !sameY {
			simplified = append(simplified, out[i])
		}
	}
	return append(simplified, out[len(out)-1])
}
