package geometry

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / lenSq
	t = Clamp(t, 0, 1)
	return p.Distance(a.Add(d.Scale(t)))
}

// SegmentsIntersect reports whether segments ab and cd cross or touch.
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Collinear cases: a touch counts as an intersection.
	if o1 == 0 && onSegment(a, b, c) {
		return true
	}
	if o2 == 0 && onSegment(a, b, d) {
		return true
	}
	if o3 == 0 && onSegment(c, d, a) {
		return true
	}
	if o4 == 0 && onSegment(c, d, b) {
		return true
	}
	return false
}

// SegmentIntersectsRect reports whether the segment ab passes through or
// touches the rectangle r.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}
	tl := Point{X: r.Left, Y: r.Top}
	tr := Point{X: r.Right(), Y: r.Top}
	bl := Point{X: r.Left, Y: r.Bottom()}
	br := Point{X: r.Right(), Y: r.Bottom()}
	return SegmentsIntersect(a, b, tl, tr) ||
		SegmentsIntersect(a, b, tr, br) ||
		SegmentsIntersect(a, b, br, bl) ||
		SegmentsIntersect(a, b, bl, tl)
}

// orientation returns 0 for collinear points, 1 for clockwise and -1 for
// counter-clockwise winding of the triple (a, b, c).
func orientation(a, b, c Point) int {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	const eps = 1e-9
	if math.Abs(v) < eps {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}

// onSegment reports whether collinear point p lies within the bounding box
// of segment ab.
func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}
