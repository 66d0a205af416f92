package geometry

import "math"

// SegmentKind discriminates the segment types a path can contain.
type SegmentKind int

const (
	// LineSegment is a straight line to the segment's end point.
	LineSegment SegmentKind = iota
	// QuadSegment is a quadratic Bezier curve through a control point.
	QuadSegment
)

// Segment is one piece of a path. Control is only meaningful for QuadSegment.
type Segment struct {
	Kind    SegmentKind
	Control Point
	To      Point
}

// Path is an ordered sequence of segments starting at Start. A routed
// relationship is one path; the arrowhead angle is derived from the final
// segment's tangent via EndAngle.
type Path struct {
	Start    Point
	Segments []Segment
}

// NewPath creates a path beginning at start.
func NewPath(start Point) Path {
	return Path{Start: start}
}

// LineTo appends a straight segment ending at p.
func (p *Path) LineTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Kind: LineSegment, To: pt})
}

// QuadTo appends a quadratic curve through control, ending at pt.
func (p *Path) QuadTo(control, pt Point) {
	p.Segments = append(p.Segments, Segment{Kind: QuadSegment, Control: control, To: pt})
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// End returns the final point of the path, or Start for an empty path.
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].To
}

// EndAngle returns the tangent direction at the end of the path in radians.
// For a quadratic segment the tangent at t=1 points from the control point
// to the end point. An empty path reports angle 0.
func (p Path) EndAngle() float64 {
	if len(p.Segments) == 0 {
		return 0
	}
	last := p.Segments[len(p.Segments)-1]
	from := p.Start
	if len(p.Segments) > 1 {
		from = p.Segments[len(p.Segments)-2].To
	}
	if last.Kind == QuadSegment {
		from = last.Control
	}
	d := last.To.Sub(from)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return d.Angle()
}

// QuadPoint evaluates a quadratic Bezier at t in [0,1].
func QuadPoint(start, control, end Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*start.X + 2*u*t*control.X + t*t*end.X,
		Y: u*u*start.Y + 2*u*t*control.Y + t*t*end.Y,
	}
}

// Flatten converts the path to a polyline. Curved segments are sampled
// samplesPerCurve times; line segments contribute their end point directly.
func (p Path) Flatten(samplesPerCurve int) []Point {
	if samplesPerCurve < 1 {
		samplesPerCurve = 1
	}
	points := []Point{p.Start}
	prev := p.Start
	for _, seg := range p.Segments {
		switch seg.Kind {
		case QuadSegment:
			for i := 1; i <= samplesPerCurve; i++ {
				t := float64(i) / float64(samplesPerCurve)
				points = append(points, QuadPoint(prev, seg.Control, seg.To, t))
			}
		default:
			points = append(points, seg.To)
		}
		prev = seg.To
	}
	return points
}

// Bounds returns the bounding rectangle of the path. Curves are bounded via
// sampling, which is exact enough for hit-testing and layout purposes.
func (p Path) Bounds() Rect {
	points := p.Flatten(16)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}
