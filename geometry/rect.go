package geometry

import "math"

// Rect is an axis-aligned rectangle. Width and Height are never negative;
// use NewRect to construct one from untrusted values.
type Rect struct {
	Left, Top, Width, Height float64
}

// NewRect builds a rectangle, clamping negative dimensions to zero.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: math.Max(width, 0), Height: math.Max(height, 0)}
}

// RectFromPoints builds the smallest rectangle containing both points.
func RectFromPoints(a, b Point) Rect {
	left := math.Min(a.X, b.X)
	top := math.Min(a.Y, b.Y)
	return Rect{Left: left, Top: top, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// IsDegenerate reports whether the rectangle has zero area.
func (r Rect) IsDegenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right() <= r.Right() &&
		o.Top >= r.Top && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left, o.Left)
	top := math.Min(r.Top, o.Top)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Expand grows the rectangle by pad on all four sides. A negative pad
// shrinks it, collapsing to a zero-size rectangle at the center if the
// inset exceeds the dimensions.
func (r Rect) Expand(pad float64) Rect {
	return NewRect(r.Left-pad, r.Top-pad, r.Width+2*pad, r.Height+2*pad)
}

// EdgeIntersection finds where the segment from inside to outside crosses the
// rectangle boundary. The inside point is expected to be within the rectangle
// and the outside point beyond it; ok is false when the segment never crosses
// an edge (both points inside, both outside, or a zero-length segment).
func (r Rect) EdgeIntersection(inside, outside Point) (Point, bool) {
	d := outside.Sub(inside)
	best := math.Inf(1)

	if d.X != 0 {
		for _, x := range []float64{r.Left, r.Right()} {
			t := (x - inside.X) / d.X
			if t <= 0 || t > 1 {
				continue
			}
			y := inside.Y + t*d.Y
			if y >= r.Top && y <= r.Bottom() && t < best {
				best = t
			}
		}
	}
	if d.Y != 0 {
		for _, y := range []float64{r.Top, r.Bottom()} {
			t := (y - inside.Y) / d.Y
			if t <= 0 || t > 1 {
				continue
			}
			x := inside.X + t*d.X
			if x >= r.Left && x <= r.Right() && t < best {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return inside, false
	}
	return inside.Add(d.Scale(best)), true
}
