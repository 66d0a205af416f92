// Package geometry contains the primitive value types used throughout the
// archdraw diagram engine: points, rectangles and multi-segment paths in a
// float64 coordinate space where X grows rightward and Y grows downward.
package geometry

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit-length vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the direction of the vector in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}
