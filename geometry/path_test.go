package geometry

import (
	"math"
	"testing"
)

func TestPathEndAndEmpty(t *testing.T) {
	p := NewPath(Point{1, 2})
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}
	if p.End() != (Point{1, 2}) {
		t.Errorf("End() of empty path = %v, want start", p.End())
	}

	p.LineTo(Point{10, 2})
	p.LineTo(Point{10, 20})
	if p.IsEmpty() {
		t.Error("path with segments reported empty")
	}
	if p.End() != (Point{10, 20}) {
		t.Errorf("End() = %v, want (10,20)", p.End())
	}
}

func TestPathEndAngle(t *testing.T) {
	tests := []struct {
		name  string
		build func() Path
		want  float64
	}{
		{
			"east line",
			func() Path {
				p := NewPath(Point{0, 0})
				p.LineTo(Point{10, 0})
				return p
			},
			0,
		},
		{
			"south line",
			func() Path {
				p := NewPath(Point{0, 0})
				p.LineTo(Point{0, 10})
				return p
			},
			math.Pi / 2,
		},
		{
			"quad tangent from control",
			func() Path {
				p := NewPath(Point{0, 0})
				p.QuadTo(Point{10, 0}, Point{10, 10})
				return p
			},
			math.Pi / 2, // tangent at t=1 points from control to end
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().EndAngle(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EndAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuadPoint(t *testing.T) {
	start := Point{0, 0}
	control := Point{5, 10}
	end := Point{10, 0}

	if got := QuadPoint(start, control, end, 0); got != start {
		t.Errorf("t=0: got %v, want start", got)
	}
	if got := QuadPoint(start, control, end, 1); got != end {
		t.Errorf("t=1: got %v, want end", got)
	}
	mid := QuadPoint(start, control, end, 0.5)
	if mid.X != 5 || mid.Y != 5 {
		t.Errorf("t=0.5: got %v, want (5,5)", mid)
	}
}

func TestPathFlattenSamplesCurves(t *testing.T) {
	p := NewPath(Point{0, 0})
	p.QuadTo(Point{5, 10}, Point{10, 0})

	points := p.Flatten(8)
	if len(points) != 9 {
		t.Fatalf("Flatten(8) produced %d points, want 9", len(points))
	}
	if points[0] != (Point{0, 0}) || points[8] != (Point{10, 0}) {
		t.Errorf("flattened endpoints wrong: %v .. %v", points[0], points[8])
	}
	// The curve must actually bow away from the chord.
	if points[4].Y <= 0 {
		t.Errorf("curve midpoint did not bow: %v", points[4])
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath(Point{10, 10})
	p.LineTo(Point{110, 10})
	p.LineTo(Point{110, 90})

	b := p.Bounds()
	want := Rect{Left: 10, Top: 10, Width: 100, Height: 80}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}
