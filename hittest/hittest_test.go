package hittest

import (
	"testing"

	"archdraw/diagram"
	"archdraw/geometry"
	"archdraw/routing"
)

func box(id string, r geometry.Rect, z int) Target {
	return Target{ID: id, Rect: r, Shape: diagram.ShapeBox, Z: z}
}

func TestPointHitsRelationshipAtMidpoint(t *testing.T) {
	src := geometry.NewRect(10, 10, 100, 80)
	dst := geometry.NewRect(200, 150, 100, 80)
	rt := routing.NewRouter()
	path := rt.Route(
		diagram.Relationship{ID: "r1", SourceID: "a", DestinationID: "b"},
		src, dst, routing.Direct, nil, 0,
	)

	elements := []Target{box("a", src, 0), box("b", dst, 0)}
	paths := []PathTarget{{ID: "r1", Path: path}}

	mid := path.Start.Midpoint(path.End())
	got := Point(mid, elements, paths, 10)
	if got.Kind != KindRelationship || got.ID != "r1" {
		t.Errorf("midpoint hit = %+v, want relationship r1", got)
	}

	far := mid.Add(geometry.Point{X: 500, Y: 0})
	if got := Point(far, elements, paths, 10); got != NoHit {
		t.Errorf("distant point hit = %+v, want no hit", got)
	}
}

func TestPointTopmostElementWins(t *testing.T) {
	outer := box("boundary", geometry.NewRect(0, 0, 400, 300), 0)
	inner := box("service", geometry.NewRect(100, 100, 100, 80), 1)

	got := Point(geometry.Point{X: 150, Y: 140}, []Target{outer, inner}, nil, 10)
	if got.ID != "service" {
		t.Errorf("hit = %+v, want the nested (topmost) element", got)
	}

	got = Point(geometry.Point{X: 20, Y: 20}, []Target{outer, inner}, nil, 10)
	if got.ID != "boundary" {
		t.Errorf("hit = %+v, want the container outside the nested child", got)
	}
}

func TestPointElementBeatsRelationship(t *testing.T) {
	el := box("a", geometry.NewRect(0, 0, 100, 100), 0)
	p := geometry.NewPath(geometry.Point{X: 0, Y: 50})
	p.LineTo(geometry.Point{X: 100, Y: 50})

	got := Point(geometry.Point{X: 50, Y: 50}, []Target{el}, []PathTarget{{ID: "r", Path: p}}, 10)
	if got.Kind != KindElement {
		t.Errorf("hit = %+v, element should win over a path crossing it", got)
	}
}

func TestPointEllipseShape(t *testing.T) {
	el := Target{ID: "e", Rect: geometry.NewRect(0, 0, 100, 50), Shape: diagram.ShapeEllipse}

	if got := Point(geometry.Point{X: 50, Y: 25}, []Target{el}, nil, 0); got.ID != "e" {
		t.Errorf("ellipse center should hit, got %+v", got)
	}
	// The rectangle corner lies outside the inscribed ellipse.
	if got := Point(geometry.Point{X: 2, Y: 2}, []Target{el}, nil, 0); got != NoHit {
		t.Errorf("corner should miss the ellipse, got %+v", got)
	}
}

func TestPointCurvedPathUsesFlattenedGeometry(t *testing.T) {
	p := geometry.NewPath(geometry.Point{X: 0, Y: 0})
	p.QuadTo(geometry.Point{X: 50, Y: 60}, geometry.Point{X: 100, Y: 0})

	// The curve's apex is near (50, 30); the chord midpoint (50, 0) is far.
	got := Point(geometry.Point{X: 50, Y: 30}, nil, []PathTarget{{ID: "c", Path: p}}, 5)
	if got.ID != "c" {
		t.Errorf("apex should hit the curve, got %+v", got)
	}
	if got := Point(geometry.Point{X: 50, Y: 55}, nil, []PathTarget{{ID: "c", Path: p}}, 5); got != NoHit {
		t.Errorf("control point itself should not hit, got %+v", got)
	}
}

func TestPointNearestRelationshipWins(t *testing.T) {
	near := geometry.NewPath(geometry.Point{X: 0, Y: 10})
	near.LineTo(geometry.Point{X: 100, Y: 10})
	farther := geometry.NewPath(geometry.Point{X: 0, Y: 18})
	farther.LineTo(geometry.Point{X: 100, Y: 18})

	paths := []PathTarget{{ID: "far", Path: farther}, {ID: "near", Path: near}}
	got := Point(geometry.Point{X: 50, Y: 8}, nil, paths, 20)
	if got.ID != "near" {
		t.Errorf("nearest path should win, got %+v", got)
	}
}

func TestRegionFullContainmentForElements(t *testing.T) {
	inside := box("inside", geometry.NewRect(20, 20, 50, 50), 0)
	straddling := box("straddling", geometry.NewRect(80, 20, 60, 50), 0)
	outside := box("outside", geometry.NewRect(300, 300, 50, 50), 0)

	res := Region(geometry.NewRect(0, 0, 100, 100), []Target{inside, straddling, outside}, nil)

	if len(res.ElementIDs) != 1 || res.ElementIDs[0] != "inside" {
		t.Errorf("region elements = %v, want only the fully contained one", res.ElementIDs)
	}
}

func TestRegionPartialIntersectionForRelationships(t *testing.T) {
	crossing := geometry.NewPath(geometry.Point{X: -50, Y: 50})
	crossing.LineTo(geometry.Point{X: 200, Y: 50})
	missing := geometry.NewPath(geometry.Point{X: -50, Y: 500})
	missing.LineTo(geometry.Point{X: 200, Y: 500})

	res := Region(geometry.NewRect(0, 0, 100, 100), nil, []PathTarget{
		{ID: "crossing", Path: crossing},
		{ID: "missing", Path: missing},
	})

	if len(res.RelationshipIDs) != 1 || res.RelationshipIDs[0] != "crossing" {
		t.Errorf("region relationships = %v, want only the crossing path", res.RelationshipIDs)
	}
}

func TestNoHitForValidNonIntersectingInput(t *testing.T) {
	if got := Point(geometry.Point{X: 1e9, Y: 1e9}, nil, nil, 10); got != NoHit {
		t.Errorf("empty scene should report no hit, got %+v", got)
	}
	res := Region(geometry.NewRect(0, 0, 1, 1), nil, nil)
	if len(res.ElementIDs) != 0 || len(res.RelationshipIDs) != 0 {
		t.Errorf("empty scene region selection not empty: %+v", res)
	}
}
