package bounds

import (
	"strings"
	"testing"

	"archdraw/diagram"
	"archdraw/geometry"
)

func TestCalculateExplicitSizeWins(t *testing.T) {
	el := diagram.Element{ID: "a", Name: "A very long element name that would size wider"}
	pl := diagram.Placement{ID: "a", X: 10, Y: 20, Width: 120, Height: 60}

	r := Calculate(el, pl, diagram.Style{})

	if r.Left != 10 || r.Top != 20 || r.Width != 120 || r.Height != 60 {
		t.Errorf("explicit size not honored: %+v", r)
	}
}

func TestCalculateDefaultsWhenSizeUnset(t *testing.T) {
	el := diagram.Element{ID: "a", Name: "API"}
	pl := diagram.Placement{ID: "a", X: 100, Y: 200}

	r := Calculate(el, pl, diagram.Style{})

	if r.Width != DefaultWidth || r.Height != DefaultHeight {
		t.Errorf("short label should use shape default %vx%v, got %vx%v",
			DefaultWidth, DefaultHeight, r.Width, r.Height)
	}
	if r.Left != 100 || r.Top != 200 {
		t.Errorf("origin not taken from placement: %+v", r)
	}
}

func TestCalculateGrowsWithLongText(t *testing.T) {
	el := diagram.Element{ID: "a", Name: strings.Repeat("x", 60)}
	pl := diagram.Placement{ID: "a"}

	r := Calculate(el, pl, diagram.Style{FontSize: 14})

	if r.Width <= DefaultWidth {
		t.Errorf("60-char name should exceed the default width, got %v", r.Width)
	}
	want := TextWidth(el.Name, 14) + 2*HorizontalPadding
	if r.Width != want {
		t.Errorf("width = %v, want text width plus padding %v", r.Width, want)
	}
}

func TestCalculateMetadataAndDescriptionAddLines(t *testing.T) {
	el := diagram.Element{
		ID:          "a",
		Name:        "API",
		Technology:  "Go",
		Description: strings.Repeat("d", 80),
	}
	pl := diagram.Placement{ID: "a"}

	plain := Calculate(el, pl, diagram.Style{})
	full := Calculate(el, pl, diagram.Style{ShowMetadata: true, ShowDescription: true})

	if full.Width <= plain.Width {
		t.Errorf("long description should widen the box: %v vs %v", full.Width, plain.Width)
	}
}

func TestCalculatePersonReservesHeadroom(t *testing.T) {
	el := diagram.Element{ID: "u", Name: strings.Repeat("n", 40)}
	pl := diagram.Placement{ID: "u"}

	box := Calculate(el, pl, diagram.Style{Shape: diagram.ShapeBox, ShowDescription: true})
	person := Calculate(el, pl, diagram.Style{Shape: diagram.ShapePerson, ShowDescription: true})

	if person.Height < box.Height {
		t.Errorf("person shape should never be shorter than box: %v vs %v", person.Height, box.Height)
	}
}

func TestCalculatePersonHeadroomAboveDefaultFloor(t *testing.T) {
	el := diagram.Element{ID: "u", Name: "U"}
	pl := diagram.Placement{ID: "u"}

	r := Calculate(el, pl, diagram.Style{Shape: diagram.ShapePerson})

	// Short labels floor to the default height first; the head allowance
	// then sits fully on top instead of being swallowed by the floor.
	want := DefaultHeight + PersonHeadAllowance
	if r.Height != want {
		t.Errorf("short-label person height = %v, want %v", r.Height, want)
	}
}

func TestCalculateNeverDegenerate(t *testing.T) {
	tests := []struct {
		name string
		el   diagram.Element
		pl   diagram.Placement
	}{
		{"empty name", diagram.Element{ID: "a"}, diagram.Placement{ID: "a"}},
		{"negative explicit size", diagram.Element{ID: "a", Name: "A"}, diagram.Placement{ID: "a", Width: -5, Height: -5}},
		{"zero font size", diagram.Element{ID: "a", Name: "A"}, diagram.Placement{ID: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Calculate(tt.el, tt.pl, diagram.Style{})
			if r.IsDegenerate() {
				t.Errorf("degenerate rectangle produced: %+v", r)
			}
		})
	}
}

func TestCalculateIsPure(t *testing.T) {
	el := diagram.Element{ID: "a", Name: "Service", Technology: "Go"}
	pl := diagram.Placement{ID: "a", X: 5, Y: 5}
	st := diagram.Style{ShowMetadata: true, FontSize: 12}

	first := Calculate(el, pl, st)
	for i := 0; i < 10; i++ {
		if got := Calculate(el, pl, st); got != first {
			t.Fatalf("Calculate not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestCacheObstaclesExcludesEndpoints(t *testing.T) {
	c := NewCache()
	c.Set("a", geometry.NewRect(0, 0, 10, 10))
	c.Set("b", geometry.NewRect(20, 0, 10, 10))
	c.Set("c", geometry.NewRect(40, 0, 10, 10))

	obstacles := c.Obstacles("a", "b")
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].Left != 40 {
		t.Errorf("wrong obstacle survived exclusion: %+v", obstacles[0])
	}
}
