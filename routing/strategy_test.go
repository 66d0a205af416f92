package routing

import (
	"testing"

	"archdraw/diagram"
)

func TestParseFallsBackToDirect(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"direct", Direct},
		{"curved", Curved},
		{"orthogonal", Orthogonal},
		{"", Direct},
		{"zigzag", Direct},
		{"CURVED", Direct}, // names are case-sensitive
	}

	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectPrecedence(t *testing.T) {
	style := diagram.Style{Routing: "orthogonal"}

	tests := []struct {
		name string
		rel  diagram.Relationship
		want Strategy
	}{
		{
			"style default applies",
			diagram.Relationship{ID: "1", SourceID: "a", DestinationID: "b"},
			Orthogonal,
		},
		{
			"async tag forces curved",
			diagram.Relationship{ID: "2", SourceID: "a", DestinationID: "b", Tags: []string{"async"}},
			Curved,
		},
		{
			"explicit override beats tag",
			diagram.Relationship{ID: "3", SourceID: "a", DestinationID: "b", Tags: []string{"async"}, Routing: "direct"},
			Direct,
		},
		{
			"unknown override falls back to direct",
			diagram.Relationship{ID: "4", SourceID: "a", DestinationID: "b", Routing: "bogus"},
			Direct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.rel, style); got != tt.want {
				t.Errorf("Select = %v, want %v", got, tt.want)
			}
		})
	}
}
