// Package routing computes relationship paths between element rectangles.
// It supports direct, curved and orthogonal strategies, avoids obstacles
// during orthogonal routing, and de-overlaps bidirectional pairs and
// parallel edge groups with lateral offsets.
package routing

import "archdraw/diagram"

// Strategy selects the routing algorithm for a relationship.
type Strategy int

const (
	Direct Strategy = iota
	Curved
	Orthogonal
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Curved:
		return "curved"
	case Orthogonal:
		return "orthogonal"
	default:
		return "direct"
	}
}

// Parse maps a strategy name to a Strategy. Unknown or empty values fall
// back to Direct.
func Parse(name string) Strategy {
	switch name {
	case "curved":
		return Curved
	case "orthogonal":
		return Orthogonal
	default:
		return Direct
	}
}

// AsyncTag forces curved routing on any relationship carrying it,
// regardless of the style default.
const AsyncTag = "async"

// Select resolves the strategy for a relationship. Precedence: explicit
// per-relationship override, then the async tag, then the style default.
func Select(rel diagram.Relationship, style diagram.Style) Strategy {
	if rel.Routing != "" {
		return Parse(rel.Routing)
	}
	if rel.HasTag(AsyncTag) {
		return Curved
	}
	return Parse(style.Routing)
}
