// Package diagram defines the model records the geometry engine consumes:
// elements, relationships, placements and resolved styles. Records are
// immutable value types; mutation is expressed as copy-with-change methods
// that return a new value.
package diagram

import "slices"

// Element is a named node in a diagram: a person, system, container or
// component. An element with a non-empty ParentID is nested inside another
// element, which is rendered as a boundary around its children.
type Element struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Technology  string   `json:"technology,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ParentID    string   `json:"parentId,omitempty"`
}

// HasTag reports whether the element carries the given tag.
func (e Element) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// WithName returns a copy of the element with the name replaced.
func (e Element) WithName(name string) Element {
	e.Name = name
	e.Tags = slices.Clone(e.Tags)
	return e
}

// WithParent returns a copy of the element nested under parentID.
func (e Element) WithParent(parentID string) Element {
	e.ParentID = parentID
	e.Tags = slices.Clone(e.Tags)
	return e
}

// WithTags returns a copy of the element with the tag list replaced.
func (e Element) WithTags(tags ...string) Element {
	e.Tags = slices.Clone(tags)
	return e
}

// Relationship is a directed connection between two elements. A relationship
// whose SourceID equals its DestinationID is a self-relationship and is
// routed as a loop.
type Relationship struct {
	ID            string   `json:"id"`
	SourceID      string   `json:"sourceId"`
	DestinationID string   `json:"destinationId"`
	Description   string   `json:"description,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	// Routing overrides the style-level routing default when non-empty.
	// Recognized values are "direct", "curved" and "orthogonal".
	Routing string `json:"routing,omitempty"`
}

// IsSelf reports whether source and destination are the same element.
func (r Relationship) IsSelf() bool {
	return r.SourceID == r.DestinationID
}

// HasTag reports whether the relationship carries the given tag.
func (r Relationship) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// WithRouting returns a copy of the relationship with the routing override set.
func (r Relationship) WithRouting(routing string) Relationship {
	r.Routing = routing
	r.Tags = slices.Clone(r.Tags)
	return r
}

// EndpointKey returns a direction-independent key identifying the pair of
// elements this relationship connects. Relationships sharing a key form a
// parallel group.
func (r Relationship) EndpointKey() string {
	if r.SourceID <= r.DestinationID {
		return r.SourceID + "\x00" + r.DestinationID
	}
	return r.DestinationID + "\x00" + r.SourceID
}

// Placement supplies per-element layout hints: an origin and an optional
// explicit size. Zero Width/Height means the size is unset and will be
// derived from the element's rendered text or the shape default.
type Placement struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// HasExplicitSize reports whether the placement carries an authoritative size.
func (p Placement) HasExplicitSize() bool {
	return p.Width > 0 && p.Height > 0
}

// WithPosition returns a copy of the placement moved to (x, y).
func (p Placement) WithPosition(x, y float64) Placement {
	p.X = x
	p.Y = y
	return p
}

// WithSize returns a copy of the placement with an explicit size.
func (p Placement) WithSize(width, height float64) Placement {
	p.Width = width
	p.Height = height
	return p
}
