package diagram

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// View is one renderable diagram: the visible elements and relationships
// plus their placement hints. Styles are the per-element resolved styles;
// elements absent from the map fall back to the theme default.
type View struct {
	Name          string           `json:"name,omitempty"`
	Elements      []Element        `json:"elements"`
	Relationships []Relationship   `json:"relationships,omitempty"`
	Placements    []Placement      `json:"placements"`
	Styles        map[string]Style `json:"styles,omitempty"`
}

// Placement returns the placement hint for the given element id.
func (v *View) Placement(id string) (Placement, bool) {
	for _, p := range v.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// Element returns the element with the given id.
func (v *View) Element(id string) (Element, bool) {
	for _, e := range v.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Children returns the containment map: parent id to directly nested
// child ids, in declaration order.
func (v *View) Children() map[string][]string {
	children := make(map[string][]string)
	for _, e := range v.Elements {
		if e.ParentID != "" {
			children[e.ParentID] = append(children[e.ParentID], e.ID)
		}
	}
	return children
}

// ParseView decodes a view from JSON and validates its references.
func ParseView(data []byte) (*View, error) {
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse view: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	EnsureRelationshipIDs(&v)
	return &v, nil
}

// LoadView reads and parses a view file.
func LoadView(path string) (*View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load view: %w", err)
	}
	return ParseView(data)
}

// Validate checks structural integrity: unique element ids and relationship
// endpoints that refer to declared elements.
func (v *View) Validate() error {
	ids := make(map[string]bool, len(v.Elements))
	for _, e := range v.Elements {
		if e.ID == "" {
			return fmt.Errorf("element %q has no id", e.Name)
		}
		if ids[e.ID] {
			return fmt.Errorf("duplicate element id %q", e.ID)
		}
		ids[e.ID] = true
	}
	for _, e := range v.Elements {
		if e.ParentID != "" && !ids[e.ParentID] {
			return fmt.Errorf("element %q references unknown parent %q", e.ID, e.ParentID)
		}
	}
	for _, r := range v.Relationships {
		if !ids[r.SourceID] {
			return fmt.Errorf("relationship %q references unknown source %q", r.ID, r.SourceID)
		}
		if !ids[r.DestinationID] {
			return fmt.Errorf("relationship %q references unknown destination %q", r.ID, r.DestinationID)
		}
	}
	return nil
}

// EnsureRelationshipIDs assigns a fresh id to every relationship that has
// none, and reassigns all ids when duplicates are found. View files written
// by hand commonly omit relationship ids.
func EnsureRelationshipIDs(v *View) {
	seen := make(map[string]bool, len(v.Relationships))
	duplicate := false
	for _, r := range v.Relationships {
		if r.ID == "" {
			continue
		}
		if seen[r.ID] {
			duplicate = true
			break
		}
		seen[r.ID] = true
	}
	for i := range v.Relationships {
		if v.Relationships[i].ID == "" || duplicate {
			v.Relationships[i].ID = uuid.NewString()
		}
	}
}
