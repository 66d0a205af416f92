package bounds

import (
	"sort"

	"archdraw/geometry"
)

// Cache maps element ids to their definitive rectangles for one layout pass.
// It is rebuilt before relationship routing begins and discarded afterwards;
// routing treats every entry other than a relationship's own endpoints as an
// obstacle. The cache is not safe for concurrent mutation, which the
// single-writer pass ordering makes a non-issue.
type Cache struct {
	rects map[string]geometry.Rect
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{rects: make(map[string]geometry.Rect)}
}

// Set stores the rectangle for an element, replacing any previous entry.
func (c *Cache) Set(id string, r geometry.Rect) {
	c.rects[id] = r
}

// Get returns the rectangle for an element.
func (c *Cache) Get(id string) (geometry.Rect, bool) {
	r, ok := c.rects[id]
	return r, ok
}

// Len returns the number of cached rectangles.
func (c *Cache) Len() int {
	return len(c.rects)
}

// IDs returns all cached element ids in sorted order.
func (c *Cache) IDs() []string {
	ids := make([]string, 0, len(c.rects))
	for id := range c.rects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Obstacles returns every cached rectangle except those belonging to the
// excluded ids, in sorted-id order so routing is deterministic.
func (c *Cache) Obstacles(exclude ...string) []geometry.Rect {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var rects []geometry.Rect
	for _, id := range c.IDs() {
		if !skip[id] {
			rects = append(rects, c.rects[id])
		}
	}
	return rects
}
