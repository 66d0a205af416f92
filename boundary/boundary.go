// Package boundary computes enclosing rectangles for container elements.
// A boundary is the smallest rectangle containing every directly or
// transitively nested child, expanded by padding; nesting is arbitrary
// depth and cyclic containment is detected rather than recursed into.
package boundary

import (
	"archdraw/bounds"
	"archdraw/geometry"
)

// DefaultPadding is the space between a boundary edge and its children.
const DefaultPadding = 20.0

// FromChildren returns the smallest rectangle containing every child,
// expanded by padding on all four sides. An empty child list yields the
// shape default size so a childless container still renders.
func FromChildren(children []geometry.Rect, padding float64) geometry.Rect {
	if len(children) == 0 {
		return geometry.NewRect(0, 0, bounds.DefaultWidth, bounds.DefaultHeight)
	}
	r := children[0]
	for _, c := range children[1:] {
		r = r.Union(c)
	}
	return r.Expand(padding)
}

// Result carries the outcome of a hierarchy computation.
type Result struct {
	// Rect is the boundary of the requested root. When a cycle was hit
	// this is the best-known partial boundary.
	Rect geometry.Rect
	// Levels maps each visited element id to its nesting depth, root = 0.
	// Rendering uses the depth to pick a stroke pattern per level.
	Levels map[string]int
	// Cycles lists ids whose containment edges were dropped because they
	// closed a cycle. Empty for well-formed input.
	Cycles []string
}

// node is one arena entry of the containment tree.
type node struct {
	id       string
	children []int
}

// Hierarchy computes the boundary for rootID and all nested containers,
// bottom-up, writing each computed container rectangle back into the cache
// so later routing sees containers as obstacles too. Leaf rectangles must
// already be cached; containers whose rectangle is missing are derived
// entirely from their children.
//
// The containment tree is built as an arena with an explicit stack, so
// malformed (cyclic) input cannot blow the goroutine stack: an edge that
// would revisit an id on the current path is dropped and reported.
func Hierarchy(cache *bounds.Cache, children map[string][]string, rootID string, padding float64) Result {
	res := Result{Levels: make(map[string]int)}

	arena, cycles := buildArena(children, rootID)
	res.Cycles = cycles
	if len(arena) == 0 {
		res.Rect = geometry.NewRect(0, 0, bounds.DefaultWidth, bounds.DefaultHeight)
		return res
	}

	// Iterative post-order: children before parents.
	type frame struct {
		idx   int
		level int
		next  int
	}
	stack := []frame{{idx: 0}}
	res.Levels[rootID] = 0

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := arena[f.idx]

		if f.next < len(n.children) {
			child := n.children[f.next]
			f.next++
			res.Levels[arena[child].id] = f.level + 1
			stack = append(stack, frame{idx: child, level: f.level + 1})
			continue
		}
		stack = stack[:len(stack)-1]

		if len(n.children) == 0 {
			// Leaf: keep the cached rectangle, or give an unplaced
			// leaf the default size so parents stay non-degenerate.
			if _, ok := cache.Get(n.id); !ok {
				cache.Set(n.id, geometry.NewRect(0, 0, bounds.DefaultWidth, bounds.DefaultHeight))
			}
			continue
		}

		rects := make([]geometry.Rect, 0, len(n.children))
		for _, child := range n.children {
			if r, ok := cache.Get(arena[child].id); ok {
				rects = append(rects, r)
			}
		}
		cache.Set(n.id, FromChildren(rects, padding))
	}

	res.Rect, _ = cache.Get(rootID)
	return res
}

// buildArena flattens the containment map into an arena rooted at rootID.
// Ids already on the path from the root are cycle closures and are skipped.
func buildArena(children map[string][]string, rootID string) ([]node, []string) {
	var arena []node
	var cycles []string
	onPath := make(map[string]bool)

	var build func(id string) int
	build = func(id string) int {
		idx := len(arena)
		arena = append(arena, node{id: id})
		onPath[id] = true
		for _, childID := range children[id] {
			if onPath[childID] {
				cycles = append(cycles, childID)
				continue
			}
			childIdx := build(childID)
			arena[idx].children = append(arena[idx].children, childIdx)
		}
		onPath[id] = false
		return idx
	}

	// The recursion above is bounded by the visited-set: each id enters
	// the arena at most once per path, so depth is at most the number of
	// distinct elements.
	build(rootID)
	return arena, cycles
}
