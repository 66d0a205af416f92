package routing

import (
	"sort"

	"archdraw/diagram"
)

// Lateral offset constants for edge de-overlapping.
const (
	// PairOffset is the fixed perpendicular offset applied to each member
	// of a bidirectional pair, with opposite signs.
	PairOffset = 24.0
	// ParallelSpacing is the fan spacing between members of a parallel
	// group sharing the same endpoint pair.
	ParallelSpacing = 18.0
)

// Context carries the per-pass relationship disambiguation maps: which
// relationships form bidirectional pairs and which share an endpoint pair.
// It is rebuilt for every render pass and discarded afterwards.
type Context struct {
	// Bidirectional maps a relationship id to its reversed partner.
	// Symmetric: if A maps to B then B maps to A.
	Bidirectional map[string]string
	// Parallel maps a relationship id to its siblings: the other
	// relationships connecting the same unordered endpoint pair.
	// Membership is symmetric across the group.
	Parallel map[string][]string

	order map[string]int
	// reversed marks relationships declared against the canonical
	// direction of their endpoint pair (SourceID > DestinationID). Their
	// perpendicular frame is mirrored, so lateral offsets are negated to
	// keep the whole group in one shared frame.
	reversed map[string]bool
}

// BuildContext scans the relationships once and produces the pair and
// group maps. Self-relationships never pair or group.
func BuildContext(rels []diagram.Relationship) Context {
	ctx := Context{
		Bidirectional: DetectBidirectional(rels),
		Parallel:      GroupParallel(rels),
		order:         make(map[string]int, len(rels)),
		reversed:      make(map[string]bool, len(rels)),
	}
	for i, r := range rels {
		ctx.order[r.ID] = i
		ctx.reversed[r.ID] = r.SourceID > r.DestinationID
	}
	return ctx
}

// DetectBidirectional pairs relationships whose endpoints are mutual
// reverses. Each relationship pairs with at most one partner; extra
// reversed duplicates stay unpaired and are handled as parallel siblings.
func DetectBidirectional(rels []diagram.Relationship) map[string]string {
	pairs := make(map[string]string)
	for i, a := range rels {
		if a.IsSelf() {
			continue
		}
		if _, taken := pairs[a.ID]; taken {
			continue
		}
		for _, b := range rels[i+1:] {
			if _, taken := pairs[b.ID]; taken {
				continue
			}
			if a.SourceID == b.DestinationID && a.DestinationID == b.SourceID {
				pairs[a.ID] = b.ID
				pairs[b.ID] = a.ID
				break
			}
		}
	}
	return pairs
}

// GroupParallel groups relationships by unordered endpoint pair. The
// resulting map lists, for every member of a group of two or more, the ids
// of its siblings in declaration order.
func GroupParallel(rels []diagram.Relationship) map[string][]string {
	byKey := make(map[string][]string)
	for _, r := range rels {
		if r.IsSelf() {
			continue
		}
		byKey[r.EndpointKey()] = append(byKey[r.EndpointKey()], r.ID)
	}

	groups := make(map[string][]string)
	for _, ids := range byKey {
		if len(ids) < 2 {
			continue
		}
		for _, id := range ids {
			siblings := make([]string, 0, len(ids)-1)
			for _, other := range ids {
				if other != id {
					siblings = append(siblings, other)
				}
			}
			groups[id] = siblings
		}
	}
	return groups
}

// LateralOffset returns the perpendicular offset a relationship's path
// should receive so that edges sharing endpoints visually diverge.
//
// A bidirectional pair gets the fixed PairOffset with signs alternating by
// declaration order. Larger parallel groups fan out symmetrically around
// the direct line at ParallelSpacing intervals.
//
// Offsets are assigned in the canonical frame of the unordered endpoint
// pair and translated into each relationship's own frame: a member routed
// against the canonical direction sees a mirrored perpendicular, so its
// offset is negated. Without the translation an opposing pair's signs
// cancel and both edges land on the same line.
func (c Context) LateralOffset(id string) float64 {
	siblings, grouped := c.Parallel[id]
	if !grouped {
		return 0
	}

	group := append([]string{id}, siblings...)
	sort.Slice(group, func(i, j int) bool {
		return c.order[group[i]] < c.order[group[j]]
	})

	offset := 0.0
	if pair, partner := len(group) == 2, c.Bidirectional[id]; pair && (group[0] == partner || group[1] == partner) {
		offset = PairOffset
		if group[1] == id {
			offset = -PairOffset
		}
	} else {
		idx := 0
		for i, member := range group {
			if member == id {
				idx = i
				break
			}
		}
		offset = (float64(idx) - float64(len(group)-1)/2) * ParallelSpacing
	}

	if c.reversed[id] {
		offset = -offset
	}
	return offset
}
