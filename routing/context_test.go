package routing

import (
	"testing"

	"archdraw/diagram"
)

func rel(id, from, to string) diagram.Relationship {
	return diagram.Relationship{ID: id, SourceID: from, DestinationID: to}
}

func TestDetectBidirectionalIsSymmetric(t *testing.T) {
	rels := []diagram.Relationship{
		rel("1", "a", "b"),
		rel("2", "b", "a"),
		rel("3", "a", "c"),
		rel("4", "d", "d"), // self-relationships never pair
	}

	pairs := DetectBidirectional(rels)

	if pairs["1"] != "2" || pairs["2"] != "1" {
		t.Errorf("expected 1<->2 pairing, got %v", pairs)
	}
	if _, ok := pairs["3"]; ok {
		t.Error("unpaired relationship must not appear in the map")
	}
	if _, ok := pairs["4"]; ok {
		t.Error("self-relationship must not pair")
	}
	for a, b := range pairs {
		if pairs[b] != a {
			t.Errorf("pair map not symmetric: %s->%s but %s->%s", a, b, b, pairs[b])
		}
	}
}

func TestDetectBidirectionalPairsAtMostOnce(t *testing.T) {
	// Two A->B against one B->A: only one pair forms.
	rels := []diagram.Relationship{
		rel("1", "a", "b"),
		rel("2", "a", "b"),
		rel("3", "b", "a"),
	}

	pairs := DetectBidirectional(rels)

	if len(pairs) != 2 {
		t.Fatalf("expected exactly one pair (two entries), got %v", pairs)
	}
	if pairs["1"] != "3" || pairs["3"] != "1" {
		t.Errorf("first declared reversed pair should win: %v", pairs)
	}
}

func TestGroupParallelByUnorderedPair(t *testing.T) {
	rels := []diagram.Relationship{
		rel("1", "a", "b"),
		rel("2", "b", "a"),
		rel("3", "a", "b"),
		rel("4", "a", "c"),
	}

	groups := GroupParallel(rels)

	if _, ok := groups["4"]; ok {
		t.Error("singleton relationship must not be grouped")
	}
	for _, id := range []string{"1", "2", "3"} {
		if len(groups[id]) != 2 {
			t.Errorf("relationship %s should have 2 siblings, got %v", id, groups[id])
		}
	}
	// Symmetry: every member lists every other member.
	for id, siblings := range groups {
		for _, sib := range siblings {
			found := false
			for _, back := range groups[sib] {
				if back == id {
					found = true
				}
			}
			if !found {
				t.Errorf("group membership not symmetric: %s lists %s but not vice versa", id, sib)
			}
		}
	}
}

func TestLateralOffsetBidirectionalPair(t *testing.T) {
	rels := []diagram.Relationship{
		rel("fwd", "a", "b"),
		rel("back", "b", "a"),
	}
	ctx := BuildContext(rels)

	fwd := ctx.LateralOffset("fwd")
	back := ctx.LateralOffset("back")

	// Offsets are expressed in each edge's own perpendicular frame. The
	// reversed member's frame is mirrored, so equal own-frame values put
	// the two edges on opposite sides of the center line.
	if fwd != PairOffset || back != PairOffset {
		t.Errorf("pair offsets = %v/%v, want %v/%v", fwd, back, PairOffset, PairOffset)
	}
	if worldOffset(ctx, rels[0]) != -worldOffset(ctx, rels[1]) {
		t.Errorf("pair does not diverge in the shared frame: %v vs %v",
			worldOffset(ctx, rels[0]), worldOffset(ctx, rels[1]))
	}
}

// worldOffset translates an own-frame lateral offset into the canonical
// frame of the relationship's endpoint pair.
func worldOffset(ctx Context, r diagram.Relationship) float64 {
	off := ctx.LateralOffset(r.ID)
	if r.SourceID > r.DestinationID {
		return -off
	}
	return off
}

func TestLateralOffsetMixedDirectionFan(t *testing.T) {
	rels := []diagram.Relationship{
		rel("1", "a", "b"),
		rel("2", "a", "b"),
		rel("3", "b", "a"),
	}
	ctx := BuildContext(rels)

	// All three share one endpoint pair; their lanes must stay distinct
	// in the pair's canonical frame regardless of declared direction.
	lanes := make(map[float64]string)
	for _, r := range rels {
		lane := worldOffset(ctx, r)
		if prev, dup := lanes[lane]; dup {
			t.Errorf("relationships %s and %s share lane %v", prev, r.ID, lane)
		}
		lanes[lane] = r.ID
	}
}

func TestLateralOffsetParallelFan(t *testing.T) {
	rels := []diagram.Relationship{
		rel("1", "a", "b"),
		rel("2", "a", "b"),
		rel("3", "a", "b"),
	}
	ctx := BuildContext(rels)

	offsets := []float64{
		ctx.LateralOffset("1"),
		ctx.LateralOffset("2"),
		ctx.LateralOffset("3"),
	}

	want := []float64{-ParallelSpacing, 0, ParallelSpacing}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, offsets[i], want[i])
		}
	}

	// Symmetric fan: offsets sum to zero.
	if offsets[0]+offsets[1]+offsets[2] != 0 {
		t.Errorf("fan not symmetric: %v", offsets)
	}
}

func TestLateralOffsetSingletonIsZero(t *testing.T) {
	ctx := BuildContext([]diagram.Relationship{rel("only", "a", "b")})
	if got := ctx.LateralOffset("only"); got != 0 {
		t.Errorf("singleton offset = %v, want 0", got)
	}
}
