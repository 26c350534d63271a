package match

import (
	"sort"

	"github.com/stegoweave/gtal/vertex"
)

// Greedy performs a greedy minimum-weight matching over batch's current
// edge set: vertices are visited in ascending edge-degree order (ties
// broken by original position — a stable sort), and each still-valid
// vertex takes its lightest edge to a still-valid partner, committing
// the sample swap and invalidating both endpoints. Vertices for which no
// edge could be committed are returned as leftovers, in visiting order.
//
// batch.Edges is cleared before returning, per spec.md §4.5 step 3.
//
// Complexity: O(V log V + E log E) for the two sorts, O(V + E) for the
// scan.
func Greedy(batch *vertex.Batch, mask byte) []*vertex.Vertex {
	n := len(batch.Vertices)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(batch.Vertices[order[i]].EdgeIdx) < len(batch.Vertices[order[j]].EdgeIdx)
	})

	var leftover []*vertex.Vertex
	for _, u := range order {
		vu := batch.Vertices[u]
		if !vu.IsValid {
			continue
		}

		if !tryMatch(batch, u, mask) {
			leftover = append(leftover, vu)
		}
	}

	batch.ClearEdges()
	return leftover
}

// tryMatch sorts u's edges ascending by weight and commits the first one
// whose other endpoint is still valid, returning whether a match was
// made.
func tryMatch(batch *vertex.Batch, u int, mask byte) bool {
	edgeIdx := append([]int(nil), batch.Vertices[u].EdgeIdx...)
	sort.Slice(edgeIdx, func(i, j int) bool {
		return batch.Edges[edgeIdx[i]].Weight < batch.Edges[edgeIdx[j]].Weight
	})

	for _, ei := range edgeIdx {
		e := batch.Edges[ei]
		other := e.Other(u)
		if other == u {
			continue
		}
		vOther := batch.Vertices[other]
		if !vOther.IsValid {
			continue
		}

		applySwap(batch, u, other, e, mask)
		batch.Vertices[u].IsValid = false
		vOther.IsValid = false
		return true
	}

	return false
}

// applySwap exchanges the two samples an edge names between its
// endpoints and recomputes both samples' mod values.
func applySwap(batch *vertex.Batch, u, other int, e vertex.Edge, mask byte) {
	mySample, otherSample := e.SwapUSample, e.SwapVSample
	if e.U != u {
		mySample, otherSample = e.SwapVSample, e.SwapUSample
	}

	su := batch.Vertices[u].Samples[mySample]
	sv := batch.Vertices[other].Samples[otherSample]
	su.Values, sv.Values = sv.Values, su.Values
	su.Recompute(mask)
	sv.Recompute(mask)
}
