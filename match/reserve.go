package match

import (
	"context"

	"github.com/stegoweave/gtal/sample"
	"github.com/stegoweave/gtal/spatial"
	"github.com/stegoweave/gtal/vertex"
)

// Reserve runs up to passes rounds of reserve matching: each round builds
// a fresh spatial.Index over the still-valid reserve vertices, finds
// cross-set candidate edges from every still-unmatched leftover sample to
// a reserve sample carrying the mod value the leftover needs, and commits
// a greedy matching pass over that bipartite edge set. Matched reserves
// are consumed (their IsValid flag is cleared by the swap) and do not
// reappear in later rounds.
//
// Unlike EdgeFinder's intra-batch search, the colour window here is
// symmetric on every axis: leftovers and reserves are disjoint sets, so
// there is no same-set double-counting to avoid with the vertex_id > u
// filter.
//
// Reserve returns whichever leftovers remain unmatched after passes
// rounds (or after reserves are exhausted, whichever comes first).
func Reserve(ctx context.Context, leftovers []*vertex.Vertex, reserves []*vertex.Vertex, distanceMax int, shift uint, passes int, mask byte) ([]*vertex.Vertex, error) {
	remaining := leftovers

	for pass := 0; pass < passes && len(remaining) > 0; pass++ {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return remaining, ctx.Err()
			default:
			}
		}

		live := filterValid(reserves)
		if len(live) == 0 {
			break
		}

		combined := make([]*vertex.Vertex, 0, len(remaining)+len(live))
		combined = append(combined, remaining...)
		combined = append(combined, live...)
		batch := vertex.NewBatch(combined)

		idx := spatial.BuildReserves(live, shift)
		findReserveEdges(batch, idx, len(remaining), distanceMax, shift)

		survivors := Greedy(batch, mask)
		remaining = onlyMessageBearing(survivors)
	}

	return remaining, nil
}

func filterValid(vs []*vertex.Vertex) []*vertex.Vertex {
	out := make([]*vertex.Vertex, 0, len(vs))
	for _, v := range vs {
		if v.IsValid {
			out = append(out, v)
		}
	}
	return out
}

func onlyMessageBearing(vs []*vertex.Vertex) []*vertex.Vertex {
	out := make([]*vertex.Vertex, 0, len(vs))
	for _, v := range vs {
		if v.IsMessageBearing {
			out = append(out, v)
		}
	}
	return out
}

// findReserveEdges registers an edge from every sample of every
// still-valid leftover vertex (combined batch indices [0, numLeftover))
// to every reserve sample in idx whose current mod value equals the
// leftover sample's target. Reserve vertex indices returned by idx are
// relative to the reserve-only slice idx was built from, so they are
// offset by numLeftover to land in the combined batch.
func findReserveEdges(batch *vertex.Batch, idx *spatial.Index, numLeftover int, distanceMax int, shift uint) {
	dimMax := 255 >> shift
	maxDelta := distanceMax >> shift

	for u := 0; u < numLeftover; u++ {
		vu := batch.Vertices[u]
		if !vu.IsValid {
			continue
		}
		for j, su := range vu.Samples {
			if !su.HasTarget {
				continue
			}
			findReserveMatchesForSample(batch, idx, u, j, su, numLeftover, dimMax, maxDelta)
		}
	}
}

func findReserveMatchesForSample(batch *vertex.Batch, idx *spatial.Index, u, j int, su *sample.Sample, numLeftover, dimMax, maxDelta int) {
	x0 := idx.Quantize(su.Values[0])
	y0 := idx.Quantize(su.Values[1])
	z0 := idx.Quantize(su.Values[2])

	key := spatial.Key{Mod: su.TargetModValue, Target: spatial.ReserveTargetSlot}

	for x := clamp(x0-maxDelta, 0, dimMax); x <= clamp(x0+maxDelta, 0, dimMax); x++ {
		for y := clamp(y0-maxDelta, 0, dimMax); y <= clamp(y0+maxDelta, 0, dimMax); y++ {
			for z := clamp(z0-maxDelta, 0, dimMax); z <= clamp(z0+maxDelta, 0, dimMax); z++ {
				key.X, key.Y, key.Z = x, y, z
				for _, ref := range idx.Lookup(key) {
					other := ref.VertexIdx + numLeftover
					sv := batch.Vertices[other].Samples[ref.SampleIdx]
					batch.AddEdge(u, other, sample.SquaredDistance(su, sv), j, ref.SampleIdx)
				}
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
