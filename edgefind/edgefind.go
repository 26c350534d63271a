package edgefind

import (
	"context"

	"github.com/stegoweave/gtal/sample"
	"github.com/stegoweave/gtal/spatial"
	"github.com/stegoweave/gtal/vertex"
)

// DefaultProgressWeight is used when callers don't care about tuning how
// often progress ticks fire (one tick per ~1/20th of the batch).
const DefaultProgressWeight = 20

// Find populates batch.Edges with every candidate swap edge among the
// batch's still-valid, message-bearing samples, using idx for
// neighbourhood lookup. distanceMax is D in raw (unquantised) units.
//
// onTick, if non-nil, is invoked roughly every
// floor(len(batch.Vertices)/progressWeight) vertices with (done, total);
// a zero or negative progressWeight disables ticking. Cancellation is
// checked at the top of the outer vertex loop.
//
// Complexity: O(|V| · window size) expected, where window size is
// bounded by (max_delta+1)*(2*max_delta+1)^2 cells of typically small
// occupancy.
func Find(ctx context.Context, batch *vertex.Batch, idx *spatial.Index, distanceMax int, progressWeight int, onTick func(done, total int)) error {
	dimMax := 255 >> idx.Shift()
	maxDelta := distanceMax >> idx.Shift()
	total := len(batch.Vertices)

	tickEvery := 0
	if progressWeight > 0 && total > 0 {
		tickEvery = total / progressWeight
	}

	for u, vu := range batch.Vertices {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		if vu.IsValid {
			for j, su := range vu.Samples {
				if !su.HasTarget {
					continue // reserves carry no target; only handled by ReserveMatcher
				}
				findForSample(batch, idx, u, j, su, dimMax, maxDelta)
			}
		}

		if tickEvery > 0 && (u+1)%tickEvery == 0 && onTick != nil {
			onTick(u+1, total)
		}
	}

	return nil
}

// findForSample scans the quantised colour window around su (owned by
// vertex u, sample index j) and registers an edge for every valid
// candidate partner that advances both samples toward their targets.
func findForSample(batch *vertex.Batch, idx *spatial.Index, u, j int, su *sample.Sample, dimMax, maxDelta int) {
	x0 := idx.Quantize(su.Values[0])
	y0 := idx.Quantize(su.Values[1])
	z0 := idx.Quantize(su.Values[2])

	key := spatial.Key{Mod: su.TargetModValue, Target: su.ModValue}

	for x := x0; x <= x0+maxDelta; x++ {
		if x < 0 || x > dimMax {
			continue
		}
		sameColumn := x == x0
		for y := clamp(y0-maxDelta, 0, dimMax); y <= clamp(y0+maxDelta, 0, dimMax); y++ {
			for z := clamp(z0-maxDelta, 0, dimMax); z <= clamp(z0+maxDelta, 0, dimMax); z++ {
				key.X, key.Y, key.Z = x, y, z
				for _, ref := range idx.Lookup(key) {
					if ref.VertexIdx == u {
						continue
					}
					if sameColumn && ref.VertexIdx <= u {
						continue
					}
					registerEdge(batch, u, j, su, ref)
				}
			}
		}
	}
}

func registerEdge(batch *vertex.Batch, u, j int, su *sample.Sample, ref spatial.Ref) {
	sv := batch.Vertices[ref.VertexIdx].Samples[ref.SampleIdx]
	batch.AddEdge(u, ref.VertexIdx, sample.SquaredDistance(su, sv), j, ref.SampleIdx)
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
