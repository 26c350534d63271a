package vertex

import (
	"github.com/stegoweave/gtal/rng"
	"github.com/stegoweave/gtal/sample"
)

// Build consumes perm to pack samplesPerVertex consecutive drawn samples
// into each of floor(view.Len()/samplesPerVertex) vertices, in draw
// order. The first len(chunks) vertices become message-bearing: every
// contained sample receives the same TargetModValue, computed so that
// the vertex's aggregate mod value would become chunks[i] once any one
// of its samples reaches its target (spec.md §4.2 step 4).
//
// Returns ErrCarrierTooSmall if len(chunks) exceeds the number of
// vertices the carrier can host.
//
// Complexity: O(view.Len()) time and space.
func Build(view *sample.View, perm *rng.Permutation, chunks []byte, samplesPerVertex int, modFactor int, mask byte) ([]*Vertex, error) {
	total := view.Len() / samplesPerVertex
	if len(chunks) > total {
		return nil, ErrCarrierTooSmall
	}

	vertices := make([]*Vertex, total)
	for i := 0; i < total; i++ {
		v := &Vertex{
			Samples: make([]*sample.Sample, samplesPerVertex),
			IsValid: true,
		}

		var sum byte
		for j := 0; j < samplesPerVertex; j++ {
			idx, ok := perm.Next()
			if !ok {
				// Unreachable given total was derived from view.Len(),
				// but guarded defensively rather than indexing OOB.
				return nil, ErrCarrierTooSmall
			}
			s := view.At(idx)
			v.Samples[j] = s
			sum += s.ModValue
		}
		v.Value = sum & mask

		if i < len(chunks) {
			v.IsMessageBearing = true
			delta := byte((int(modFactor) + int(chunks[i]) - int(v.Value)) & int(mask))
			for _, s := range v.Samples {
				s.TargetModValue = (s.ModValue + delta) & mask
				s.HasTarget = true
			}
		}

		vertices[i] = v
	}

	return vertices, nil
}
