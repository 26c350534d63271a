package adjust

import (
	"math/rand"

	"github.com/stegoweave/gtal/vertex"
)

// One forces a single still-unmatched vertex to its target modular class
// by mutating one randomly chosen channel byte of one randomly chosen
// sample. modFactor is 2^b; mask is modFactor-1.
//
// The arithmetic guarantees success without retry: diff is the exact
// amount u's aggregate mod value must advance, and the overflow branch
// keeps the applied delta's effect on (Σ values) mod mod_factor
// unchanged even when the direct add would carry past 255.
func One(u *vertex.Vertex, modFactor int, mask byte, r *rand.Rand) {
	j := r.Intn(len(u.Samples))
	c := r.Intn(sampleWidth(u, j))

	s := u.Samples[j]
	diff := byte((modFactor - int(s.ModValue) + int(s.TargetModValue)) & int(mask))

	cur := s.Values[c]
	if int(cur)+int(diff) > 255 {
		s.Values[c] = cur - byte(modFactor-int(diff))
	} else {
		s.Values[c] = cur + diff
	}

	s.Recompute(mask)
	recomputeVertexValue(u, mask)
	u.IsValid = false
}

// All runs One over every vertex in leftovers, using r for every draw.
func All(leftovers []*vertex.Vertex, modFactor int, mask byte, r *rand.Rand) {
	for _, u := range leftovers {
		One(u, modFactor, mask, r)
	}
}

func sampleWidth(u *vertex.Vertex, j int) int {
	return len(u.Samples[j].Values)
}

func recomputeVertexValue(u *vertex.Vertex, mask byte) {
	var sum byte
	for _, s := range u.Samples {
		sum += s.ModValue
	}
	u.Value = sum & mask
}
