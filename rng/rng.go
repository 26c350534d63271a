package rng

import (
	"errors"
	"math/rand"

	"github.com/dchest/siphash"
)

// ErrNegativeSize indicates a Permutation was requested over a negative
// sample count.
var ErrNegativeSize = errors.New("rng: negative sample count")

// sipKey0/sipKey1 are fixed domain-separation constants mixed with the
// caller's seed before hashing. They have no secrecy requirement; their
// only purpose is to decorrelate this permutation's keystream from any
// other SipHash consumer that might share the same process.
const (
	sipKey0 uint64 = 0x6774616c5f656d62 // "gtal_emb"
	sipKey1 uint64 = 0x656464696e675f21 // "edding_!"
)

// mixSeed folds an arbitrary int64 seed through SipHash-2-4 to obtain a
// well-distributed 64-bit value used to seed math/rand, so that small
// seed deltas (e.g. seed vs seed+1) produce uncorrelated permutations.
// rand.NewSource still reduces the mixed value modulo 2^31-1, so the
// number of distinct permutations is bounded by math/rand's own seed
// space.
func mixSeed(seed int64) int64 {
	var buf [8]byte
	u := uint64(seed)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	lo, _ := siphash.Hash128(sipKey0, sipKey1, buf[:])
	return int64(lo)
}

// Permutation draws indices in [0, N) without replacement, in an order
// that depends only on (seed, N). Both Embed and Extract consume exactly
// the prefix of draws they need.
type Permutation struct {
	order []int
	pos   int
}

// NewPermutation builds the full permutation of [0, n) up front and
// returns a cursor over it. n must be >= 0.
//
// Complexity: O(n) time, O(n) space.
func NewPermutation(seed int64, n int) (*Permutation, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	src := rand.New(rand.NewSource(mixSeed(seed)))
	shuffleInPlace(order, src)

	return &Permutation{order: order}, nil
}

// Next returns the next index in the permutation and true, or (0, false)
// once every index has been drawn.
func (p *Permutation) Next() (int, bool) {
	if p.pos >= len(p.order) {
		return 0, false
	}
	idx := p.order[p.pos]
	p.pos++
	return idx, true
}

// Remaining reports how many undrawn indices are left.
func (p *Permutation) Remaining() int {
	return len(p.order) - p.pos
}

// Reset rewinds the cursor to the start of the same permutation, without
// recomputing it, so the same order can be drawn again.
func (p *Permutation) Reset() {
	p.pos = 0
}

// shuffleInPlace performs an in-place Fisher-Yates shuffle of a using r.
func shuffleInPlace(a []int, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
