package spatial

import "github.com/stegoweave/gtal/vertex"

// Ref is a pointer into a batch: which vertex, and which of its samples.
type Ref struct {
	VertexIdx int
	SampleIdx int
}

// Key identifies one bucket: quantised colour channels plus the current
// and target mod value of the sample stored there.
type Key struct {
	X, Y, Z     int
	Mod, Target byte
}

// ReserveTargetSlot is the sentinel target value reserve samples are
// indexed under (reserves have no assigned target; spec.md §4.3).
const ReserveTargetSlot byte = 0

// Index is the sparse 5-D bucket grid over one batch's samples.
type Index struct {
	cells map[Key][]Ref
	shift uint
}

// New returns an empty Index quantising colour channels by shift bits
// (shift == distance_precision's exponent p).
func New(shift uint) *Index {
	return &Index{cells: make(map[Key][]Ref), shift: shift}
}

// Shift returns the quantisation exponent this index was built with.
func (idx *Index) Shift() uint { return idx.shift }

// Quantize right-shifts a channel byte by the index's shift.
func (idx *Index) Quantize(v byte) int {
	return int(v) >> idx.shift
}

// Insert registers ref under the cell selected by the quantised channel
// triple and the (mod, target) pair.
func (idx *Index) Insert(r, g, b byte, mod, target byte, ref Ref) {
	k := Key{idx.Quantize(r), idx.Quantize(g), idx.Quantize(b), mod, target}
	idx.cells[k] = append(idx.cells[k], ref)
}

// Lookup returns the (possibly empty) list of references stored under k.
// The returned slice must not be mutated by callers.
func (idx *Index) Lookup(k Key) []Ref {
	return idx.cells[k]
}

// Build populates an Index from every valid vertex's message-bearing
// samples in batch, indexed under their real TargetModValue. Reserve
// samples (no target) live in a separate keyspace built by
// BuildReserves and are never inserted here, so a mod-0 message sample
// can never collide with the ReserveTargetSlot sentinel and pull a
// reserve into the main matching loop (spec.md §4.3).
//
// Complexity: O(number of live, message-bearing samples in batch).
func Build(batch *vertex.Batch, shift uint) *Index {
	idx := New(shift)
	for vi, v := range batch.Vertices {
		if !v.IsValid {
			continue
		}
		for si, s := range v.Samples {
			if !s.HasTarget {
				continue
			}
			idx.Insert(s.Values[0], s.Values[1], s.Values[2], s.ModValue, s.TargetModValue, Ref{VertexIdx: vi, SampleIdx: si})
		}
	}
	return idx
}

// BuildReserves is Build specialised to a reserve vertex set: every
// sample is indexed by its current colour/mod value under
// ReserveTargetSlot, since reserves can supply any mod_value a leftover
// might need (spec.md §4.6).
func BuildReserves(reserves []*vertex.Vertex, shift uint) *Index {
	idx := New(shift)
	for vi, v := range reserves {
		if !v.IsValid {
			continue
		}
		for si, s := range v.Samples {
			idx.Insert(s.Values[0], s.Values[1], s.Values[2], s.ModValue, ReserveTargetSlot, Ref{VertexIdx: vi, SampleIdx: si})
		}
	}
	return idx
}
