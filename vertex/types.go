package vertex

import (
	"errors"

	"github.com/stegoweave/gtal/sample"
)

// ErrCarrierTooSmall indicates the carrier cannot host as many
// message-bearing vertices as the payload requires.
var ErrCarrierTooSmall = errors.New("vertex: carrier too small for payload")

// Vertex owns exactly len(Samples) samples drawn via the permutation. It
// is message-bearing if it was assigned a chunk (IsMessageBearing), or a
// reserve otherwise.
type Vertex struct {
	// Samples are this vertex's owned samples, in draw order.
	Samples []*sample.Sample

	// Value is the cached aggregate mod value: (sum of sample mod
	// values) AND mask.
	Value byte

	// IsValid is cleared once the vertex has been consumed by a swap or
	// a direct adjustment.
	IsValid bool

	// IsMessageBearing distinguishes message vertices (which carry a
	// TargetModValue on every sample) from reserves.
	IsMessageBearing bool

	// EdgeIdx holds indices into the owning Batch's Edges arena,
	// cleared between batches.
	EdgeIdx []int

	// BatchIndex is this vertex's position within whichever Batch last
	// wrapped it via NewBatch. match works from Edge.U/V batch indices
	// directly and does not read it.
	BatchIndex int
}

// Edge is an unordered pair of vertex indices (within one Batch) plus the
// chosen pair of samples the swap would exchange. Weight is the squared
// colour distance between those two samples.
type Edge struct {
	U, V        int
	Weight      uint16
	SwapUSample int // sample index within vertex U
	SwapVSample int // sample index within vertex V
}

// Other returns the endpoint of e that is not u.
func (e Edge) Other(u int) int {
	if e.U == u {
		return e.V
	}
	return e.U
}

// Batch is the unit of work EdgeFinder and Matcher process together,
// bounded by vertices_per_matching. Edges live for exactly one batch.
type Batch struct {
	Vertices []*Vertex
	Edges    []Edge
}

// NewBatch wraps vs as a fresh batch with no edges, stamping each
// vertex's BatchIndex to its position in vs.
func NewBatch(vs []*Vertex) *Batch {
	for i, v := range vs {
		v.BatchIndex = i
	}
	return &Batch{Vertices: vs}
}

// AddEdge appends a new edge to the arena and registers it on both
// endpoints' EdgeIdx lists, returning the edge's index.
func (b *Batch) AddEdge(u, v int, weight uint16, swapU, swapV int) int {
	idx := len(b.Edges)
	b.Edges = append(b.Edges, Edge{U: u, V: v, Weight: weight, SwapUSample: swapU, SwapVSample: swapV})
	b.Vertices[u].EdgeIdx = append(b.Vertices[u].EdgeIdx, idx)
	b.Vertices[v].EdgeIdx = append(b.Vertices[v].EdgeIdx, idx)
	return idx
}

// ClearEdges drops every edge in the batch and empties each vertex's
// EdgeIdx list, in preparation for the next batch to reuse the
// Vertex pointers (reserves spanning batches, for instance).
func (b *Batch) ClearEdges() {
	b.Edges = b.Edges[:0]
	for _, v := range b.Vertices {
		v.EdgeIdx = v.EdgeIdx[:0]
	}
}
