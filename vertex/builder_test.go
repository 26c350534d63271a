package vertex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/rng"
	"github.com/stegoweave/gtal/sample"
	"github.com/stegoweave/gtal/vertex"
)

func newView(t *testing.T, n int, mask byte) *sample.View {
	t.Helper()
	buf := make([]byte, n*3)
	for i := range buf {
		buf[i] = byte(i * 7 % 256)
	}
	v, err := sample.New(buf, mask)
	require.NoError(t, err)
	return v
}

func TestBuild_SplitsMessageAndReserveVertices(t *testing.T) {
	require := require.New(t)

	const mask = 0x03
	v := newView(t, 12, mask) // 12 samples, s=2 -> 6 vertices
	perm, err := rng.NewPermutation(42, v.Len())
	require.NoError(err)

	chunks := []byte{1, 2} // 2 message-bearing vertices, 4 reserves
	vertices, err := vertex.Build(v, perm, chunks, 2, 4, mask)
	require.NoError(err)
	require.Len(vertices, 6)

	for i, vtx := range vertices {
		require.True(vtx.IsValid)
		if i < 2 {
			require.True(vtx.IsMessageBearing)
			for _, s := range vtx.Samples {
				require.True(s.HasTarget)
			}
		} else {
			require.False(vtx.IsMessageBearing)
			for _, s := range vtx.Samples {
				require.False(s.HasTarget)
			}
		}
	}
}

func TestBuild_DeltaAdvancesVertexToTargetChunk(t *testing.T) {
	require := require.New(t)

	const mask = 0x03
	v := newView(t, 4, mask)
	perm, err := rng.NewPermutation(1, v.Len())
	require.NoError(err)

	chunks := []byte{2}
	vertices, err := vertex.Build(v, perm, chunks, 2, 4, mask)
	require.NoError(err)

	vtx := vertices[0]
	// Once any one sample reaches its target (the others unchanged), the
	// vertex's aggregate mod value equals the intended chunk.
	for j := range vtx.Samples {
		var sum byte
		for k, s := range vtx.Samples {
			if k == j {
				sum += s.TargetModValue
			} else {
				sum += s.ModValue
			}
		}
		require.Equal(chunks[0], sum&mask, "sample %d reaching its target", j)
	}
}

func TestBuild_RejectsTooManyChunks(t *testing.T) {
	require := require.New(t)

	const mask = 0x03
	v := newView(t, 4, mask) // 2 vertices of s=2
	perm, err := rng.NewPermutation(1, v.Len())
	require.NoError(err)

	chunks := make([]byte, 3) // more chunks than vertices available
	_, err = vertex.Build(v, perm, chunks, 2, 4, mask)
	require.ErrorIs(err, vertex.ErrCarrierTooSmall)
}

func TestBatch_AddEdgeRegistersOnBothEndpoints(t *testing.T) {
	require := require.New(t)

	v := newView(t, 8, 0x03)
	perm, _ := rng.NewPermutation(1, v.Len())
	vertices, err := vertex.Build(v, perm, nil, 2, 4, 0x03)
	require.NoError(err)

	batch := vertex.NewBatch(vertices)
	idx := batch.AddEdge(0, 1, 42, 0, 1)
	require.Equal(0, idx)
	require.Contains(vertices[0].EdgeIdx, idx)
	require.Contains(vertices[1].EdgeIdx, idx)
	require.Equal(uint16(42), batch.Edges[idx].Weight)
}

func TestBatch_ClearEdgesEmptiesArenaAndVertexLists(t *testing.T) {
	require := require.New(t)

	v := newView(t, 8, 0x03)
	perm, _ := rng.NewPermutation(1, v.Len())
	vertices, err := vertex.Build(v, perm, nil, 2, 4, 0x03)
	require.NoError(err)

	batch := vertex.NewBatch(vertices)
	batch.AddEdge(0, 1, 1, 0, 0)
	batch.ClearEdges()

	require.Empty(batch.Edges)
	for _, vtx := range vertices {
		require.Empty(vtx.EdgeIdx)
	}
}
