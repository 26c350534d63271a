package match_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/match"
	"github.com/stegoweave/gtal/sample"
	"github.com/stegoweave/gtal/vertex"
)

func newLeftover(values [3]byte, mod, target byte) *vertex.Vertex {
	s := &sample.Sample{Values: values, ModValue: mod, TargetModValue: target, HasTarget: true}
	return &vertex.Vertex{Samples: []*sample.Sample{s}, IsValid: true, IsMessageBearing: true}
}

func newReserve(values [3]byte, mod byte) *vertex.Vertex {
	s := &sample.Sample{Values: values, ModValue: mod}
	return &vertex.Vertex{Samples: []*sample.Sample{s}, IsValid: true, IsMessageBearing: false}
}

func TestReserve_MatchesLeftoverAgainstReserveCarryingNeededMod(t *testing.T) {
	require := require.New(t)

	leftover := newLeftover([3]byte{10, 10, 10}, 0, 2)
	reserve := newReserve([3]byte{11, 10, 10}, 2)

	remaining, err := match.Reserve(context.Background(), []*vertex.Vertex{leftover}, []*vertex.Vertex{reserve}, 8, 0, 1, 0x03)

	require.NoError(err)
	require.Empty(remaining)
	require.False(leftover.IsValid)
	require.False(reserve.IsValid)
}

func TestReserve_LeavesLeftoverWhenNoReserveCarriesNeededMod(t *testing.T) {
	require := require.New(t)

	leftover := newLeftover([3]byte{10, 10, 10}, 0, 2)
	reserve := newReserve([3]byte{11, 10, 10}, 1) // wrong mod value

	remaining, err := match.Reserve(context.Background(), []*vertex.Vertex{leftover}, []*vertex.Vertex{reserve}, 8, 0, 3, 0x03)

	require.NoError(err)
	require.Len(remaining, 1)
	require.Same(leftover, remaining[0])
	require.True(leftover.IsValid)
	require.True(reserve.IsValid)
}

func TestReserve_ExhaustsReservesAcrossPasses(t *testing.T) {
	require := require.New(t)

	a := newLeftover([3]byte{10, 10, 10}, 0, 2)
	b := newLeftover([3]byte{10, 10, 11}, 0, 2)
	reserve := newReserve([3]byte{11, 10, 10}, 2)

	remaining, err := match.Reserve(context.Background(), []*vertex.Vertex{a, b}, []*vertex.Vertex{reserve}, 8, 0, 3, 0x03)

	require.NoError(err)
	require.Len(remaining, 1, "only one reserve was available to satisfy two leftovers")
	require.False(reserve.IsValid)
}

func TestReserve_RespectsCancellation(t *testing.T) {
	require := require.New(t)

	leftover := newLeftover([3]byte{10, 10, 10}, 0, 2)
	reserve := newReserve([3]byte{11, 10, 10}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	remaining, err := match.Reserve(ctx, []*vertex.Vertex{leftover}, []*vertex.Vertex{reserve}, 8, 0, 1, 0x03)
	require.ErrorIs(err, context.Canceled)
	require.Len(remaining, 1)
}

func TestReserve_ZeroPassesIsNoOp(t *testing.T) {
	require := require.New(t)

	leftover := newLeftover([3]byte{10, 10, 10}, 0, 2)
	reserve := newReserve([3]byte{11, 10, 10}, 2)

	remaining, err := match.Reserve(context.Background(), []*vertex.Vertex{leftover}, []*vertex.Vertex{reserve}, 8, 0, 0, 0x03)

	require.NoError(err)
	require.Len(remaining, 1)
	require.True(reserve.IsValid)
}
