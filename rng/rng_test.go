package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/rng"
)

func TestPermutation_SameSeedSameOrder(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p1, err := rng.NewPermutation(42, 200)
	require.NoError(err)
	p2, err := rng.NewPermutation(42, 200)
	require.NoError(err)

	for i := 0; i < 200; i++ {
		a, okA := p1.Next()
		b, okB := p2.Next()
		require.True(okA)
		require.True(okB)
		require.Equal(a, b, "same (seed, n) must draw identical indices")
	}
}

func TestPermutation_DifferentSeedDiffers(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p1, err := rng.NewPermutation(42, 500)
	require.NoError(err)
	p2, err := rng.NewPermutation(43, 500)
	require.NoError(err)

	mismatch := false
	for i := 0; i < 500; i++ {
		a, _ := p1.Next()
		b, _ := p2.Next()
		if a != b {
			mismatch = true
			break
		}
	}
	require.True(mismatch, "different seeds should almost never draw an identical order")
}

func TestPermutation_ExhaustsWithoutReplacement(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	const n = 64
	p, err := rng.NewPermutation(7, n)
	require.NoError(err)

	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		idx, ok := p.Next()
		require.True(ok)
		require.False(seen[idx], "index %d drawn twice", idx)
		seen[idx] = true
	}
	require.Len(seen, n)

	_, ok := p.Next()
	require.False(ok, "permutation must be exhausted after n draws")
}

func TestPermutation_ResetReplaysSameOrder(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p, err := rng.NewPermutation(9, 32)
	require.NoError(err)

	var first []int
	for {
		idx, ok := p.Next()
		if !ok {
			break
		}
		first = append(first, idx)
	}

	p.Reset()
	var second []int
	for {
		idx, ok := p.Next()
		if !ok {
			break
		}
		second = append(second, idx)
	}

	require.Equal(first, second)
}

func TestNewPermutation_RejectsNegativeSize(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	_, err := rng.NewPermutation(1, -1)
	require.ErrorIs(err, rng.ErrNegativeSize)
}

func TestNewPermutation_ZeroSize(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p, err := rng.NewPermutation(1, 0)
	require.NoError(err)
	require.Equal(0, p.Remaining())
	_, ok := p.Next()
	require.False(ok)
}
