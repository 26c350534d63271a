package sample_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/sample"
)

func TestNew_TrimsTrailingPartialSample(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 10) // 3 complete samples + 1 trailing byte
	v, err := sample.New(buf, 3)
	require.NoError(err)
	require.Equal(3, v.Len())
}

func TestNew_RejectsShortBuffer(t *testing.T) {
	require := require.New(t)

	_, err := sample.New([]byte{1, 2}, 3)
	require.ErrorIs(err, sample.ErrBufferNotMultiple)
}

func TestSample_RecomputeModValue(t *testing.T) {
	require := require.New(t)

	buf := []byte{10, 20, 33}
	v, err := sample.New(buf, 0x03) // mask for b=2
	require.NoError(err)

	s := v.At(0)
	require.Equal(byte((10+20+33)&0x03), s.ModValue)

	s.Values[0] = 255
	s.Recompute(0x03)
	require.Equal(byte((255+20+33)&0x03), s.ModValue)
}

func TestView_TracksSampleOffsets(t *testing.T) {
	require := require.New(t)

	buf := []byte{1, 2, 3, 4, 5, 6}
	v, err := sample.New(buf, 0x0f)
	require.NoError(err)

	s := v.At(1)
	require.Equal(3, s.Offset())
	require.Equal(buf, v.Buffer())
}
