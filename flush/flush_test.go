package flush_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/flush"
	"github.com/stegoweave/gtal/sample"
)

func TestView_WritesSamplesBackInPlace(t *testing.T) {
	require := require.New(t)

	buf := []byte{1, 2, 3, 4, 5, 6, 255}
	v, err := sample.New(buf, 0x03)
	require.NoError(err)

	v.At(0).Values = [3]byte{9, 9, 9}
	v.At(1).Values = [3]byte{8, 8, 8}

	flush.View(v)

	require.Equal([]byte{9, 9, 9, 8, 8, 8, 255}, buf)
}

func TestView_LeavesUntouchedSamplesAsIs(t *testing.T) {
	require := require.New(t)

	buf := []byte{1, 2, 3, 4, 5, 6}
	v, err := sample.New(buf, 0x03)
	require.NoError(err)

	flush.View(v)

	require.Equal([]byte{1, 2, 3, 4, 5, 6}, buf)
}
