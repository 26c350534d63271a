package carrier_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/carrier"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x + y) % 256),
				G: uint8(x * 7 % 256),
				B: uint8(y * 13 % 256),
				A: uint8(128 + x%64),
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadImage_BytesPerSampleIsThree(t *testing.T) {
	require := require.New(t)

	img, err := carrier.LoadImage(bytes.NewReader(encodeTestPNG(t, 4, 3)))
	require.NoError(err)
	require.Equal(3, img.BytesPerSample())
	require.Len(img.Bytes(), 4*3*3)
}

func TestImage_SaveRoundTripsRGBAndPreservesAlpha(t *testing.T) {
	require := require.New(t)

	raw := encodeTestPNG(t, 5, 5)
	img, err := carrier.LoadImage(bytes.NewReader(raw))
	require.NoError(err)

	// mutate every RGB byte, leaving alpha untouched by construction
	buf := img.Bytes()
	for i := range buf {
		buf[i] ^= 0xFF
	}

	var out bytes.Buffer
	require.NoError(img.Save(&out))

	reloaded, err := carrier.LoadImage(bytes.NewReader(out.Bytes()))
	require.NoError(err)
	require.Equal(buf, reloaded.Bytes())

	decoded, err := png.Decode(bytes.NewReader(out.Bytes()))
	require.NoError(err)
	origDecoded, err := png.Decode(bytes.NewReader(raw))
	require.NoError(err)

	bounds := decoded.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a1 := decoded.At(x, y).RGBA()
			_, _, _, a2 := origDecoded.At(x, y).RGBA()
			require.Equal(a2, a1, "alpha must be preserved untouched at (%d,%d)", x, y)
		}
	}
}
