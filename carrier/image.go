package carrier

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
)

// Image is a Carrier backed by an in-memory NRGBA bitmap. Only the RGB
// channels are addressable; alpha is read once at load time and
// reapplied unchanged on Save, matching the stego precedent of leaving
// alpha out of the encoding surface entirely.
type Image struct {
	width, height int
	rgb           []byte // width*height*3, row-major, alpha excluded
	alpha         []byte // width*height, preserved verbatim
}

// LoadImage decodes r as any image.Image-decodable source (PNG, JPEG)
// and converts it to an addressable RGB byte stream. Save always
// re-encodes as PNG regardless of the input format, preserving
// losslessness.
func LoadImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// draw.Draw into an NRGBA destination un-premultiplies alpha as part
	// of the conversion; reading channels straight off src.At(x,y).RGBA()
	// instead would hand back alpha-premultiplied values for any source
	// whose native model is premultiplied, shifting colours on Save for
	// every non-opaque pixel.
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	img := &Image{
		width:  width,
		height: height,
		rgb:    make([]byte, width*height*3),
		alpha:  make([]byte, width*height),
	}

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := nrgba.PixOffset(x, y)
			px := nrgba.Pix[o : o+4 : o+4]
			img.rgb[i*3+0] = px[0]
			img.rgb[i*3+1] = px[1]
			img.rgb[i*3+2] = px[2]
			img.alpha[i] = px[3]
			i++
		}
	}

	return img, nil
}

// Bytes returns the mutable RGB buffer, row-major, 3 bytes per pixel.
func (img *Image) Bytes() []byte { return img.rgb }

// BytesPerSample always returns 3 (RGB).
func (img *Image) BytesPerSample() int { return 3 }

// Save reassembles an NRGBA image from the current RGB buffer and the
// alpha channel captured at load time, and PNG-encodes it to w.
func (img *Image) Save(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	i := 0
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.rgb[i*3+0],
				G: img.rgb[i*3+1],
				B: img.rgb[i*3+2],
				A: img.alpha[i],
			})
			i++
		}
	}
	return png.Encode(w, out)
}
