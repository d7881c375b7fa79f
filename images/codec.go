package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// DecodeImage decodes an encoded buffer into a mutable NRGBA raster.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *image.NRGBA: The decoded image, owned by the caller.
//   - error: An error if the buffer cannot be decoded.
func DecodeImage(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	return toNRGBA(img), nil
}

// EncodePNG encodes an image as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode PNG")
	}

	return buf.Bytes(), nil
}

// toNRGBA returns img as an *image.NRGBA with a zero origin, copying only
// when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
