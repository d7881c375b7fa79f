package images

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// ErrEmptyImage is returned when an operation receives no image bytes.
var ErrEmptyImage = errors.New("empty image data")

// DetectFormat reads only the header of an encoded image and reports its
// format and dimensions.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - ImageFormat: The detected format.
//   - int: The width in pixels.
//   - int: The height in pixels.
//   - error: An error if the buffer is empty or the format is unknown.
func DetectFormat(data []byte) (ImageFormat, int, int, error) {
	if len(data) == 0 {
		return "", 0, 0, ErrEmptyImage
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, errors.Wrap(err, "failed to detect image format")
	}

	return ImageFormat(name), cfg.Width, cfg.Height, nil
}
