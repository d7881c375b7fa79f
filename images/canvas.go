package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// NewCanvas creates a width x height image filled with a solid colour.
//
// Arguments:
//   - width: The canvas width in pixels.
//   - height: The canvas height in pixels.
//   - fill: The background colour.
//
// Returns:
//   - *image.NRGBA: The canvas.
//   - error: An error if either dimension is not positive.
func NewCanvas(width, height int, fill color.Color) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid canvas dimensions: %dx%d", width, height)
	}

	return imaging.New(width, height, fill), nil
}

// NewBlankCanvas creates an opaque white canvas.
func NewBlankCanvas(width, height int) (*image.NRGBA, error) {
	return NewCanvas(width, height, color.White)
}

// NewBlankCanvasPNG creates an opaque white canvas and returns it encoded as PNG.
func NewBlankCanvasPNG(width, height int) ([]byte, error) {
	canvas, err := NewBlankCanvas(width, height)
	if err != nil {
		return nil, err
	}

	return EncodePNG(canvas)
}
