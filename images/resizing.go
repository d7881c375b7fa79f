package images

import (
	"image"
	"math"

	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"
)

// ResizeOptions describes a single engine resize.
type ResizeOptions struct {
	// Width is the target width in pixels.
	Width int `json:"width" yaml:"width"`
	// Height is the target height in pixels.
	Height int `json:"height" yaml:"height"`
	// Crop fills the whole target box and crops the overflow instead of
	// fitting the image inside the box.
	Crop bool `json:"crop" yaml:"crop"`
	// Gravity anchors the crop window. Ignored when Crop is false.
	Gravity Gravity `json:"gravity" yaml:"gravity"`
}

// Validate checks the target dimensions.
func (o ResizeOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("invalid dimensions: width=%d, height=%d", o.Width, o.Height)
	}
	return nil
}

// Resizer resizes an encoded image and returns it re-encoded as PNG.
type Resizer interface {
	Resize(data []byte, opts ResizeOptions) ([]byte, error)
}

// VipsResizer is a Resizer backed by libvips.
type VipsResizer struct{}

// NewVipsResizer returns a libvips backed Resizer.
func NewVipsResizer() *VipsResizer {
	return &VipsResizer{}
}

// Resize resizes an encoded image of any format libvips can load to the
// given box and exports it as PNG.
//
// Without Crop the image is fitted inside Width x Height keeping its aspect
// ratio, so one side may come out shorter than requested. With Crop the image
// is scaled to cover the box and the overflow is cut away around the gravity
// anchor, so the result is exactly Width x Height.
//
// Arguments:
//   - data: The encoded source image.
//   - opts: The target box, crop flag and gravity.
//
// Returns:
//   - []byte: The resized image encoded as PNG.
//   - error: An error if the image fails to load, resize or encode.
func (r *VipsResizer) Resize(data []byte, opts ResizeOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Load the image from buffer.
	img, err := vips.NewImageFromBuffer(data, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load image")
	}
	defer img.Close()

	if opts.Crop {
		err = coverAndCrop(img, opts)
	} else {
		err = img.ThumbnailImage(opts.Width, &vips.ThumbnailImageOptions{
			Height: opts.Height,
			FailOn: vips.FailOnError,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resize image")
	}

	// Export to PNG buffer.
	resized, err := img.PngsaveBuffer(&vips.PngsaveBufferOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode resized image")
	}
	if len(resized) == 0 {
		return nil, errors.New("failed to encode resized image: empty output")
	}

	return resized, nil
}

// coverAndCrop scales img in place so it covers the target box, then extracts
// the target box at the gravity anchor.
func coverAndCrop(img *vips.Image, opts ResizeOptions) error {
	target := image.Pt(opts.Width, opts.Height)
	cover := CoverSize(image.Pt(img.Width(), img.Height()), target)

	err := img.ThumbnailImage(cover.X, &vips.ThumbnailImageOptions{
		Height: cover.Y,
		Size:   vips.SizeForce,
		FailOn: vips.FailOnError,
	})
	if err != nil {
		return err
	}

	at := opts.Gravity.Anchor(image.Pt(img.Width(), img.Height()), target)
	return img.ExtractArea(at.X, at.Y, target.X, target.Y)
}

// CoverSize returns the smallest size with the aspect ratio of src that
// covers target on both axes.
//
// Arguments:
//   - src: The source dimensions.
//   - target: The box to cover.
//
// Returns:
//   - image.Point: The scaled dimensions, never smaller than target.
//
// Example:
//
//	CoverSize(image.Pt(100, 40), image.Pt(300, 300)) // (750, 300)
func CoverSize(src, target image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 {
		return target
	}

	scale := math.Max(
		float64(target.X)/float64(src.X),
		float64(target.Y)/float64(src.Y),
	)

	return image.Pt(
		max(target.X, int(math.Round(float64(src.X)*scale))),
		max(target.Y, int(math.Round(float64(src.Y)*scale))),
	)
}
