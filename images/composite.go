package images

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// NormalizeOffset replaces negative offsets with their absolute value.
//
// A foreground asked for at (-10, -5) is drawn at (10, 5), not partially off
// the canvas.
func NormalizeOffset(x, y int) image.Point {
	return image.Pt(abs(x), abs(y))
}

// Composite draws fg over bg with its top-left corner at the normalized
// (x, y) offset. bg is modified in place and returned for chaining. Pixels
// falling outside bg are clipped.
//
// Arguments:
//   - bg: The background image, mutated in place.
//   - fg: The foreground image.
//   - x: The horizontal offset.
//   - y: The vertical offset.
//
// Returns:
//   - draw.Image: bg, now containing fg.
//   - error: An error if either image is nil.
func Composite(bg draw.Image, fg image.Image, x, y int) (draw.Image, error) {
	if bg == nil || fg == nil {
		return bg, errors.New("composite requires both a background and a foreground")
	}

	at := bg.Bounds().Min.Add(NormalizeOffset(x, y))
	fb := fg.Bounds()
	draw.Draw(bg, image.Rectangle{Min: at, Max: at.Add(fb.Size())}, fg, fb.Min, draw.Over)

	return bg, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
