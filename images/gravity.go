package images

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

// Gravity is the reference point used when cropping a resized image down to
// the target box. Names follow ImageMagick's -gravity values.
type Gravity string

const (
	GravityNorthWest Gravity = "NorthWest"
	GravityNorth     Gravity = "North"
	GravityNorthEast Gravity = "NorthEast"
	GravityWest      Gravity = "West"
	GravityCenter    Gravity = "Center"
	GravityEast      Gravity = "East"
	GravitySouthWest Gravity = "SouthWest"
	GravitySouth     Gravity = "South"
	GravitySouthEast Gravity = "SouthEast"
)

var gravities = []Gravity{
	GravityNorthWest, GravityNorth, GravityNorthEast,
	GravityWest, GravityCenter, GravityEast,
	GravitySouthWest, GravitySouth, GravitySouthEast,
}

// ParseGravity converts a gravity name to a Gravity. Matching is case
// insensitive and "centre" is accepted. An empty string yields the empty
// Gravity, which anchors like NorthWest.
func ParseGravity(s string) (Gravity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if strings.EqualFold(s, "centre") {
		return GravityCenter, nil
	}
	for _, g := range gravities {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}

	return "", errors.Errorf("unknown gravity %q", s)
}

// UnmarshalText lets Gravity be read straight from YAML and flag values.
func (g *Gravity) UnmarshalText(text []byte) error {
	parsed, err := ParseGravity(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Anchor returns the top-left corner of an inner box placed inside an outer
// box according to the gravity.
//
// Arguments:
//   - outer: The size of the box being cropped.
//   - inner: The size of the crop window.
//
// Returns:
//   - image.Point: The offset of the crop window inside outer.
//
// Example:
//
//	GravityCenter.Anchor(image.Pt(400, 300), image.Pt(300, 300)) // (50, 0)
func (g Gravity) Anchor(outer, inner image.Point) image.Point {
	dx := max(outer.X-inner.X, 0)
	dy := max(outer.Y-inner.Y, 0)

	var p image.Point
	switch g {
	case GravityNorth, GravityCenter, GravitySouth:
		p.X = dx / 2
	case GravityNorthEast, GravityEast, GravitySouthEast:
		p.X = dx
	}
	switch g {
	case GravityWest, GravityCenter, GravityEast:
		p.Y = dy / 2
	case GravitySouthWest, GravitySouth, GravitySouthEast:
		p.Y = dy
	}

	return p
}
