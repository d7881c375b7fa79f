package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// ComputeImageChecksum generates a deterministic checksum of the pixels of an
// image, independent of how it was encoded.
//
// Arguments:
// - img: The image to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := ComputeImageChecksum(canvas)
//	fmt.Printf("Canvas checksum: %s\n", checksum)
//
// ```
func ComputeImageChecksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	n := toNRGBA(img)
	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", n.Rect.Dx(), n.Rect.Dy())
	for y := 0; y < n.Rect.Dy(); y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+n.Rect.Dx()*4]
		hash.Write(row)
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
