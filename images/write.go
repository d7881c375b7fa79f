package images

import (
	"image"
	"os"

	"github.com/pkg/errors"
)

// WritePNG encodes img as PNG and writes it to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
