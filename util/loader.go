package util

import (
	"os"

	"github.com/pkg/errors"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// WriteResult reports a completed write.
type WriteResult struct {
	// OK is true once the file has been written.
	OK bool `json:"ok"`
	// Path is the file that was written.
	Path string `json:"path"`
	// Bytes is the number of bytes written.
	Bytes int `json:"bytes"`
}

// ReadImageFile reads an image file fully into memory.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - ImageFile: The path and raw bytes of the file.
// - error: Error if the file does not exist or cannot be read.
func ReadImageFile(path string) (ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImageFile{}, errors.Wrapf(err, "failed to read %s", path)
	}
	if info.IsDir() {
		return ImageFile{}, errors.Errorf("failed to read %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImageFile{}, errors.Wrapf(err, "failed to read %s", path)
	}

	return ImageFile{
		Path: path,
		Data: data,
	}, nil
}

// WriteImageFile writes data to path, creating or truncating the file.
//
// Arguments:
// - path: Destination path. The parent directory must exist.
// - data: Bytes to write.
//
// Returns:
// - WriteResult: OK is set on success.
// - error: Error if the file cannot be written.
func WriteImageFile(path string, data []byte) (WriteResult, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return WriteResult{}, errors.Wrapf(err, "failed to write %s", path)
	}

	return WriteResult{
		OK:    true,
		Path:  path,
		Bytes: len(data),
	}, nil
}
