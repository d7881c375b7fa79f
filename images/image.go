// Package images - Image buffers, resizing, canvases and compositing.
package images

// Image represents an encoded image with a format, data, width, and height.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// NewImage sniffs the buffer and returns it with format and dimensions filled in.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - Image: The buffer with its detected metadata.
//   - error: An error if the format is not recognised.
func NewImage(data []byte) (Image, error) {
	format, width, height, err := DetectFormat(data)
	if err != nil {
		return Image{Data: data}, err
	}

	return Image{
		Format: format,
		Data:   data,
		Width:  width,
		Height: height,
	}, nil
}
