package pipeline

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-canvas/images"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Offset is where the foreground's top-left corner lands on the canvas.
type Offset struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Options configures a single pipeline run. It is read once at startup and
// never changed afterwards.
type Options struct {
	// Resize is the target of the in-process library resize. The engine
	// resize below is what the pipeline runs; this value is only carried so
	// existing configuration files keep loading.
	Resize Size `json:"resize" yaml:"resize"`
	// EngineResize is the libvips resize applied to the source image.
	EngineResize images.ResizeOptions `json:"engineResize" yaml:"engineResize"`
	// BlankBackground is the size of the white canvas.
	BlankBackground Size `json:"blankBackground" yaml:"blankBackground"`
	// Composite is the foreground offset on the canvas.
	Composite Offset `json:"composite" yaml:"composite"`
}

// DefaultOptions returns the fixed defaults of the tool.
func DefaultOptions() Options {
	return Options{
		Resize: Size{Width: 150, Height: 150},
		EngineResize: images.ResizeOptions{
			Width:  300,
			Height: 300,
		},
		BlankBackground: Size{Width: 350, Height: 350},
		Composite:       Offset{X: 0, Y: 0},
	}
}

// Validate checks the sizes the pipeline depends on.
func (o Options) Validate() error {
	if err := o.EngineResize.Validate(); err != nil {
		return errors.Wrap(err, "engineResize")
	}
	if o.BlankBackground.Width <= 0 || o.BlankBackground.Height <= 0 {
		return errors.Errorf("blankBackground: invalid dimensions: width=%d, height=%d",
			o.BlankBackground.Width, o.BlankBackground.Height)
	}
	return nil
}

// LoadOptions reads a YAML file and overlays it on DefaultOptions. Keys
// missing from the file keep their default value; unknown keys are rejected.
//
// Arguments:
//   - path: The YAML file. An empty path returns the defaults.
//
// Returns:
//   - Options: The merged options.
//   - error: An error if the file cannot be read, parsed or validated.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "failed to read options %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, errors.Wrapf(err, "failed to parse options %s", path)
	}

	if err := opts.Validate(); err != nil {
		return opts, errors.Wrapf(err, "invalid options %s", path)
	}
	return opts, nil
}
