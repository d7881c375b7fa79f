// Package pipeline reads an image, resizes it with libvips, draws it on a
// blank canvas and writes the canvas out as PNG.
package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-canvas/images"
	"github.com/nvr-ai/go-canvas/profiler"
	"github.com/nvr-ai/go-canvas/util"
)

const (
	// DefaultSource is read when no source path is given.
	DefaultSource = "./img.jpg"
	// DefaultDestination is written when no destination path is given.
	DefaultDestination = "./final-image.png"
)

// Result describes the file written by a successful run.
type Result struct {
	OK       bool   `json:"ok"`
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Bytes    int    `json:"bytes"`
	Checksum string `json:"checksum"`
}

func (r *Result) String() string {
	return fmt.Sprintf("{ ok: %t, path: %s, size: %dx%d, bytes: %d }", r.OK, r.Path, r.Width, r.Height, r.Bytes)
}

// Pipeline runs the read, resize, composite and write stages once, in order.
type Pipeline struct {
	opts     Options
	resizer  images.Resizer
	logger   *zap.Logger
	profiler *profiler.StageProfiler
}

// New creates a pipeline. A nil logger disables logging.
//
// Arguments:
//   - opts: The run configuration.
//   - resizer: The engine used for the resize stage.
//   - logger: The logger for stage progress.
//
// Returns:
//   - *Pipeline: The configured pipeline.
//   - error: An error if opts are invalid or resizer is nil.
func New(opts Options, resizer images.Resizer, logger *zap.Logger) (*Pipeline, error) {
	if resizer == nil {
		return nil, errors.New("resizer not configured")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		opts:     opts,
		resizer:  resizer,
		logger:   logger,
		profiler: profiler.NewStageProfiler(),
	}, nil
}

// Profiler returns the stage timings collected so far.
func (p *Pipeline) Profiler() *profiler.StageProfiler {
	return p.profiler
}

// Run executes the pipeline. The first failing stage aborts the run and
// nothing is written to dst unless every earlier stage succeeded.
//
// Arguments:
//   - src: The source image path.
//   - dst: The destination PNG path, overwritten if it exists.
//
// Returns:
//   - *Result: The written file.
//   - error: A *StageError describing the first failure.
func (p *Pipeline) Run(src, dst string) (*Result, error) {
	defer p.profiler.Report(p.logger)

	log := p.logger.With(zap.String("src", src), zap.String("dst", dst))

	done := p.profiler.StartOperation(StageRead)
	file, err := util.ReadImageFile(src)
	done()
	if err != nil {
		return nil, p.fail(log, StageRead, err)
	}
	p.logSource(log, file)

	done = p.profiler.StartOperation(StageResize)
	resized, err := p.resizer.Resize(file.Data, p.opts.EngineResize)
	done()
	if err != nil {
		return nil, p.fail(log, StageResize, err)
	}
	log.Debug("resized",
		zap.Int("width", p.opts.EngineResize.Width),
		zap.Int("height", p.opts.EngineResize.Height),
		zap.Bool("crop", p.opts.EngineResize.Crop),
		zap.String("gravity", string(p.opts.EngineResize.Gravity)),
		zap.String("bytes", profiler.FormatBytes(uint64(len(resized)))),
	)

	done = p.profiler.StartOperation(StageDecode)
	foreground, err := images.DecodeImage(resized)
	done()
	if err != nil {
		return nil, p.fail(log, StageDecode, err)
	}

	done = p.profiler.StartOperation(StageCanvas)
	canvas, err := images.NewBlankCanvas(p.opts.BlankBackground.Width, p.opts.BlankBackground.Height)
	done()
	if err != nil {
		return nil, p.fail(log, StageCanvas, err)
	}
	log.Debug("background created",
		zap.Int("width", canvas.Bounds().Dx()),
		zap.Int("height", canvas.Bounds().Dy()),
	)

	done = p.profiler.StartOperation(StageComposite)
	at := images.NormalizeOffset(p.opts.Composite.X, p.opts.Composite.Y)
	_, err = images.Composite(canvas, foreground, p.opts.Composite.X, p.opts.Composite.Y)
	done()
	if err != nil {
		return nil, p.fail(log, StageComposite, err)
	}
	log.Debug("composited",
		zap.Int("x", at.X),
		zap.Int("y", at.Y),
		zap.Int("foregroundWidth", foreground.Bounds().Dx()),
		zap.Int("foregroundHeight", foreground.Bounds().Dy()),
	)

	done = p.profiler.StartOperation(StageEncode)
	encoded, err := images.EncodePNG(canvas)
	done()
	if err != nil {
		return nil, p.fail(log, StageEncode, err)
	}
	log.Debug("composite encoded", zap.String("bytes", profiler.FormatBytes(uint64(len(encoded)))))

	done = p.profiler.StartOperation(StageWrite)
	written, err := util.WriteImageFile(dst, encoded)
	done()
	if err != nil {
		return nil, p.fail(log, StageWrite, err)
	}

	result := &Result{
		OK:       written.OK,
		Path:     written.Path,
		Width:    canvas.Bounds().Dx(),
		Height:   canvas.Bounds().Dy(),
		Bytes:    written.Bytes,
		Checksum: images.ComputeImageChecksum(canvas),
	}
	log.Info("image saved",
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.Int("bytes", result.Bytes),
		zap.String("checksum", result.Checksum),
	)

	return result, nil
}

// logSource reports what was read. Sniffing is informational only; libvips
// decides what it can load.
func (p *Pipeline) logSource(log *zap.Logger, file util.ImageFile) {
	img, err := images.NewImage(file.Data)
	if err != nil {
		log.Debug("source format not recognised", zap.Int("bytes", len(file.Data)), zap.Error(err))
		return
	}
	log.Debug("source read",
		zap.String("format", string(img.Format)),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.String("bytes", profiler.FormatBytes(uint64(len(file.Data)))),
	)
}

func (p *Pipeline) fail(log *zap.Logger, stage string, err error) error {
	log.Error("stage failed", zap.String("stage", stage), zap.Error(err))
	return endWithError(stage, err)
}
