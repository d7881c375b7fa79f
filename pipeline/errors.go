package pipeline

import "github.com/pkg/errors"

// Stage names used in errors and logs.
const (
	StageRead      = "read"
	StageResize    = "resize"
	StageDecode    = "decode"
	StageCanvas    = "canvas"
	StageComposite = "composite"
	StageEncode    = "encode"
	StageWrite     = "write"
)

// StageError is the single error type returned by a failed run. Its message
// does not distinguish between stages; Stage is for logging only.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "end with error" + e.Err.Error()
}

// Cause returns the underlying error for errors.Cause.
func (e *StageError) Cause() error { return e.Err }

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *StageError) Unwrap() error { return e.Err }

// endWithError funnels every stage failure into a StageError.
func endWithError(stage string, err error) error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &StageError{Stage: stage, Err: err}
}
