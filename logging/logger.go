// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a logger that writes to stderr and, when logFilePath is
// not empty, to a rotating log file as well.
//
// Parameters:
//   - development: When true, uses coloured console output at debug level.
//     When false, uses JSON output at info level.
//   - logFilePath: Optional path of a log file rotated by lumberjack.
//
// Example:
//
//	logger, err := NewLogger(true, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
func NewLogger(development bool, logFilePath string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if development {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(newConsoleEncoder(development), zapcore.Lock(os.Stderr), level),
	}

	if logFilePath != "" {
		writer, err := NewFileWriter(logFilePath, DefaultFileWriterConfig())
		if err != nil {
			return nil, errors.Wrap(err, "failed to create log file writer")
		}
		cores = append(cores, zapcore.NewCore(newFileEncoder(), writer, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func newConsoleEncoder(development bool) zapcore.Encoder {
	if !development {
		return newFileEncoder()
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewConsoleEncoder(cfg)
}

// newFileEncoder always writes JSON so rotated files stay machine readable.
func newFileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.TimeKey = "timestamp"
	return zapcore.NewJSONEncoder(cfg)
}
