package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-canvas/images"
	"github.com/nvr-ai/go-canvas/logging"
	"github.com/nvr-ai/go-canvas/pipeline"
)

const (
	// ExitCodeSuccess is returned when the image was written.
	ExitCodeSuccess = 0
	// ExitCodeError is returned on any failure.
	ExitCodeError = 1
)

// Environment variables read as flag defaults.
const (
	EnvConfig  = "IMGCANVAS_CONFIG"
	EnvDebug   = "IMGCANVAS_DEBUG"
	EnvLogFile = "IMGCANVAS_LOG_FILE"
)

// cliConfig holds everything parsed from the command line.
type cliConfig struct {
	Source      string
	Destination string
	ConfigPath  string
	Debug       bool
	LogFile     string
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitCodeError
	}

	logger, err := logging.NewLogger(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return ExitCodeError
	}
	defer func() { _ = logger.Sync() }()

	opts, err := pipeline.LoadOptions(cfg.ConfigPath)
	if err != nil {
		logger.Error("failed to load options", zap.String("config", cfg.ConfigPath), zap.Error(err))
		return ExitCodeError
	}

	p, err := pipeline.New(opts, images.NewVipsResizer(), logger)
	if err != nil {
		logger.Error("failed to create pipeline", zap.Error(err))
		return ExitCodeError
	}

	result, err := p.Run(cfg.Source, cfg.Destination)
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, err.Error())
		return ExitCodeError
	}

	color.New(color.FgGreen).Fprintln(stdout, "the", result.String())
	return ExitCodeSuccess
}

// parseArgs reads flags and the two optional positional paths.
func parseArgs(args []string, output io.Writer) (cliConfig, error) {
	fs := flag.NewFlagSet("imgcanvas", flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := cliConfig{}
	fs.StringVar(&cfg.ConfigPath, "config", os.Getenv(EnvConfig), "Path to a YAML options file")
	fs.BoolVar(&cfg.Debug, "debug", envBool(EnvDebug), "Enable development logging")
	fs.StringVar(&cfg.LogFile, "log-file", os.Getenv(EnvLogFile), "Also write logs to this rotating file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: imgcanvas [flags] [source] [destination]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 2 {
		return cfg, fmt.Errorf("expected at most 2 arguments, got %d", fs.NArg())
	}

	cfg.Source = pipeline.DefaultSource
	if fs.NArg() > 0 && fs.Arg(0) != "" {
		cfg.Source = fs.Arg(0)
	}
	cfg.Destination = pipeline.DefaultDestination
	if fs.NArg() > 1 && fs.Arg(1) != "" {
		cfg.Destination = fs.Arg(1)
	}

	return cfg, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
