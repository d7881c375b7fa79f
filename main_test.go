package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-canvas/pipeline"
)

func TestParseArgsDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvLogFile, "")

	cfg, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultSource, cfg.Source)
	assert.Equal(t, pipeline.DefaultDestination, cfg.Destination)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.ConfigPath)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    cliConfig
		wantErr bool
	}{
		{
			name: "source only",
			args: []string{"in.png"},
			want: cliConfig{Source: "in.png", Destination: pipeline.DefaultDestination},
		},
		{
			name: "source and destination",
			args: []string{"in.png", "out.png"},
			want: cliConfig{Source: "in.png", Destination: "out.png"},
		},
		{
			name: "flags before paths",
			args: []string{"-debug", "-config", "opts.yaml", "-log-file", "run.log", "a.jpg", "b.png"},
			want: cliConfig{Source: "a.jpg", Destination: "b.png", ConfigPath: "opts.yaml", Debug: true, LogFile: "run.log"},
		},
		{name: "too many paths", args: []string{"a", "b", "c"}, wantErr: true},
		{name: "unknown flag", args: []string{"-width", "10"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfig, "")
			t.Setenv(EnvDebug, "")
			t.Setenv(EnvLogFile, "")

			got, err := parseArgs(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsEnvironment(t *testing.T) {
	t.Setenv(EnvConfig, "env.yaml")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogFile, "env.log")

	cfg, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.ConfigPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env.log", cfg.LogFile)

	cfg, err = parseArgs([]string{"-debug=false"}, io.Discard)
	require.NoError(t, err)
	assert.False(t, cfg.Debug, "flags override the environment")
}

func TestRunMissingSource(t *testing.T) {
	t.Setenv(EnvConfig, "")
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(dir, "missing.jpg"), dst}, &stdout, &stderr)

	assert.Equal(t, ExitCodeError, code)
	assert.Contains(t, stderr.String(), "end with error")
	assert.Empty(t, stdout.String())
	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("blankBackground:\n  width: -1\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, filepath.Join(dir, "in.png")}, &stdout, &stderr)
	assert.Equal(t, ExitCodeError, code)
}

func TestRunWritesOutput(t *testing.T) {
	t.Setenv(EnvConfig, "")
	dir := t.TempDir()
	src := filepath.Join(dir, "img.png")
	dst := filepath.Join(dir, "final-image.png")

	img := image.NewNRGBA(image.Rect(0, 0, 80, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 80; x++ {
			img.Set(x, y, color.NRGBA{G: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{src, dst}, &stdout, &stderr)
	require.Equal(t, ExitCodeSuccess, code, stderr.String())
	assert.Contains(t, stdout.String(), "ok: true")

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 350, cfg.Width)
	assert.Equal(t, 350, cfg.Height)
}
