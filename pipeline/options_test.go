package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-canvas/images"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, Size{Width: 150, Height: 150}, opts.Resize)
	assert.Equal(t, images.ResizeOptions{Width: 300, Height: 300}, opts.EngineResize)
	assert.Equal(t, Size{Width: 350, Height: 350}, opts.BlankBackground)
	assert.Equal(t, Offset{}, opts.Composite)
	assert.NoError(t, opts.Validate())
}

func writeOptions(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOptions(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    func(o *Options)
		wantErr bool
	}{
		{
			name: "empty file keeps defaults",
			body: "",
			want: func(o *Options) {},
		},
		{
			name: "partial overlay",
			body: "engineResize:\n  crop: true\n  gravity: center\ncomposite:\n  x: -10\n  y: -5\n",
			want: func(o *Options) {
				o.EngineResize.Crop = true
				o.EngineResize.Gravity = images.GravityCenter
				o.Composite = Offset{X: -10, Y: -5}
			},
		},
		{
			name: "canvas size",
			body: "blankBackground:\n  width: 500\n  height: 400\n",
			want: func(o *Options) {
				o.BlankBackground = Size{Width: 500, Height: 400}
			},
		},
		{name: "unknown key", body: "background: red\n", wantErr: true},
		{name: "bad gravity", body: "engineResize:\n  gravity: up\n", wantErr: true},
		{name: "zero canvas", body: "blankBackground:\n  width: 0\n", wantErr: true},
		{name: "zero resize", body: "engineResize:\n  height: 0\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadOptions(writeOptions(t, tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := DefaultOptions()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadOptionsPaths(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
