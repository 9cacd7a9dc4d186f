package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  name: materials\nsampling:\n  width: 30\n  height: 20\noutput:\n  ppm: out.ppm\n"), 0644))

	seed := int64(42)
	cmd := RenderCmd{Config: path, Width: 12, FineGrid: 4, Seed: &seed, Perspective: true}
	cfg, err := cmd.renderConfig()
	require.NoError(t, err)

	assert.Equal(t, "materials", cfg.Scene.Name)
	assert.Equal(t, 12, cfg.Sampling.Width)
	assert.Equal(t, 20, cfg.Sampling.Height)
	require.NotNil(t, cfg.Sampling.FineGrid)
	assert.Equal(t, 4, *cfg.Sampling.FineGrid)
	assert.Equal(t, int64(42), cfg.Render.Seed)
	assert.True(t, *cfg.Camera.Perspective)
	assert.Equal(t, filepath.Join(dir, "out.ppm"), cfg.Output.PPM)
}

func TestRenderConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  RenderCmd
	}{
		{"unknown scene", RenderCmd{Scene: "nonexistent", FineGrid: -1}},
		{"unknown integrator", RenderCmd{Integrator: "bdpt", FineGrid: -1}},
		{"bad fine grid", RenderCmd{FineGrid: 5}},
		{"missing config file", RenderCmd{Config: "does/not/exist.yaml", FineGrid: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.cmd.renderConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestRenderCmd_Run(t *testing.T) {
	dir := t.TempDir()
	cmd := RenderCmd{
		Scene:    "basic",
		Width:    24,
		Height:   16,
		FineGrid: 0,
		Workers:  2,
		Output:   filepath.Join(dir, "nested", "basic.ppm"),
		PNG:      filepath.Join(dir, "basic.png"),
		Quiet:    true,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(cmd.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "P3\n24 16\n255\n")

	_, err = os.Stat(cmd.PNG)
	assert.NoError(t, err)
}

func TestScenesCmd_Run(t *testing.T) {
	assert.NoError(t, (&ScenesCmd{}).Run())
}

func TestInitCmd_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")

	require.NoError(t, (&InitCmd{Path: path}).Run())
	cfg, err := config.LoadFromFile(path, config.LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.Error(t, (&InitCmd{Path: path}).Run())
	assert.NoError(t, (&InitCmd{Path: path, Force: true}).Run())
}
