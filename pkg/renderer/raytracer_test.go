package renderer

import (
	"context"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScene(width, height, fineGrid int) *scene.Scene {
	diffuse := material.NewLambertian()
	return &scene.Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, geometry.NewSurface(core.NewVec3(0.8, 0.3, 0.3), diffuse)),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.4, geometry.NewSurface(core.NewVec3(1, 1, 1), material.NewGlass(1.5))),
			geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), geometry.NewSurface(core.NewVec3(0.5, 0.5, 0.5), diffuse)),
		},
		Background: scene.DefaultBackground(),
		Camera:     scene.DefaultCameraConfig(),
		Sampling:   scene.SamplingConfig{Width: width, Height: height, FineGrid: fineGrid, MaxDepth: 8},
		Lighting:   scene.DefaultLighting(),
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	render := func(workers int) *Image {
		rt, err := NewRaytracer(smallScene(16, 12, 4), integrator.NewPathTracingIntegrator(), Config{NumWorkers: workers, Seed: 99}, nil)
		require.NoError(t, err)
		img, _, err := rt.Render(context.Background())
		require.NoError(t, err)
		return img
	}

	assert.Equal(t, render(1).Pixels, render(4).Pixels)
}

func TestRaytracer_EmptySceneShowsBackground(t *testing.T) {
	sc := smallScene(8, 8, 0)
	sc.Shapes = nil
	sc.Background = scene.NewSolidBackground(core.NewVec3(0.1, 0.2, 0.3))

	rt, err := NewRaytracer(sc, integrator.NewPathTracingIntegrator(), Config{}, nil)
	require.NoError(t, err)
	img, stats, err := rt.Render(context.Background())
	require.NoError(t, err)

	for _, p := range img.Pixels {
		assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), p)
	}
	assert.Equal(t, 64, stats.TotalPixels)
	assert.Equal(t, 64, stats.TotalSamples)
	assert.InDelta(t, 0.0, stats.StdDevLuminance, 1e-12)
}

func TestRaytracer_TopRowLooksUp(t *testing.T) {
	sc := smallScene(9, 9, 0)
	sc.Shapes = nil
	sc.Camera.Perspective = true

	rt, err := NewRaytracer(sc, integrator.NewPathTracingIntegrator(), Config{NumWorkers: 2}, nil)
	require.NoError(t, err)
	img, _, err := rt.Render(context.Background())
	require.NoError(t, err)

	// Sky blue fades to white toward the bottom
	assert.Less(t, img.At(4, 0).X, img.At(4, 8).X)
}

func TestRaytracer_SamplesPerPixel(t *testing.T) {
	rt, err := NewRaytracer(smallScene(4, 3, 16), integrator.NewPhongIntegrator(), Config{}, nil)
	require.NoError(t, err)

	_, stats, err := rt.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4*3*16, stats.TotalSamples)
	assert.Equal(t, 16.0, stats.AverageSamples)
	assert.Equal(t, 3, stats.BVH.TotalShapes)
}

func TestRaytracer_Cancelled(t *testing.T) {
	rt, err := NewRaytracer(smallScene(8, 8, 0), integrator.NewPathTracingIntegrator(), Config{}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = rt.Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	_, err := NewRaytracer(smallScene(0, 8, 0), integrator.NewPathTracingIntegrator(), Config{}, nil)
	assert.Error(t, err)

	_, err = NewRaytracer(smallScene(8, 8, 8), integrator.NewPathTracingIntegrator(), Config{}, nil)
	assert.Error(t, err)
}

func TestRaytracer_BuildsMissingBVH(t *testing.T) {
	sc := smallScene(2, 2, 0)
	require.Nil(t, sc.BVH)

	_, err := NewRaytracer(sc, integrator.NewPathTracingIntegrator(), Config{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, sc.BVH)
}

func TestLuminanceStats(t *testing.T) {
	img := NewImage(2, 1)
	img.Pixels[0] = core.NewVec3(0, 0, 0)
	img.Pixels[1] = core.NewVec3(1, 1, 1)

	mean, std := luminanceStats(img)
	assert.InDelta(t, 0.5, mean, 1e-12)
	assert.InDelta(t, 0.7071067811865476, std, 1e-12)
}
