package config

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// SceneOptions returns the options passed to the scene builder
func (c *RenderConfig) SceneOptions() scene.Options {
	return scene.Options{
		Seed:          c.Render.Seed,
		SphereCount:   c.Scene.SphereCount,
		MeshPath:      c.Scene.Mesh.Path,
		MeshScale:     c.Scene.Mesh.Scale,
		MeshOffset:    vec(c.Scene.Mesh.Offset),
		SmoothNormals: c.Scene.Mesh.SmoothNormals,
	}
}

// RendererConfig returns the renderer settings
func (c *RenderConfig) RendererConfig() renderer.Config {
	return renderer.Config{
		NumWorkers: c.Render.Workers,
		Seed:       c.Render.Seed,
	}
}

// Apply overrides the scene's settings with every value set in the config.
// It must run before the raytracer is created.
func (c *RenderConfig) Apply(sc *scene.Scene) {
	if c.Scene.Integrator != "" {
		sc.Integrator = c.Scene.Integrator
	}
	if len(c.Scene.Background) > 0 {
		stops := make([]core.Vec3, len(c.Scene.Background))
		for i, s := range c.Scene.Background {
			stops[i] = vec(s)
		}
		sc.Background = scene.NewGradientBackground(stops...)
	}

	cam := &sc.Camera
	if c.Camera.Perspective != nil {
		cam.Perspective = *c.Camera.Perspective
	}
	if c.Camera.Eye != nil {
		cam.Eye = vec(*c.Camera.Eye)
	}
	if c.Camera.ViewDir != nil {
		cam.ViewDir = vec(*c.Camera.ViewDir)
	}
	if c.Camera.Up != nil {
		cam.Up = vec(*c.Camera.Up)
	}
	if c.Camera.Distance > 0 {
		cam.Distance = c.Camera.Distance
	}
	if c.Camera.ViewportWidth > 0 {
		cam.ViewportWidth = c.Camera.ViewportWidth
	}

	sampling := &sc.Sampling
	if c.Sampling.Width > 0 {
		sampling.Width = c.Sampling.Width
	}
	if c.Sampling.Height > 0 {
		sampling.Height = c.Sampling.Height
	}
	if c.Sampling.FineGrid != nil {
		sampling.FineGrid = *c.Sampling.FineGrid
	}
	if c.Sampling.MaxDepth > 0 {
		sampling.MaxDepth = c.Sampling.MaxDepth
	}
}
