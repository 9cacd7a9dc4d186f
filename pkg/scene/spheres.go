package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

const (
	defaultSphereCount  = 10000
	randomSphereRadius  = 0.02
	randomSphereSpreadX = 1.9
	randomSphereSpreadY = 1.9
)

// NewSpheresScene scatters many small randomly colored spheres in front of the camera.
// The same seed always produces the same scene.
func NewSpheresScene(opts Options) (*Scene, error) {
	count := opts.SphereCount
	if count <= 0 {
		count = defaultSphereCount
	}
	sampler := core.NewSeededSampler(opts.Seed)
	diffuse := material.NewLambertian()

	lighting := DefaultLighting()
	lighting.Position = core.NewVec3(0, 0, 1)
	lighting.AmbientK = core.NewVec3(0.1, 0.1, 0.1)
	lighting.SpecularK = core.NewVec3(0.2, 0.2, 0.2)

	s := &Scene{
		Name:       "spheres",
		Background: NewSolidBackground(core.Vec3{}),
		Camera:     DefaultCameraConfig(),
		Sampling: SamplingConfig{
			Width:    400,
			Height:   400,
			MaxDepth: 1,
		},
		Lighting:   lighting,
		Integrator: "phong",
		Shapes:     make([]geometry.Shape, 0, count),
	}

	for i := 0; i < count; i++ {
		center := core.NewVec3(
			core.RandomRange(sampler, -randomSphereSpreadX, randomSphereSpreadX),
			core.RandomRange(sampler, -randomSphereSpreadY, randomSphereSpreadY),
			core.RandomRange(sampler, -1, -0.1),
		)
		albedo := core.RandomVec3(sampler, 0, 1)
		s.Shapes = append(s.Shapes, geometry.NewSphere(center, randomSphereRadius, geometry.NewSurface(albedo, diffuse)))
	}

	return s, nil
}
