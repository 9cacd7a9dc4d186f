package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// NewBasicScene creates two spheres, a triangle and a ground plane lit by one Phong light
func NewBasicScene(opts Options) (*Scene, error) {
	yellow := core.NewVec3(255, 230, 0).Multiply(1.0 / 255.0)
	green := core.NewVec3(14, 153, 39).Multiply(1.0 / 255.0)
	diffuse := material.NewLambertian()

	lighting := DefaultLighting()
	lighting.Position = core.NewVec3(0.5, 1.5, 0.5)
	lighting.AmbientI = core.NewVec3(0.05, 0.05, 0.05)
	lighting.Specular = true
	lighting.Shadows = true

	s := &Scene{
		Name:       "basic",
		Background: DefaultBackground(),
		Camera:     DefaultCameraConfig(),
		Sampling: SamplingConfig{
			Width:    500,
			Height:   333,
			MaxDepth: 1,
		},
		Lighting:   lighting,
		Integrator: "phong",
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, geometry.NewSurface(yellow, diffuse)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, geometry.NewSurface(yellow, diffuse)),
		geometry.NewTriangle(
			core.NewVec3(0.6, -0.5, -1.2),
			core.NewVec3(1.6, -0.5, -1.2),
			core.NewVec3(1.1, 0.4, -1.2),
			geometry.NewSurface(core.NewVec3(0.0470446, 0.678865, 0.679296), diffuse)),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), geometry.NewSurface(green, diffuse)),
	)

	return s, nil
}
