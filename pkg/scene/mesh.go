package scene

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/loaders"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// NewMeshScene loads a triangle mesh (OBJ or 3MF) and shades it red with Phong lighting
func NewMeshScene(opts Options) (*Scene, error) {
	if opts.MeshPath == "" {
		return nil, fmt.Errorf("mesh scene requires a mesh path")
	}

	mesh, err := loaders.LoadMesh(opts.MeshPath, geometry.NewSurface(core.NewVec3(1, 0, 0), material.NewLambertian()), loaders.MeshOptions{
		Scale:         opts.MeshScale,
		Offset:        opts.MeshOffset,
		SmoothNormals: opts.SmoothNormals,
	})
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}

	lighting := DefaultLighting()
	lighting.Position = core.NewVec3(0, 0, 1)
	lighting.AmbientK = core.NewVec3(0.1, 0.1, 0.1)

	s := &Scene{
		Name:       "mesh",
		Background: NewSolidBackground(core.Vec3{}),
		Camera:     DefaultCameraConfig(),
		Sampling: SamplingConfig{
			Width:    400,
			Height:   400,
			MaxDepth: 1,
		},
		Lighting:   lighting,
		Integrator: "phong",
	}
	s.AddMesh(mesh)

	return s, nil
}
