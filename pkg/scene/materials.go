package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// NewMaterialsScene shows every material: a mirror, a glass and a diffuse sphere
// over a checkerboard floor, lit by emissive triangles and a ceiling panel
func NewMaterialsScene(opts Options) (*Scene, error) {
	gray := core.NewVec3(0.8, 0.8, 0.8)
	white := core.NewVec3(1, 1, 1)
	pink := core.NewVec3(0.7, 0.3, 0.3)
	teal := core.NewVec3(0.0470446, 0.678865, 0.679296)
	brightWhite := core.NewVec3(4, 4, 4)

	diffuse := material.NewLambertian()
	panelLight := material.NewAreaLight(white)

	s := &Scene{
		Name:       "materials",
		Background: NewSolidBackground(core.NewVec3(0.5, 0.7, 1.0)),
		Camera:     DefaultCameraConfig(),
		Sampling: SamplingConfig{
			Width:    200,
			Height:   200,
			FineGrid: 16,
			MaxDepth: 50,
		},
		Lighting:   DefaultLighting(),
		Integrator: "path",
	}

	s.Shapes = append(s.Shapes, checkerboard(-0.5, core.NewVec3(255, 228, 156).Multiply(1.0/255.0), core.NewVec3(0.3, 0.3, 0.3))...)

	s.Shapes = append(s.Shapes,
		geometry.NewTriangle(
			core.NewVec3(-0.3, -0.8, -0.5),
			core.NewVec3(-0.8, -0.6, -1),
			core.NewVec3(-0.4, 0.2, -0.7),
			geometry.NewSurface(teal, diffuse)),
		geometry.NewSphere(core.NewVec3(-0.2, -0.3, -1), 0.3, geometry.NewSurface(gray, material.NewMirror(0.05))),
		geometry.NewSphere(core.NewVec3(0.4, -0.2, -1), 0.3, geometry.NewSurface(white, material.NewGlass(1.5))),
		geometry.NewSphere(core.NewVec3(0.3, -0.43, -0.7), 0.07, geometry.NewSurface(pink, diffuse)),

		// Back wall panel made of two emissive triangles
		geometry.NewTriangle(
			core.NewVec3(-1, -0.2, -1.5), core.NewVec3(1, -0.2, -1.5), core.NewVec3(1, 1, -1.5),
			geometry.NewSurface(white, panelLight)),
		geometry.NewTriangle(
			core.NewVec3(-1, -0.2, -1.5), core.NewVec3(1, 1, -1.5), core.NewVec3(-1, 1, -1.5),
			geometry.NewSurface(white, panelLight)),

		// Glowing floor triangle just above the checkerboard
		geometry.NewTriangle(
			core.NewVec3(0, -0.49, -1.5), core.NewVec3(1, -0.49, -0.5), core.NewVec3(-1, -0.49, -0.5),
			geometry.NewSurface(white, panelLight)),

		geometry.NewRectangle(-0.5, 0.5, -1.3, -0.7, 1.2, geometry.NewSurface(brightWhite, material.NewAreaLight(brightWhite))),
	)

	return s, nil
}

// checkerboard tiles the plane y = height with unit squares, two triangles
// per square, covering x in [-10, 10) and z in (-10, 0]
func checkerboard(height float64, colorA, colorB core.Vec3) []geometry.Shape {
	const size = 1.0
	diffuse := material.NewLambertian()
	a := geometry.NewSurface(colorA, diffuse)
	b := geometry.NewSurface(colorB, diffuse)

	shapes := make([]geometry.Shape, 0, 400)
	for z := 0.0; z > -10; z -= size {
		for x := -10.0; x < 10; x += size {
			p0 := core.NewVec3(x, height, z-size)
			p1 := core.NewVec3(x, height, z)
			p2 := core.NewVec3(x+size, height, z)
			p3 := core.NewVec3(x+size, height, z-size)
			shapes = append(shapes,
				geometry.NewTriangle(p0, p1, p2, a),
				geometry.NewTriangle(p0, p2, p3, b))
		}
	}
	return shapes
}
