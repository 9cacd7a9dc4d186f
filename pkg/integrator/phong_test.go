package integrator

import (
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
	"github.com/stretchr/testify/assert"
)

func TestPhong_DiffuseAndSpecular(t *testing.T) {
	sc := newTestScene(t, scene.DefaultBackground(),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, geometry.NewSurface(core.NewVec3(1, 0, 0), material.NewLambertian())))
	sc.Lighting.Position = core.NewVec3(0, 0, 5)
	integrator := NewPhongIntegrator()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	assertVecNear(t, core.NewVec3(1, 0, 0), integrator.RayColor(ray, sc, nil, 1), 1e-12)

	// Head-on highlight saturates every channel
	sc.Lighting.Specular = true
	assertVecNear(t, core.NewVec3(1, 1, 1), integrator.RayColor(ray, sc, nil, 1), 1e-12)
}

func TestPhong_MissReturnsBackground(t *testing.T) {
	sc := newTestScene(t, scene.DefaultBackground())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	assertVecNear(t, core.NewVec3(1, 1, 1), NewPhongIntegrator().RayColor(ray, sc, nil, 1), 1e-12)
}

func TestPhong_BackFacingLightGivesAmbientOnly(t *testing.T) {
	sc := newTestScene(t, scene.DefaultBackground(),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, geometry.NewSurface(core.NewVec3(1, 1, 1), material.NewLambertian())))
	sc.Lighting.Position = core.NewVec3(0, 0, -5)
	sc.Lighting.AmbientI = core.NewVec3(0.1, 0.2, 0.3)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	assertVecNear(t, core.NewVec3(0.1, 0.2, 0.3), NewPhongIntegrator().RayColor(ray, sc, nil, 1), 1e-12)
}

func TestPhong_Shadows(t *testing.T) {
	gray := geometry.NewSurface(core.NewVec3(0.5, 0.5, 0.5), material.NewLambertian())
	sc := newTestScene(t, scene.DefaultBackground(),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, 3, 0), 0.5, gray),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), gray),
	)
	sc.Lighting.Position = core.NewVec3(0, 5, 0)
	integrator := NewPhongIntegrator()

	// Lands on the plane at the origin below both spheres
	ray := core.NewRay(core.NewVec3(2, 2, 0), core.NewVec3(-2, -3, 0))

	tests := []struct {
		name     string
		shadows  bool
		casters  int
		expected float64
	}{
		{"no shadows", false, 0, 0.5},
		{"whole scene counts closest occluder", true, 0, 0.5 * 0.4},
		{"first caster only", true, 1, 0.5 * 0.4},
		{"each caster darkens", true, 3, 0.5 * 0.4 * 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc.Lighting.Shadows = tt.shadows
			sc.Lighting.ShadowCasters = tt.casters
			c := integrator.RayColor(ray, sc, nil, 1)
			assert.InDelta(t, tt.expected, c.X, 1e-9)
			assert.InDelta(t, tt.expected, c.Z, 1e-9)
		})
	}
}

func TestPhong_LightBeyondOccluderIsUnshadowed(t *testing.T) {
	gray := geometry.NewSurface(core.NewVec3(0.5, 0.5, 0.5), material.NewLambertian())
	sc := newTestScene(t, scene.DefaultBackground(),
		geometry.NewSphere(core.NewVec3(0, 8, 0), 0.5, gray),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), gray),
	)
	sc.Lighting.Position = core.NewVec3(0, 5, 0)
	sc.Lighting.Shadows = true

	ray := core.NewRay(core.NewVec3(2, 2, 0), core.NewVec3(-2, -3, 0))
	assert.InDelta(t, 0.5, NewPhongIntegrator().RayColor(ray, sc, nil, 1).X, 1e-9)
}
