package integrator

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements recursive unidirectional path tracing.
// Each bounce adds the surface emission and the albedo-weighted radiance
// along the scattered ray.
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Out of bounces: the path sees the environment
	if depth <= 0 {
		return sc.Background.Color(ray.Direction)
	}

	var hit material.HitRecord
	if !sc.Hit(ray, hitEpsilon, math.Inf(1), &hit) {
		return sc.Background.Color(ray.Direction)
	}

	emitted := hit.Material.Emitted()

	scattered, ok := hit.Material.Scatter(ray, hit, sampler)
	if !ok {
		// Material absorbed the ray, only return emitted light
		return emitted
	}

	return emitted.Add(hit.Albedo.MultiplyVec(pt.RayColor(scattered, sc, sampler, depth-1)))
}
