package integrator

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// hitEpsilon is the minimum ray parameter accepted for a hit, avoiding self-intersection
const hitEpsilon = 1e-4

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

// New returns the integrator registered under name ("path" or "phong")
func New(name string) (Integrator, error) {
	switch name {
	case "path", "":
		return NewPathTracingIntegrator(), nil
	case "phong":
		return NewPhongIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}
