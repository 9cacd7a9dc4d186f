package integrator

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// PhongIntegrator shades the first hit directly from the scene's point light
// with ambient, diffuse and optional specular terms, plus optional hard shadows.
// It never recurses, so depth is ignored.
type PhongIntegrator struct{}

// NewPhongIntegrator creates a new Phong integrator
func NewPhongIntegrator() *PhongIntegrator {
	return &PhongIntegrator{}
}

// RayColor shades the closest hit or returns the background on a miss
func (p *PhongIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	var hit material.HitRecord
	if !sc.Hit(ray, hitEpsilon, math.Inf(1), &hit) {
		return sc.Background.Color(ray.Direction)
	}

	color := p.reflection(ray, hit, sc.Lighting)
	if sc.Lighting.Shadows {
		color = p.applyShadows(color, hit, sc)
	}
	return color
}

// reflection evaluates the Phong model at a hit, clamped to [0,1]
func (p *PhongIntegrator) reflection(ray core.Ray, hit material.HitRecord, light scene.Lighting) core.Vec3 {
	n := hit.Normal
	l := light.Position.Subtract(hit.Point).Normalize()

	ambient := light.AmbientK.MultiplyVec(light.AmbientI)
	diffuse := hit.Albedo.Multiply(math.Max(l.Dot(n), 0)).MultiplyVec(light.DiffuseI)
	color := ambient.Add(diffuse)

	if light.Specular {
		v := ray.Direction.Negate().Normalize()
		r := n.Multiply(2 * l.Dot(n)).Subtract(l).Normalize()
		specular := math.Pow(math.Max(r.Dot(v), 0), light.Shininess)
		color = color.Add(light.SpecularK.Multiply(specular).MultiplyVec(light.SpecularI))
	}

	return color.Clamp(0, 1)
}

// applyShadows darkens color once per occluder between the hit and the light.
// With ShadowCasters > 0 only the first ShadowCasters shapes are tested and each
// one that blocks counts; otherwise the whole scene is queried once.
func (p *PhongIntegrator) applyShadows(color core.Vec3, hit material.HitRecord, sc *scene.Scene) core.Vec3 {
	light := sc.Lighting
	toLight := light.Position.Subtract(hit.Point)

	// The light sits at t = 1 along the unnormalized shadow ray
	origin := hit.Point.Add(toLight.Multiply(hitEpsilon))
	shadowRay := core.NewRay(origin, toLight)
	const tMin, tMax = 0.001, 1.0

	var tmp material.HitRecord
	if light.ShadowCasters <= 0 {
		if sc.Hit(shadowRay, tMin, tMax, &tmp) {
			color = color.Multiply(light.ShadowFactor)
		}
		return color
	}

	for _, shape := range sc.Shapes[:min(light.ShadowCasters, len(sc.Shapes))] {
		if shape.Hit(shadowRay, tMin, tMax, &tmp) {
			color = color.Multiply(light.ShadowFactor)
		}
	}
	return color
}
