package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once, preprocessed, and then only read while rendering.
type Scene struct {
	Name       string
	Shapes     []geometry.Shape // Objects in the scene
	Background Background
	Camera     CameraConfig
	Sampling   SamplingConfig
	Lighting   Lighting
	Integrator string        // "path" or "phong"
	BVH        *geometry.BVH // Acceleration structure for ray-object intersection
}

// CameraConfig describes the view plane and projection
type CameraConfig struct {
	Perspective   bool
	Eye           core.Vec3 // Perspective eye point
	ViewDir       core.Vec3 // Perspective viewing direction
	Up            core.Vec3
	Distance      float64 // Distance from the eye to the view plane
	ViewportWidth float64 // Width of the view plane in world units
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width    int // Image width
	Height   int // Image height
	FineGrid int // Multi-jitter fine grid size (a perfect square); 0 shoots one ray per pixel
	MaxDepth int // Maximum ray bounce depth
}

// Lighting holds the point light and coefficients used by Phong shading
type Lighting struct {
	Position      core.Vec3
	AmbientK      core.Vec3
	AmbientI      core.Vec3
	DiffuseI      core.Vec3
	Specular      bool // Add the specular term
	SpecularK     core.Vec3
	SpecularI     core.Vec3
	Shininess     float64
	Shadows       bool    // Cast shadow rays toward the light
	ShadowCasters int     // Number of leading shapes tested for shadows; <= 0 tests the whole scene
	ShadowFactor  float64 // Multiplier applied per occluder
}

// DefaultCameraConfig returns the orthographic camera looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:           core.NewVec3(0, 0, 0),
		ViewDir:       core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Distance:      1.0,
		ViewportWidth: 4.0,
	}
}

// DefaultLighting returns white diffuse light with no ambient term
func DefaultLighting() Lighting {
	return Lighting{
		Position:     core.NewVec3(0.75, 0.75, 0.5),
		AmbientK:     core.NewVec3(1, 1, 1),
		DiffuseI:     core.NewVec3(1, 1, 1),
		SpecularK:    core.NewVec3(1, 1, 1),
		SpecularI:    core.NewVec3(1, 1, 1),
		Shininess:    20,
		ShadowFactor: 0.4,
	}
}

// Preprocess prepares the scene for rendering
func (s *Scene) Preprocess() error {
	s.BVH = geometry.NewBVH(s.Shapes)
	return nil
}

// Hit finds the closest intersection in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if s.BVH == nil {
		return false
	}
	return s.BVH.Hit(ray, tMin, tMax, hit)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// AddMesh appends every triangle of a mesh to the scene
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	s.Shapes = append(s.Shapes, mesh.GetTriangles()...)
}
