package renderer

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// Camera generates rays through a view plane of width*height pixels.
// Pixel (i, j) counts i to the right and j upward from the lower-left corner.
type Camera struct {
	perspective bool
	eye         core.Vec3
	forward     core.Vec3 // unit viewing direction
	right       core.Vec3 // unit view-plane x axis
	up          core.Vec3 // unit view-plane y axis
	distance    float64
	scale       float64 // world units per pixel
	width       int
	height      int
}

// NewCamera creates a camera for an image of the given size
func NewCamera(config scene.CameraConfig, width, height int) *Camera {
	forward := config.ViewDir.Normalize()
	if forward.NearZero() {
		forward = core.NewVec3(0, 0, -1)
	}
	up := config.Up
	if up.NearZero() {
		up = core.NewVec3(0, 1, 0)
	}
	right := forward.Cross(up).Normalize()
	viewUp := right.Cross(forward)

	viewportWidth := config.ViewportWidth
	if viewportWidth <= 0 {
		viewportWidth = 4.0
	}
	distance := config.Distance
	if distance <= 0 {
		distance = 1.0
	}

	return &Camera{
		perspective: config.Perspective,
		eye:         config.Eye,
		forward:     forward,
		right:       right,
		up:          viewUp,
		distance:    distance,
		scale:       viewportWidth / float64(width),
		width:       width,
		height:      height,
	}
}

// viewPlane maps pixel (i, j) plus sub-pixel offset (dx, dy) in [0,1) to view plane coordinates
func (c *Camera) viewPlane(i, j int, dx, dy float64) (float64, float64) {
	x := c.scale * (float64(i-c.width/2) + dx)
	y := c.scale * (float64(j-c.height/2) + dy)
	return x, y
}

// GetRay returns the ray through pixel (i, j) at sub-pixel offset (dx, dy)
func (c *Camera) GetRay(i, j int, dx, dy float64) core.Ray {
	x, y := c.viewPlane(i, j, dx, dy)

	if !c.perspective {
		// Orthographic: parallel rays leaving the z = 0 view plane
		return core.NewRay(core.NewVec3(x, y, 0), core.NewVec3(0, 0, -1))
	}

	point := c.eye.
		Add(c.forward.Multiply(c.distance)).
		Add(c.right.Multiply(x)).
		Add(c.up.Multiply(y))
	return core.NewRay(c.eye, point.Subtract(c.eye))
}
