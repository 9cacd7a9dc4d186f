package material

import "github.com/df07/go-bvh-pathtracer/pkg/core"

// stubSampler returns fixed values so scattering decisions can be forced
type stubSampler struct {
	one   float64
	two   core.Vec2
	three core.Vec3
}

func (s stubSampler) Get1D() float64   { return s.one }
func (s stubSampler) Get2D() core.Vec2 { return s.two }
func (s stubSampler) Get3D() core.Vec3 { return s.three }
