package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Options tune the built-in scenes
type Options struct {
	Seed          int64     // Random seed for generated scenes
	SphereCount   int       // Number of spheres in the spheres scene
	MeshPath      string    // OBJ or 3MF file for the mesh scene
	MeshScale     float64   // Uniform mesh scale (0 means 1)
	MeshOffset    core.Vec3 // Mesh translation
	SmoothNormals bool      // Interpolate vertex normals across mesh faces
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Description string
	Integrator  string
}

type builtinScene struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var builtins = map[string]builtinScene{
	"basic": {
		info:  SceneInfo{ID: "basic", Description: "Two spheres, a triangle and a plane with Phong shading and hard shadows", Integrator: "phong"},
		build: NewBasicScene,
	},
	"spheres": {
		info:  SceneInfo{ID: "spheres", Description: "Thousands of small random spheres", Integrator: "phong"},
		build: NewSpheresScene,
	},
	"materials": {
		info:  SceneInfo{ID: "materials", Description: "Mirror, glass and diffuse spheres on a checkerboard lit by area lights", Integrator: "path"},
		build: NewMaterialsScene,
	},
	"mesh": {
		info:  SceneInfo{ID: "mesh", Description: "A triangle mesh loaded from an OBJ or 3MF file", Integrator: "phong"},
		build: NewMeshScene,
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the built-in scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		infos = append(infos, builtins[name].info)
	}
	return infos
}

// Create builds and preprocesses a built-in scene
func Create(name string, opts Options) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	s, err := b.build(opts)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("preprocessing scene %q: %w", name, err)
	}
	return s, nil
}
