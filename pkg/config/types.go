package config

// RenderConfig is the complete configuration for one render run.
// Zero values mean "keep the scene's own setting" unless noted.
type RenderConfig struct {
	Scene    Scene    `yaml:"scene"`
	Camera   Camera   `yaml:"camera"`
	Sampling Sampling `yaml:"sampling"`
	Render   Render   `yaml:"render"`
	Output   Output   `yaml:"output"`
}

type Scene struct {
	Name        string       `yaml:"name"`
	Integrator  string       `yaml:"integrator,omitempty"` // "path" or "phong"; empty uses the scene's choice
	SphereCount int          `yaml:"sphere_count,omitempty"`
	Background  [][3]float64 `yaml:"background,omitempty"` // gradient stops, bottom to top
	Mesh        Mesh         `yaml:"mesh,omitempty"`
}

type Mesh struct {
	Path          string     `yaml:"path,omitempty"`
	Scale         float64    `yaml:"scale,omitempty"`
	Offset        [3]float64 `yaml:"offset,omitempty"`
	SmoothNormals bool       `yaml:"smooth_normals,omitempty"`
}

type Camera struct {
	Perspective   *bool       `yaml:"perspective,omitempty"`
	Eye           *[3]float64 `yaml:"eye,omitempty"`
	ViewDir       *[3]float64 `yaml:"view_dir,omitempty"`
	Up            *[3]float64 `yaml:"up,omitempty"`
	Distance      float64     `yaml:"distance,omitempty"`
	ViewportWidth float64     `yaml:"viewport_width,omitempty"`
}

type Sampling struct {
	Width    int  `yaml:"width,omitempty"`
	Height   int  `yaml:"height,omitempty"`
	FineGrid *int `yaml:"fine_grid,omitempty"` // 0 disables jitter
	MaxDepth int  `yaml:"max_depth,omitempty"`
}

type Render struct {
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers,omitempty"` // 0 uses every CPU
}

type Output struct {
	PPM   string  `yaml:"ppm,omitempty"`
	PNG   string  `yaml:"png,omitempty"`
	Gamma float64 `yaml:"gamma,omitempty"` // 0 or 1 writes linear values
}

// Default returns the configuration used when no file is given
func Default() *RenderConfig {
	return &RenderConfig{
		Scene:  Scene{Name: "basic"},
		Render: Render{Seed: 1},
		Output: Output{PPM: "render.ppm"},
	}
}
