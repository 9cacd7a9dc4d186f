package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/df07/go-bvh-pathtracer/pkg/config"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

var CLI struct {
	Render RenderCmd `cmd:"" default:"withargs" help:"Render a scene to PPM (and optionally PNG)"`
	Scenes ScenesCmd `cmd:"" help:"List the built-in scenes"`
	Init   InitCmd   `cmd:"" help:"Write a default YAML config file"`
}

// RenderCmd flags override values from the config file
type RenderCmd struct {
	Config      string  `short:"c" type:"existingfile" help:"YAML render config"`
	Scene       string  `short:"s" help:"Built-in scene name"`
	Integrator  string  `short:"i" help:"Integrator: path or phong"`
	Width       int     `help:"Image width in pixels"`
	Height      int     `help:"Image height in pixels"`
	FineGrid    int     `name:"fine-grid" default:"-1" help:"Multi-jitter fine grid (perfect square, 0 disables jitter)"`
	Depth       int     `help:"Maximum ray depth"`
	Seed        *int64  `help:"Random seed"`
	Workers     int     `short:"w" help:"Worker goroutines (0 uses every CPU)"`
	Output      string  `short:"o" help:"PPM output path"`
	PNG         string  `name:"png" help:"PNG preview output path"`
	Gamma       float64 `help:"Gamma applied on output (0 or 1 keeps linear values)"`
	Perspective bool    `help:"Use the perspective camera"`
	Spheres     int     `help:"Sphere count for the spheres scene"`
	Mesh        string  `type:"existingfile" help:"OBJ or 3MF file for the mesh scene"`
	MeshScale   float64 `name:"mesh-scale" help:"Uniform mesh scale"`
	Smooth      bool    `help:"Interpolate mesh vertex normals"`
	Quiet       bool    `short:"q" help:"Suppress progress output"`
}

// renderConfig merges the config file (or defaults) with the command line
func (c *RenderCmd) renderConfig() (*config.RenderConfig, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true})
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Scene != "" {
		cfg.Scene.Name = c.Scene
	}
	if c.Integrator != "" {
		cfg.Scene.Integrator = c.Integrator
	}
	if c.Width > 0 {
		cfg.Sampling.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Sampling.Height = c.Height
	}
	if c.FineGrid >= 0 {
		cfg.Sampling.FineGrid = &c.FineGrid
	}
	if c.Depth > 0 {
		cfg.Sampling.MaxDepth = c.Depth
	}
	if c.Seed != nil {
		cfg.Render.Seed = *c.Seed
	}
	if c.Workers != 0 {
		cfg.Render.Workers = c.Workers
	}
	if c.Output != "" {
		cfg.Output.PPM = c.Output
	}
	if c.PNG != "" {
		cfg.Output.PNG = c.PNG
	}
	if c.Gamma != 0 {
		cfg.Output.Gamma = c.Gamma
	}
	if c.Perspective {
		perspective := true
		cfg.Camera.Perspective = &perspective
	}
	if c.Spheres > 0 {
		cfg.Scene.SphereCount = c.Spheres
	}
	if c.Mesh != "" {
		cfg.Scene.Mesh.Path = c.Mesh
	}
	if c.MeshScale > 0 {
		cfg.Scene.Mesh.Scale = c.MeshScale
	}
	if c.Smooth {
		cfg.Scene.Mesh.SmoothNormals = true
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration:\n%s", config.FormatValidationErrors(errs))
	}
	return cfg, nil
}

func (c *RenderCmd) Run() error {
	cfg, err := c.renderConfig()
	if err != nil {
		return err
	}

	var logger = renderer.NewDefaultLogger()
	if c.Quiet {
		logger = nil
	}

	sc, err := scene.Create(cfg.Scene.Name, cfg.SceneOptions())
	if err != nil {
		return err
	}
	cfg.Apply(sc)

	integ, err := integrator.New(sc.Integrator)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, integ, cfg.RendererConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to create raytracer: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	for _, path := range []string{cfg.Output.PPM, cfg.Output.PNG} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if cfg.Output.PPM != "" {
		if err := renderer.SavePPM(cfg.Output.PPM, img, cfg.Output.Gamma); err != nil {
			return err
		}
		fmt.Printf("Render saved as %s\n", cfg.Output.PPM)
	}
	if cfg.Output.PNG != "" {
		if err := renderer.SavePNG(cfg.Output.PNG, img, cfg.Output.Gamma); err != nil {
			return err
		}
		fmt.Printf("Preview saved as %s\n", cfg.Output.PNG)
	}

	fmt.Printf("Render completed in %v (%d samples, %.1f per pixel)\n",
		stats.RenderTime, stats.TotalSamples, stats.AverageSamples)
	return nil
}

type ScenesCmd struct{}

func (c *ScenesCmd) Run() error {
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-10s %-6s %s\n", info.ID, info.Integrator, info.Description)
	}
	return nil
}

type InitCmd struct {
	Path  string `arg:"" default:"render.yaml" help:"Where to write the config"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

func (c *InitCmd) Run() error {
	if _, err := os.Stat(c.Path); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", c.Path)
	}
	if err := config.SaveToFile(config.Default(), c.Path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", c.Path)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pathtracer"),
		kong.Description("BVH path tracer with Phong and recursive path tracing integrators"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
