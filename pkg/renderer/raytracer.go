package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// Config contains renderer settings that are not part of the scene
type Config struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Row r draws from a generator seeded with Seed + r
}

// Raytracer renders a preprocessed scene with an integrator
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	width      int
	height     int
	fineGrid   int
	maxDepth   int
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer, building the scene BVH if it is missing
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) (*Raytracer, error) {
	sampling := sc.Sampling
	if sampling.Width <= 0 || sampling.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", sampling.Width, sampling.Height)
	}
	if sampling.FineGrid > 0 {
		if _, err := MultiJitterMask(sampling.FineGrid, rand.New(rand.NewSource(0))); err != nil {
			return nil, err
		}
	}
	if sc.BVH == nil {
		if err := sc.Preprocess(); err != nil {
			return nil, fmt.Errorf("failed to preprocess scene: %w", err)
		}
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &Raytracer{
		scene:      sc,
		integrator: integ,
		camera:     NewCamera(sc.Camera, sampling.Width, sampling.Height),
		width:      sampling.Width,
		height:     sampling.Height,
		fineGrid:   sampling.FineGrid,
		maxDepth:   sampling.MaxDepth,
		config:     config,
		logger:     logger,
	}, nil
}

// RenderRow renders view-plane row j (counted from the bottom) into out and
// returns the number of samples taken. The row's random generator depends
// only on the seed and j, so results do not depend on scheduling.
func (rt *Raytracer) RenderRow(j int, out []core.Vec3) (int, error) {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(j)))
	sampler := core.NewRandomSampler(random)

	total := 0
	for i := 0; i < rt.width; i++ {
		samples, err := jitteredSamples(rt.fineGrid, random)
		if err != nil {
			return total, err
		}

		var pixel PixelStats
		for _, s := range samples {
			ray := rt.camera.GetRay(i, j, s.DX, s.DY)
			pixel.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler, rt.maxDepth))
		}
		out[i] = pixel.GetColor()
		total += pixel.SampleCount
	}
	return total, nil
}

// Render traces every pixel using a worker pool and returns the image
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()
	img := NewImage(rt.width, rt.height)

	bvhStats := rt.scene.BVH.Stats()
	rt.logger.Printf("BVH: %d shapes, %d nodes, max depth %d, avg depth %.2f\n",
		bvhStats.TotalShapes, bvhStats.TotalNodes, bvhStats.MaxDepth, bvhStats.AvgDepth)

	pool := NewWorkerPool(rt, img, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d with %d workers\n", rt.width, rt.height, pool.GetNumWorkers())

	pool.Start(ctx)
	for j := 0; j < rt.height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	stats := RenderStats{TotalPixels: rt.width * rt.height, BVH: bvhStats}
	var firstErr error
	step := max(rt.height/10, 1)
	for done := 1; done <= rt.height; done++ {
		result, _ := pool.GetResult()
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.TotalSamples += result.Samples
		if done%step == 0 {
			rt.logger.Printf("Rows done: %d/%d\n", done, rt.height)
		}
	}
	pool.Stop()

	if firstErr != nil {
		return nil, stats, fmt.Errorf("render aborted: %w", firstErr)
	}

	stats.RenderTime = time.Since(start)
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.MeanLuminance, stats.StdDevLuminance = luminanceStats(img)

	rt.logger.Printf("Rendered %d samples in %v (mean luminance %.4f, stddev %.4f)\n",
		stats.TotalSamples, stats.RenderTime, stats.MeanLuminance, stats.StdDevLuminance)

	return img, stats, nil
}
