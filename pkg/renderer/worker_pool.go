package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowTask asks a worker to render one scanline
type RowTask struct {
	Row int // Scanline index counted upward from the bottom of the view plane
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Samples int
	Error   error
}

// WorkerPool renders rows in parallel into a shared image.
// Each row is written by exactly one worker, so no locking is needed.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	raytracer   *Raytracer
	image       *Image
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, image *Image, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, image.Height),   // Buffer for all rows
		resultQueue: make(chan RowResult, image.Height), // Buffer for all results
		raytracer:   raytracer,
		image:       image,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Rows picked up after ctx is done are skipped.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop closes the task queue, waits for the workers and closes the results
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- RowResult{Row: task.Row, Error: err}
			continue
		}

		out := wp.image.Row(wp.image.Height - 1 - task.Row)
		samples, err := wp.raytracer.RenderRow(task.Row, out)
		wp.resultQueue <- RowResult{Row: task.Row, Samples: samples, Error: err}
	}
}
