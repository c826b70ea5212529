package renderer

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/df07/go-raycaster/pkg/shading"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   image.Rectangle
	TaskID int // Position in dispatch order
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Raster *Raster
	Stats  RenderStats
}

// TileFunc renders one tile with a worker's context
type TileFunc func(rc *shading.Context, tile image.Rectangle) (*Raster, RenderStats)

// WorkerPool renders tiles in parallel. Every worker owns one
// shading.Context for the duration of a Run and never shares it.
type WorkerPool struct {
	numWorkers int
	seed       uint64
	pass       shading.Pass
	render     TileFunc
}

// NewWorkerPool creates a pool with numWorkers workers (0 = one per CPU)
func NewWorkerPool(numWorkers int, seed uint64, pass shading.Pass, render TileFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers, seed: seed, pass: pass, render: render}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run dispatches tiles in order and sends each result to results as it
// completes. results is closed once every worker has stopped. Cancelling ctx
// stops dispatch; tiles already being rendered are finished but may be
// dropped.
func (wp *WorkerPool) Run(ctx context.Context, tiles []image.Rectangle, results chan<- TileResult) error {
	defer close(results)

	eg, ctx := errgroup.WithContext(ctx)
	tasks := make(chan TileTask)

	eg.Go(func() error {
		defer close(tasks)
		for i, tile := range tiles {
			if ctx.Err() != nil {
				return nil
			}
			select {
			case tasks <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		eg.Go(func() error {
			rc := shading.NewContext(wp.seed+uint64(i), wp.numWorkers > 1)
			defer rc.Close()
			rc.BeginPass(wp.pass)

			for task := range tasks {
				raster, stats := wp.render(rc, task.Tile)
				select {
				case results <- TileResult{TaskID: task.TaskID, Raster: raster, Stats: stats}:
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return xerrors.Errorf("while waiting for tile workers: %w", err)
	}
	return nil
}
