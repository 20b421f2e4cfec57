package renderer

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// WorkerPool runs one goroutine per band and merges results into a shared buffer
type WorkerPool struct {
	renderer *BandRenderer
	bands    []Band
	buffer   *PixelBuffer
	progress atomic.Int64 // Pixels completed across all workers; advisory only
}

// NewWorkerPool creates a pool with one worker per band
func NewWorkerPool(renderer *BandRenderer, bands []Band, buffer *PixelBuffer) *WorkerPool {
	return &WorkerPool{
		renderer: renderer,
		bands:    bands,
		buffer:   buffer,
	}
}

// Progress returns the shared completed-pixel counter
func (wp *WorkerPool) Progress() *atomic.Int64 {
	return &wp.progress
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.bands)
}

// Run starts every worker and blocks until all of them have merged their band
func (wp *WorkerPool) Run() error {
	var g errgroup.Group
	for _, band := range wp.bands {
		band := band
		g.Go(func() error {
			return wp.runWorker(band)
		})
	}
	return g.Wait()
}

// runWorker renders a band into a private buffer, then copies it in under the buffer lock
func (wp *WorkerPool) runWorker(band Band) error {
	if band.Rows() == 0 {
		return nil
	}

	local := make([]core.Vec3, band.Rows()*wp.buffer.Width())
	wp.renderer.RenderBand(band, local, &wp.progress)

	if err := wp.buffer.CopyRows(band.StartRow, local); err != nil {
		return fmt.Errorf("worker %d: %w", band.ID, err)
	}
	return nil
}
