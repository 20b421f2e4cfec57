package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
	"github.com/df07/go-banded-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned for sampling configurations that cannot render
var ErrInvalidConfig = errors.New("invalid sampling configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of band workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-row random sources
}

// DefaultSamplingConfig returns the production settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        20,
		NumWorkers:      12,
		Seed:            42,
	}
}

func (c SamplingConfig) validate() error {
	switch {
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Raytracer renders one frame of a scene with a fixed pool of band workers
type Raytracer struct {
	camera           *Camera
	world            geometry.Shape
	integrator       integrator.Integrator
	config           SamplingConfig
	logger           core.Logger
	progressInterval time.Duration
}

// NewRaytracer creates a raytracer using the path tracing integrator
func NewRaytracer(camera *Camera, world geometry.Shape, background integrator.Background, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		camera:           camera,
		world:            world,
		integrator:       integrator.NewPathTracingIntegrator(config.MaxDepth, background),
		config:           config,
		logger:           logger,
		progressInterval: DefaultProgressInterval,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetProgressInterval changes how often progress is reported
func (rt *Raytracer) SetProgressInterval(interval time.Duration) {
	rt.progressInterval = interval
}

// Config returns the effective sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render runs every band worker and the progress observer to completion.
// There is no cancellation: a panic in a worker takes the process down.
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	total := int64(width) * int64(height)

	bands := NewBandGrid(height, rt.config.NumWorkers)
	buffer := NewPixelBuffer(width, height)
	bandRenderer := NewBandRenderer(rt.camera, rt.world, rt.integrator, rt.config.SamplesPerPixel, rt.config.Seed)
	pool := NewWorkerPool(bandRenderer, bands, buffer)

	// Dimensions are preformatted so the logger does not digit-group them
	rt.logger.Printf("Rendering %s at %d samples per pixel (using %d workers)...\n",
		fmt.Sprintf("%dx%d", width, height), rt.config.SamplesPerPixel, pool.GetNumWorkers())

	observer := NewProgressObserver(pool.Progress(), total, rt.progressInterval, rt.logger)
	done := make(chan struct{})
	var observerWG sync.WaitGroup
	observerWG.Add(1)
	go func() {
		defer observerWG.Done()
		observer.Run(done)
	}()

	err := pool.Run()
	close(done)
	observerWG.Wait()

	elapsed := time.Since(startTime)
	rt.logger.Printf("\nRendering time: %v\n", elapsed.Round(time.Millisecond))
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	bandRows := make([]int, len(bands))
	for i, band := range bands {
		bandRows[i] = band.Rows()
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalSamples:    total * int64(rt.config.SamplesPerPixel),
		Workers:         len(bands),
		BandRows:        bandRows,
		PixelsCompleted: pool.Progress().Load(),
		Elapsed:         elapsed,
	}
	return buffer, stats, nil
}
