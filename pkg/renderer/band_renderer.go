package renderer

import (
	"sync/atomic"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
	"github.com/df07/go-banded-pathtracer/pkg/integrator"
)

// BandRenderer samples the pixels of a band using an integrator
type BandRenderer struct {
	camera          *Camera
	world           geometry.Shape
	integrator      integrator.Integrator
	samplesPerPixel int
	seed            int64
}

// NewBandRenderer creates a band renderer; everything it holds is read-only
func NewBandRenderer(camera *Camera, world geometry.Shape, integratorInst integrator.Integrator, samplesPerPixel int, seed int64) *BandRenderer {
	return &BandRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		samplesPerPixel: samplesPerPixel,
		seed:            seed,
	}
}

// RowSampler returns the deterministic sampler for an image row.
// Seeding per row makes a pixel's value independent of how rows are banded.
func (br *BandRenderer) RowSampler(row int) core.Sampler {
	return core.NewSeededSampler(br.seed + int64(row))
}

// SamplePixel averages samplesPerPixel independent estimates for pixel (row, col)
func (br *BandRenderer) SamplePixel(row, col int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for s := 0; s < br.samplesPerPixel; s++ {
		ray := br.camera.GetRay(row, col, sampler)
		colorAccum = colorAccum.Add(br.integrator.RayColor(ray, br.world, sampler))
	}
	return colorAccum.Divide(float64(br.samplesPerPixel))
}

// RenderBand fills out (band.Rows() x width, row-major) and bumps progress once per pixel
func (br *BandRenderer) RenderBand(band Band, out []core.Vec3, progress *atomic.Int64) {
	width := br.camera.Width()
	for row := band.StartRow; row < band.EndRow; row++ {
		sampler := br.RowSampler(row)
		base := (row - band.StartRow) * width
		for col := 0; col < width; col++ {
			out[base+col] = br.SamplePixel(row, col, sampler)
			progress.Add(1)
		}
	}
}
