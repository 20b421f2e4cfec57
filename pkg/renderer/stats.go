package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Width * Height
	SamplesPerPixel int           // Samples taken for every pixel
	TotalSamples    int64         // TotalPixels * SamplesPerPixel
	Workers         int           // Number of band workers
	BandRows        []int         // Rows rendered by each worker
	PixelsCompleted int64         // Final value of the progress counter
	Elapsed         time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
