package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// PixelBuffer is the shared row-major image every worker merges into.
// Writers go through CopyRows; readers should wait until the render is done.
type PixelBuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []core.Vec3
}

// NewPixelBuffer creates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the buffer width in pixels
func (pb *PixelBuffer) Width() int { return pb.width }

// Height returns the buffer height in pixels
func (pb *PixelBuffer) Height() int { return pb.height }

// At returns the color of pixel (row, col)
func (pb *PixelBuffer) At(row, col int) core.Vec3 {
	return pb.pixels[row*pb.width+col]
}

// CopyRows copies a worker's private rows into the buffer starting at startRow.
// The lock covers only the copy.
func (pb *PixelBuffer) CopyRows(startRow int, rows []core.Vec3) error {
	if len(rows)%pb.width != 0 {
		return fmt.Errorf("band of %d pixels is not a whole number of %d-pixel rows", len(rows), pb.width)
	}
	offset := startRow * pb.width
	if startRow < 0 || offset+len(rows) > len(pb.pixels) {
		return fmt.Errorf("rows %d..%d out of range for %d-row buffer", startRow, startRow+len(rows)/pb.width, pb.height)
	}

	pb.mu.Lock()
	defer pb.mu.Unlock()
	copy(pb.pixels[offset:], rows)
	return nil
}
