package renderer

import (
	"testing"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

func TestPixelBufferCopyRows(t *testing.T) {
	buffer := NewPixelBuffer(3, 4)
	rows := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(3, 0, 0),
		core.NewVec3(4, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(6, 0, 0),
	}

	if err := buffer.CopyRows(1, rows); err != nil {
		t.Fatalf("CopyRows: %v", err)
	}

	if buffer.At(0, 0) != (core.Vec3{}) || buffer.At(3, 2) != (core.Vec3{}) {
		t.Error("Rows outside the copied range should stay black")
	}
	if buffer.At(1, 0).X != 1 || buffer.At(2, 2).X != 6 {
		t.Errorf("Unexpected copied pixels %v, %v", buffer.At(1, 0), buffer.At(2, 2))
	}
}

func TestPixelBufferCopyRowsErrors(t *testing.T) {
	tests := []struct {
		name     string
		startRow int
		pixels   int
	}{
		{"partial row", 0, 4},
		{"past the end", 3, 6},
		{"negative start", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := NewPixelBuffer(3, 4)
			if err := buffer.CopyRows(tt.startRow, make([]core.Vec3, tt.pixels)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
