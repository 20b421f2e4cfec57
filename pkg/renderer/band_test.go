package renderer

import (
	"fmt"
	"testing"
)

func TestNewBandGrid_RemainderGoesToLastBand(t *testing.T) {
	height, workers := 100, 12
	bands := NewBandGrid(height, workers)

	if len(bands) != workers {
		t.Fatalf("Expected %d bands, got %d", workers, len(bands))
	}

	chunk := height / workers // 8
	for i, band := range bands[:workers-1] {
		if band.Rows() != chunk {
			t.Errorf("Band %d: expected %d rows, got %d", i, chunk, band.Rows())
		}
	}
	if last := bands[workers-1].Rows(); last != height-11*chunk {
		t.Errorf("Last band: expected %d rows, got %d", height-11*chunk, last)
	}
}

func TestNewBandGrid_Coverage(t *testing.T) {
	tests := []struct {
		height, workers int
	}{
		{100, 12},
		{1080, 12},
		{7, 3},
		{5, 8}, // fewer rows than workers
		{1, 1},
		{64, 64},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows / %d workers", tt.height, tt.workers), func(t *testing.T) {
			bands := NewBandGrid(tt.height, tt.workers)
			covered := make([]int, tt.height)

			next := 0
			for i, band := range bands {
				if band.ID != i {
					t.Errorf("Band %d has ID %d", i, band.ID)
				}
				if band.StartRow != next {
					t.Errorf("Band %d starts at %d, expected %d", i, band.StartRow, next)
				}
				if band.Rows() < 0 {
					t.Fatalf("Band %d has negative size", i)
				}
				for row := band.StartRow; row < band.EndRow; row++ {
					covered[row]++
				}
				next = band.EndRow
			}

			for row, count := range covered {
				if count != 1 {
					t.Errorf("Row %d covered %d times", row, count)
				}
			}
		})
	}
}

func TestNewBandGrid_Invalid(t *testing.T) {
	if bands := NewBandGrid(10, 0); bands != nil {
		t.Errorf("Expected no bands for zero workers, got %v", bands)
	}
	if bands := NewBandGrid(0, 4); bands != nil {
		t.Errorf("Expected no bands for zero height, got %v", bands)
	}
}
