package renderer

// Band is a contiguous range of image rows rendered by one worker
type Band struct {
	ID       int // Worker index
	StartRow int // First row (inclusive)
	EndRow   int // Last row (exclusive)
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.EndRow - b.StartRow
}

// NewBandGrid splits height rows into numBands contiguous bands of
// floor(height/numBands) rows each. The last band absorbs the remainder, so
// it can be up to numBands-1 rows taller than the others; when height is
// smaller than numBands every band but the last is empty.
func NewBandGrid(height, numBands int) []Band {
	if numBands <= 0 || height <= 0 {
		return nil
	}

	chunk := height / numBands
	bands := make([]Band, numBands)
	for i := range bands {
		end := (i + 1) * chunk
		if i == numBands-1 {
			end = height
		}
		bands[i] = Band{ID: i, StartRow: i * chunk, EndRow: end}
	}
	return bands
}
