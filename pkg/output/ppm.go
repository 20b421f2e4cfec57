package output

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spakin/netpbm"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/renderer"
)

// ppmMagic identifies the plain-text PPM variant this package writes
const ppmMagic = "P3"

// maxChannel is the clamp ceiling applied before scaling to 8 bits
const maxChannel = 0.999

// Limits on decoded images; the header is checked before any pixel memory is allocated
const (
	maxImageDimension = 1 << 15
	maxImagePixels    = 1 << 26
	headerPeekBytes   = 4096
)

// ErrMalformedPPM is returned when a P3 stream cannot be decoded
var ErrMalformedPPM = errors.New("malformed PPM")

// displayGamma gives the square-root tone curve
const displayGamma = 2.0

// ToneMap converts a linear radiance estimate to 8-bit channels:
// square-root gamma, clamp to [0, 0.999], scale by 256 and truncate
func ToneMap(c core.Vec3) (r, g, b uint8) {
	corrected := c.GammaCorrect(displayGamma)
	return toneChannel(corrected.X), toneChannel(corrected.Y), toneChannel(corrected.Z)
}

// toneChannel quantizes a gamma-corrected channel; negative inputs come
// through GammaCorrect as NaN
func toneChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return uint8(256 * math.Min(v, maxChannel))
}

// WritePPM writes buf as a P3 image, one "r g b" line per pixel in row-major order
func WritePPM(w io.Writer, buf *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, buf.Width(), buf.Height()); err != nil {
		return err
	}

	line := make([]byte, 0, 12)
	for row := 0; row < buf.Height(); row++ {
		for col := 0; col < buf.Width(); col++ {
			r, g, b := ToneMap(buf.At(row, col))
			line = strconv.AppendUint(line[:0], uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// CreatePPMFile creates path for a later FinishPPMFile
func CreatePPMFile(path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return file, nil
}

// FinishPPMFile writes buf into a file from CreatePPMFile and closes it
func FinishPPMFile(file *os.File, buf *renderer.PixelBuffer) error {
	if err := WritePPM(file, buf); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", file.Name(), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", file.Name(), err)
	}
	return nil
}

// WritePPMFile creates path and writes buf into it
func WritePPMFile(path string, buf *renderer.PixelBuffer) error {
	file, err := CreatePPMFile(path)
	if err != nil {
		return err
	}
	return FinishPPMFile(file, buf)
}

// checkDimensions rejects empty images and sizes beyond the decode limits
func checkDimensions(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: empty image %dx%d", ErrMalformedPPM, width, height)
	case width > maxImageDimension || height > maxImageDimension:
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel side limit", ErrMalformedPPM, width, height, maxImageDimension)
	case int64(width)*int64(height) > maxImagePixels:
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel limit", ErrMalformedPPM, width, height, maxImagePixels)
	}
	return nil
}

// ReadPPM decodes a P3 stream into an RGBA image
func ReadPPM(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReaderSize(r, headerPeekBytes)
	head, err := br.Peek(headerPeekBytes)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPPM, err)
	}
	if !bytes.HasPrefix(head, []byte(ppmMagic)) {
		return nil, fmt.Errorf("%w: not a plain %s stream", ErrMalformedPPM, ppmMagic)
	}

	config, err := netpbm.DecodeConfig(bytes.NewReader(head))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPPM, err)
	}
	if err := checkDimensions(config.Width, config.Height); err != nil {
		return nil, err
	}

	img, err := netpbm.Decode(br, &netpbm.DecodeOptions{Target: netpbm.PPM, Exact: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPPM, err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}
