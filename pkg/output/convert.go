package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// ErrConverterUnavailable is returned when a conversion tool is not installed
var ErrConverterUnavailable = errors.New("converter unavailable")

// DefaultConvertCommand is the external tool used to produce a PNG
const DefaultConvertCommand = "pnmtopng"

// Converter turns a written PPM file into a compressed image format
type Converter interface {
	Convert(ppmPath, outPath string) error
}

// CommandConverter runs an external filter that reads a PPM path and
// writes the converted image to stdout
type CommandConverter struct {
	Command string
	Args    []string // Extra arguments placed before the input path
}

// NewCommandConverter creates a converter for an external command
func NewCommandConverter(command string, args ...string) *CommandConverter {
	return &CommandConverter{Command: command, Args: args}
}

// Convert runs the command and streams its stdout into outPath
func (c *CommandConverter) Convert(ppmPath, outPath string) error {
	path, err := exec.LookPath(c.Command)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConverterUnavailable, c.Command, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(path, append(append([]string(nil), c.Args...), ppmPath)...)
	cmd.Stdout = out
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	closeErr := out.Close()
	if runErr != nil {
		os.Remove(outPath)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", c.Command, runErr, msg)
		}
		return fmt.Errorf("%s failed: %w", c.Command, runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, closeErr)
	}
	return nil
}

// TIFFConverter re-reads the PPM in process and writes a Deflate-compressed TIFF
type TIFFConverter struct{}

// Convert decodes ppmPath and encodes it to outPath
func (TIFFConverter) Convert(ppmPath, outPath string) error {
	in, err := os.Open(ppmPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ppmPath, err)
	}
	defer in.Close()

	img, err := ReadPPM(in)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", ppmPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true}); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}
	return out.Close()
}

// NewConverter returns the converter registered under name; "none" yields nil
func NewConverter(name string) (Converter, error) {
	switch name {
	case "", "none":
		return nil, nil
	case DefaultConvertCommand:
		return NewCommandConverter(DefaultConvertCommand), nil
	case "tiff":
		return TIFFConverter{}, nil
	default:
		return nil, fmt.Errorf("unknown converter %q (want none, %s or tiff)", name, DefaultConvertCommand)
	}
}

// ConvertedPath swaps the extension of ppmPath for ext
func ConvertedPath(ppmPath, ext string) string {
	if i := strings.LastIndexByte(ppmPath, '.'); i > strings.LastIndexByte(ppmPath, os.PathSeparator) {
		ppmPath = ppmPath[:i]
	}
	return ppmPath + "." + ext
}

// ConvertBestEffort runs conv and logs instead of failing; the PPM stays valid either way.
// It reports whether a converted file was written.
func ConvertBestEffort(conv Converter, ppmPath, outPath string, logger core.Logger) bool {
	if conv == nil {
		return false
	}
	if err := conv.Convert(ppmPath, outPath); err != nil {
		logger.Printf("Conversion skipped: %v\n", err)
		return false
	}
	logger.Printf("Converted %s to %s\n", ppmPath, outPath)
	return true
}
