package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/tiff"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

type failingConverter struct{}

func (failingConverter) Convert(string, string) error {
	return errors.New("boom")
}

func writeTestPPM(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.ppm")
	if err := WritePPMFile(path, testBuffer(t)); err != nil {
		t.Fatalf("WritePPMFile: %v", err)
	}
	return path
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name      string
		expectNil bool
		expectErr bool
	}{
		{"none", true, false},
		{"", true, false},
		{"pnmtopng", false, false},
		{"tiff", false, false},
		{"gif", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := NewConverter(tt.name)
			if (err != nil) != tt.expectErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if (conv == nil) != tt.expectNil {
				t.Errorf("Unexpected converter %T", conv)
			}
		})
	}
}

func TestConvertedPath(t *testing.T) {
	tests := []struct {
		in, ext, expected string
	}{
		{"out.ppm", "png", "out.png"},
		{"renders/frame.001.ppm", "tiff", "renders/frame.001.tiff"},
		{"noext", "png", "noext.png"},
		{"dir.v2/noext", "png", "dir.v2/noext.png"},
	}

	for _, tt := range tests {
		if got := ConvertedPath(tt.in, tt.ext); got != tt.expected {
			t.Errorf("ConvertedPath(%q, %q) = %q, expected %q", tt.in, tt.ext, got, tt.expected)
		}
	}
}

func TestTIFFConverter(t *testing.T) {
	ppmPath := writeTestPPM(t)
	outPath := ConvertedPath(ppmPath, "tiff")

	if err := (TIFFConverter{}).Convert(ppmPath, outPath); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	file, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	img, err := tiff.Decode(file)
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 128 {
		t.Errorf("Pixel (0,0) = (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestTIFFConverterMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := (TIFFConverter{}).Convert(filepath.Join(dir, "missing.ppm"), filepath.Join(dir, "out.tiff"))
	if err == nil {
		t.Error("Expected error for a missing input")
	}
}

func TestCommandConverterStreamsStdout(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	ppmPath := writeTestPPM(t)
	outPath := filepath.Join(t.TempDir(), "copy.ppm")

	if err := NewCommandConverter("cat").Convert(ppmPath, outPath); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want, _ := os.ReadFile(ppmPath)
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Converted output differs from the command's stdout")
	}
}

func TestCommandConverterFailure(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.png")

	err := NewCommandConverter("cat").Convert(filepath.Join(dir, "missing.ppm"), outPath)
	if err == nil {
		t.Fatal("Expected error when the command fails")
	}
	if !strings.Contains(err.Error(), "missing.ppm") {
		t.Errorf("Expected stderr in the error, got %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("Failed conversion should not leave an output file")
	}
}

func TestCommandConverterUnavailable(t *testing.T) {
	dir := t.TempDir()
	err := NewCommandConverter("definitely-not-a-real-converter").Convert(
		filepath.Join(dir, "in.ppm"), filepath.Join(dir, "out.png"))
	if !errors.Is(err, ErrConverterUnavailable) {
		t.Errorf("Expected ErrConverterUnavailable, got %v", err)
	}
}

func TestConvertBestEffort(t *testing.T) {
	logger := &recordingLogger{}

	if ConvertBestEffort(nil, "a.ppm", "a.png", logger) {
		t.Error("Nil converter should not report a conversion")
	}
	if len(logger.messages) != 0 {
		t.Errorf("Nil converter should not log, got %q", logger.messages)
	}

	if ConvertBestEffort(failingConverter{}, "a.ppm", "a.png", logger) {
		t.Error("Failing converter should report no conversion")
	}
	if len(logger.messages) != 1 || !strings.Contains(logger.messages[0], "boom") {
		t.Errorf("Expected the failure to be logged, got %q", logger.messages)
	}

	ppmPath := writeTestPPM(t)
	if !ConvertBestEffort(TIFFConverter{}, ppmPath, ConvertedPath(ppmPath, "tiff"), logger) {
		t.Error("Expected TIFF conversion to succeed")
	}
}
