package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/output"
	"github.com/df07/go-banded-pathtracer/pkg/renderer"
	"github.com/df07/go-banded-pathtracer/pkg/scene"
)

// convertAuto picks pnmtopng on linux and skips conversion elsewhere
const convertAuto = "auto"

// convertExtensions maps converter names to the extension of their output
var convertExtensions = map[string]string{
	output.DefaultConvertCommand: "png",
	"tiff":                       "tiff",
}

// options holds parsed command line flags
type options struct {
	help    bool
	scene   string
	out     string
	convert string

	width    int
	vfov     float64
	focus    float64
	defocus  float64
	samples  int
	depth    int
	workers  int
	seed     int64
	explicit map[string]bool // Flags given on the command line
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaultCamera := renderer.DefaultCameraConfig()
	defaultSampling := renderer.DefaultSamplingConfig()

	fs.BoolVar(&opts.help, "help", false, "Show help information")
	fs.StringVar(&opts.scene, "scene", "default", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.out, "out", "out.ppm", "Output PPM path")
	fs.StringVar(&opts.convert, "convert", convertAuto, "Converter: auto, none, pnmtopng or tiff")
	fs.IntVar(&opts.width, "width", defaultCamera.Width, "Image width in pixels")
	fs.Float64Var(&opts.vfov, "vfov", defaultCamera.VFov, "Vertical field of view in degrees")
	fs.Float64Var(&opts.focus, "focus", defaultCamera.FocusDistance, "Focus distance")
	fs.Float64Var(&opts.defocus, "defocus", defaultCamera.DefocusAngle, "Defocus angle in degrees (0 = pinhole)")
	fs.IntVar(&opts.samples, "samples", defaultSampling.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", defaultSampling.MaxDepth, "Maximum bounce depth")
	fs.IntVar(&opts.workers, "workers", defaultSampling.NumWorkers, "Number of band workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", defaultSampling.Seed, "Base random seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.explicit[f.Name] = true })
	return opts, nil
}

// applyOverrides copies explicitly set flags over the scene's own configuration
func (o *options) applyOverrides(s *scene.Scene) {
	cam, sampling := &s.CameraConfig, &s.SamplingConfig
	if o.explicit["width"] {
		cam.Width = o.width
	}
	if o.explicit["vfov"] {
		cam.VFov = o.vfov
	}
	if o.explicit["focus"] {
		cam.FocusDistance = o.focus
	}
	if o.explicit["defocus"] {
		cam.DefocusAngle = o.defocus
	}
	if o.explicit["samples"] {
		sampling.SamplesPerPixel = o.samples
	}
	if o.explicit["depth"] {
		sampling.MaxDepth = o.depth
	}
	if o.explicit["workers"] {
		sampling.NumWorkers = o.workers
	}
	if o.explicit["seed"] {
		sampling.Seed = o.seed
	}
}

// converterName resolves "auto" for the current platform
func (o *options) converterName() string {
	if o.convert != convertAuto {
		return o.convert
	}
	if runtime.GOOS == "linux" {
		return output.DefaultConvertCommand
	}
	return "none"
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Banded Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders one frame with a fixed pool of row-band workers and writes a P3 PPM,")
	fmt.Fprintln(w, "then converts it to a compressed format when a converter is available.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run with -h to list every option.")
}

func run(args []string, stdout, stderr io.Writer, logger core.Logger) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout)
		return nil
	}

	selected, err := scene.New(opts.scene)
	if err != nil {
		return err
	}
	opts.applyOverrides(selected)

	converter, err := output.NewConverter(opts.converterName())
	if err != nil {
		return err
	}

	camera, err := renderer.NewCamera(selected.CameraConfig)
	if err != nil {
		return fmt.Errorf("scene %s: %w", selected.Name, err)
	}

	logger.Printf("Using %s scene (%d objects)\n", selected.Name, selected.GetPrimitiveCount())
	raytracer, err := renderer.NewRaytracer(camera, selected.World, selected.Background, selected.SamplingConfig, logger)
	if err != nil {
		return fmt.Errorf("scene %s: %w", selected.Name, err)
	}

	// Open the output first so a bad path fails before the render
	file, err := output.CreatePPMFile(opts.out)
	if err != nil {
		return err
	}

	buffer, stats, err := raytracer.Render()
	if err != nil {
		file.Close()
		os.Remove(opts.out)
		return err
	}
	logger.Printf("Traced %d samples (%.0f samples/s)\n", stats.TotalSamples, stats.SamplesPerSecond())

	if err := output.FinishPPMFile(file, buffer); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.out)

	if converter != nil {
		convertedPath := output.ConvertedPath(opts.out, convertExtensions[opts.converterName()])
		output.ConvertBestEffort(converter, opts.out, convertedPath, logger)
	}

	logger.Printf("Completed!\n")
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr, renderer.NewDefaultLogger())
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
