package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-banded-pathtracer/pkg/geometry"
	"github.com/df07/go-banded-pathtracer/pkg/integrator"
	"github.com/df07/go-banded-pathtracer/pkg/renderer"
)

// bvhMinShapes is the object count above which the world is BVH-accelerated
const bvhMinShapes = 16

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Shapes         []geometry.Shape // Objects in the scene
	World          geometry.Shape   // Traversal structure over Shapes
	Background     integrator.Background
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Preprocess builds the traversal structure. Large scenes get a BVH, small
// ones a flat list.
func (s *Scene) Preprocess() {
	if len(s.Shapes) > bvhMinShapes {
		s.World = geometry.NewBVH(s.Shapes)
		return
	}
	s.World = geometry.NewHittableList(s.Shapes...)
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// builders maps scene names to constructors
var builders = map[string]func() *Scene{
	"default":       NewDefaultScene,
	"spheres":       func() *Scene { return NewSpheresScene(DefaultSpheresSeed) },
	"single-sphere": NewSingleSphereScene,
	"empty":         NewEmptyScene,
}

// New returns the preprocessed built-in scene registered under name
func New(name string) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	s := build()
	s.Name = name
	s.Preprocess()
	return s, nil
}

// Names lists the built-in scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
