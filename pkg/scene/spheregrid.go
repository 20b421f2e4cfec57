package scene

import (
	"math"
	"math/rand"

	"golang.org/x/image/colornames"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
	"github.com/df07/go-banded-pathtracer/pkg/integrator"
	"github.com/df07/go-banded-pathtracer/pkg/material"
	"github.com/df07/go-banded-pathtracer/pkg/renderer"
)

// DefaultSpheresSeed fixes the layout of the registered "spheres" scene
const DefaultSpheresSeed = 1

// Sphere field extents: small spheres sit on a (2*fieldHalfExtent)^2 grid
const (
	fieldHalfExtent   = 11
	smallSphereRadius = 0.2
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSpheresScene creates the random field of small spheres around three
// large ones. The layout depends only on seed.
func NewSpheresScene(seed int64) *Scene {
	s := &Scene{
		Background:     integrator.NewSkyGradient(),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(material.ColorToVec3(colornames.Gray))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := material.NewDielectric(1.5)
	keepClear := core.NewVec3(4, smallSphereRadius, 0)

	for a := -fieldHalfExtent; a < fieldHalfExtent; a++ {
		for b := -fieldHalfExtent; b < fieldHalfExtent; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				smallSphereRadius,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				// Evenly lit hues, varied chroma
				mat = material.NewLambertian(oklchToRGB(0.65, 0.05+0.1*random.Float64(), 360*random.Float64()))
			case chooseMat < 0.95:
				albedo := core.NewVec3(0.5+0.5*random.Float64(), 0.5+0.5*random.Float64(), 0.5+0.5*random.Float64())
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = glass
			}
			s.Shapes = append(s.Shapes, geometry.NewSphere(center, smallSphereRadius, mat))
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(material.ColorToVec3(colornames.Saddlebrown))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(material.ColorToVec3(colornames.Tan), 0.0)),
	)
	return s
}
