package integrator

import (
	"math"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the lower bound of every intersection query.
// It keeps scattered rays from re-hitting the surface they left.
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional, depth-bounded path tracing
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewSkyGradient()
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray.
//
// The recursion color = attenuation * RayColor(scattered, depth-1) is
// unrolled into a loop carrying the product of attenuations, so stack use
// does not grow with MaxDepth.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; ; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.Background.Color(ray.Direction))
		}

		// Bounce limit reached, no more light is gathered
		if depth <= 0 {
			return core.Vec3{}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}
