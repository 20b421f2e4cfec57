package integrator

import (
	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use: all per-call state
// lives on the stack or in the caller's sampler.
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background gives the radiance seen by rays that escape the scene
type Background interface {
	Color(direction core.Vec3) core.Vec3
}

// SkyGradient blends from Bottom to Top on the unit direction's Y component
type SkyGradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyGradient returns the classic white-to-blue sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a direction
func (s SkyGradient) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return s.Bottom.Multiply(1.0 - t).Add(s.Top.Multiply(t))
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// Color returns the solid color
func (s SolidBackground) Color(core.Vec3) core.Vec3 {
	return s.Value
}
