package material

import (
	"image/color"
	"math"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at the given 3D point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two colors on a 3D lattice
type CheckerTexture struct {
	InvScale float64
	Even     core.Vec3
	Odd      core.Vec3
}

// NewCheckerTexture creates a solid checker pattern with cells of the given size
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Evaluate returns Even or Odd depending on which cell contains point
func (c *CheckerTexture) Evaluate(point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))
	if (x+y+z)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// ColorToVec3 converts an 8-bit color (e.g. from colornames) to a linear-ish [0,1] Vec3
func ColorToVec3(c color.RGBA) core.Vec3 {
	return core.NewVec3(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}
