package geometry

import (
	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/material"
)

// Shape is anything a ray can be tested against.
// Implementations are immutable after construction and safe for
// concurrent use by any number of render workers.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
