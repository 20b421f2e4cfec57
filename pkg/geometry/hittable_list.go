package geometry

import (
	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/material"
)

// HittableList is a flat collection of shapes tested by linear search
type HittableList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{Shapes: shapes}
	for i, shape := range shapes {
		if i == 0 {
			list.bbox = shape.BoundingBox()
			continue
		}
		list.bbox = list.bbox.Union(shape.BoundingBox())
	}
	return list
}

// Hit returns the closest intersection across all shapes
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of every shape's bounds
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
