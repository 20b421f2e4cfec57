package geometry

import (
	"math"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: n·p = d
	W        core.Vec3         // Cached n / (n·(U×V)) for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        cross.Multiply(1.0 / cross.Dot(cross)),
	}
}

// NewGroundQuad creates a large horizontal quad centered at center with normal +Y
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// (size,0,0) × (0,0,size) points down, so swap the edges to face up
	return NewQuad(corner, core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), mat)
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the bounding box of the quad, padded on flat axes
func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	box := core.NewAABB(corners[0], corners[0])
	for _, c := range corners[1:] {
		box = box.Union(core.NewAABB(c, c))
	}

	const pad = 1e-4
	size := box.Size()
	if size.X < pad {
		box.Min.X -= pad
		box.Max.X += pad
	}
	if size.Y < pad {
		box.Min.Y -= pad
		box.Max.Y += pad
	}
	if size.Z < pad {
		box.Min.Z -= pad
		box.Max.Z += pad
	}
	return box
}
