package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

func randomSpheres(n int, seed int64) []Shape {
	random := rand.New(rand.NewSource(seed))
	shapes := make([]Shape, n)
	for i := range shapes {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		shapes[i] = NewSphere(center, 0.2+random.Float64()*0.5, DummyMaterial{})
	}
	return shapes
}

func TestBVHMatchesHittableList(t *testing.T) {
	shapes := randomSpheres(200, 42)
	bvh := NewBVH(shapes)
	list := NewHittableList(shapes...)

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, 20)
		target := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		ray := core.NewRay(origin, target.Subtract(origin))

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))
		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))

		if bvhOK != listOK {
			t.Fatalf("ray %d: BVH hit=%t, list hit=%t", i, bvhOK, listOK)
		}
		if bvhOK && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("ray %d: BVH t=%f, list t=%f", i, bvhHit.T, listHit.T)
		}
	}
}

func TestEmptyShapesNeverHit(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := NewBVH(nil).Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty BVH should never hit")
	}
	if _, isHit := NewHittableList().Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty list should never hit")
	}
}

func TestHittableListReturnsClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, DummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, DummyMaterial{})
	list := NewHittableList(far, near)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
	}
}
