package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleJitterRange(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		j := SampleJitter(sampler.Get2D())
		if j.X < -0.5 || j.X >= 0.5 || j.Y < -0.5 || j.Y >= 0.5 {
			t.Fatalf("Jitter %v outside [-0.5, 0.5)", j)
		}
	}

	center := SampleJitter(ConstantSampler{Value: 0.5}.Get2D())
	if center.X != 0 || center.Y != 0 {
		t.Errorf("Constant 0.5 sampler should produce zero jitter, got %v", center)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	var sumX, sumY float64
	const n = 20000
	for i := 0; i < n; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the z=0 plane, got %v", p)
		}
		if p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Disk sample %v outside the unit disk", p)
		}
		sumX += p.X
		sumY += p.Y
	}

	// Uniform disk sampling has zero mean
	if math.Abs(sumX/n) > 0.02 || math.Abs(sumY/n) > 0.02 {
		t.Errorf("Disk samples biased: mean (%f, %f)", sumX/n, sumY/n)
	}

	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p != (Vec3{}) {
		t.Errorf("Center sample should map to origin, got %v", p)
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if dir.Dot(normal) < -1e-12 {
			t.Fatalf("Direction %v below hemisphere", dir)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Direction %v not unit length", dir)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-12 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}
