package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

func TestLambertian_ScatterHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Errorf("Scattered direction %v below surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}
	}
}

func TestLambertian_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, _ := lambertian.Scatter(ray, hit, core.NewSeededSampler(42))
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestCheckerTexture(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerTexture(1.0, even, odd)

	if c := checker.Evaluate(core.NewVec3(0.5, 0.5, 0.5)); c != even {
		t.Errorf("Expected even color at origin cell, got %v", c)
	}
	if c := checker.Evaluate(core.NewVec3(1.5, 0.5, 0.5)); c != odd {
		t.Errorf("Expected odd color in neighbouring cell, got %v", c)
	}

	lambertian := NewTexturedLambertian(checker)
	hit := HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(1.5, 2, 0.5), core.NewVec3(0, -1, 0)), hit, core.NewSeededSampler(1))
	if scatter.Attenuation != odd {
		t.Errorf("Textured lambertian should sample the checker, got %v", scatter.Attenuation)
	}
}
