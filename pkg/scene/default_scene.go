package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-banded-pathtracer/pkg/core"
	"github.com/df07/go-banded-pathtracer/pkg/geometry"
	"github.com/df07/go-banded-pathtracer/pkg/integrator"
	"github.com/df07/go-banded-pathtracer/pkg/material"
	"github.com/df07/go-banded-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three large spheres (diffuse, glass, metal) on a
// checkered ground under a sky gradient
func NewDefaultScene() *Scene {
	s := &Scene{
		Background:     integrator.NewSkyGradient(),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}

	groundTexture := material.NewCheckerTexture(1.0,
		material.ColorToVec3(colornames.Darkolivegreen),
		material.ColorToVec3(colornames.Whitesmoke).Multiply(0.9))
	ground := material.NewTexturedLambertian(groundTexture)

	lambertianBrown := material.NewLambertian(material.ColorToVec3(colornames.Sienna))
	metalSilver := material.NewMetal(material.ColorToVec3(colornames.Silver), 0.0)
	glass := material.NewDielectric(1.5)

	s.Shapes = []geometry.Shape{
		geometry.NewGroundQuad(core.NewVec3(0, 0, 0), 40, ground),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, lambertianBrown),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(0, 1, 0), -0.9, glass), // hollow bubble
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metalSilver),
	}
	return s
}

// NewSingleSphereScene creates one diffuse sphere on the view axis of the
// default camera against a white background
func NewSingleSphereScene() *Scene {
	s := &Scene{
		Background:     integrator.SolidBackground{Value: core.NewVec3(1, 1, 1)},
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	s.CameraConfig.DefocusAngle = 0

	red := material.NewLambertian(material.ColorToVec3(colornames.Firebrick))
	s.Shapes = []geometry.Shape{
		geometry.NewSphere(s.CameraConfig.LookAt, 1.0, red),
	}
	return s
}

// NewEmptyScene has no objects, so every ray sees the sky
func NewEmptyScene() *Scene {
	return &Scene{
		Background:     integrator.NewSkyGradient(),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
