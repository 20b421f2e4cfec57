package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot
// produce a finite view basis or a non-empty image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// degenerateTolerance bounds the length of basis vectors treated as zero
const degenerateTolerance = 1e-12

// CameraConfig contains the photographic parameters of a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up reference; zero means +Y
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	FocusDistance float64   // Distance from eye to the plane of perfect focus
	DefocusAngle  float64   // Cone apex angle in degrees; <= 0 disables depth of field
}

// DefaultCameraConfig returns the 1920-wide, 16:9 thin-lens camera
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1920,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		FocusDistance: 10.0,
		DefocusAngle:  0.6,
	}
}

// Camera holds all per-pixel ray generation geometry.
// It is derived once and never mutated, so workers share it freely.
type Camera struct {
	eye          core.Vec3
	width        int
	height       int
	pixelStart   core.Vec3 // Center of pixel (0, 0)
	deltaU       core.Vec3 // Offset to the pixel on the right
	deltaV       core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera right, up and backward axes
	defocusAngle float64
	diskU        core.Vec3
	diskV        core.Vec3
}

// NewCamera derives a camera from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	up := config.Up
	if up == (core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}

	width := config.Width
	height := max(1, int(math.Floor(float64(width)/config.AspectRatio)))

	// Viewport dimensions on the focus plane
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h * config.FocusDistance
	viewportWidth := viewportHeight * config.AspectRatio

	// Orthonormal camera basis
	back := config.LookFrom.Subtract(config.LookAt)
	if back.Length() < degenerateTolerance {
		return nil, fmt.Errorf("%w: look-from and look-at are the same point %v", ErrInvalidCamera, config.LookFrom)
	}
	w := back.Normalize()
	right := up.Cross(w)
	if right.Length() < degenerateTolerance*up.Length() {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, up)
	}
	u := right.Normalize()
	v := w.Cross(u)

	// Rows grow downward while v points up
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	deltaU := viewportU.Divide(float64(width))
	deltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixelStart := upperLeft.Add(deltaU.Add(deltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		eye:          config.LookFrom,
		width:        width,
		height:       height,
		pixelStart:   pixelStart,
		deltaU:       deltaU,
		deltaV:       deltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusAngle: config.DefocusAngle,
		diskU:        u.Multiply(defocusRadius),
		diskV:        v.Multiply(defocusRadius),
	}, nil
}

func (config CameraConfig) validate() error {
	switch {
	case config.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidCamera, config.Width)
	case !(config.AspectRatio > 0) || math.IsInf(config.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %v", ErrInvalidCamera, config.AspectRatio)
	case !(config.VFov > 0 && config.VFov < 180):
		return fmt.Errorf("%w: vertical field of view must be in (0, 180) degrees, got %v", ErrInvalidCamera, config.VFov)
	case !(config.FocusDistance > 0) || math.IsInf(config.FocusDistance, 0):
		return fmt.Errorf("%w: focus distance must be positive and finite, got %v", ErrInvalidCamera, config.FocusDistance)
	case !(config.DefocusAngle < 180):
		return fmt.Errorf("%w: defocus angle must be below 180 degrees, got %v", ErrInvalidCamera, config.DefocusAngle)
	}

	points := []struct {
		name  string
		value core.Vec3
	}{
		{"look-from", config.LookFrom},
		{"look-at", config.LookAt},
		{"up", config.Up},
	}
	for _, p := range points {
		if !p.value.IsFinite() {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidCamera, p.name, p.value)
		}
	}
	return nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 { return c.eye }

// DefocusAngle returns the configured aperture angle in degrees
func (c *Camera) DefocusAngle() float64 { return c.defocusAngle }

// Basis returns the right, up and backward camera axes
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// ViewportPoint returns the point on the focus plane at fractional pixel
// coordinates; integer coordinates address pixel centers
func (c *Camera) ViewportPoint(row, col float64) core.Vec3 {
	return c.pixelStart.
		Add(c.deltaV.Multiply(row)).
		Add(c.deltaU.Multiply(col))
}

// PixelCenter returns the un-jittered center of pixel (row, col)
func (c *Camera) PixelCenter(row, col int) core.Vec3 {
	return c.ViewportPoint(float64(row), float64(col))
}

// GetRay generates one sample ray for pixel (row, col): the target is
// jittered within the pixel and, with a positive defocus angle, the origin
// is drawn from the defocus disk
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	offset := core.SampleJitter(sampler.Get2D())
	target := c.ViewportPoint(float64(row)+offset.Y, float64(col)+offset.X)

	origin := c.eye
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(sampler.Get2D())
	}

	return core.NewRay(origin, target.Subtract(origin))
}

// defocusDiskSample returns a point on the lens disk around the eye
func (c *Camera) defocusDiskSample(sample core.Vec2) core.Vec3 {
	p := core.SamplePointInUnitDisk(sample)
	return c.eye.Add(c.diskU.Multiply(p.X)).Add(c.diskV.Multiply(p.Y))
}
