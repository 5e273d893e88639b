package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raycaster/pkg/core"
)

// Camera maps pixels to primary rays.
//
// The eye looks along +Y. Pixel (w, h) projects onto the plane Y = ScreenDistance
// at X = (w - Width/2) * PixelSize and Z = (Height/2 - h) * PixelSize, so image
// rows grow downward while world Z grows upward.
type Camera struct {
	Eye            core.Vec3
	ScreenDistance float64
	PixelSize      float64
	Width          int
	Height         int
}

// NewCamera creates a camera at eye using the image constants from config
func NewCamera(eye core.Vec3, config core.RenderConfig) *Camera {
	return &Camera{
		Eye:            eye,
		ScreenDistance: config.ScreenDistance,
		PixelSize:      config.PixelSize,
		Width:          config.Width,
		Height:         config.Height,
	}
}

// Direction returns the unnormalized direction from the eye through pixel (w, h)
func (c *Camera) Direction(w, h int) core.Vec3 {
	midX := c.Width / 2
	midY := c.Height / 2
	planePoint := core.NewVec3(
		float64(w-midX)*c.PixelSize,
		c.ScreenDistance,
		float64(midY-h)*c.PixelSize,
	)
	return planePoint.Subtract(c.Eye)
}

// GetRay returns the primary ray for pixel (w, h).
// A pixel whose plane point coincides with the eye yields ErrDegenerateRay.
func (c *Camera) GetRay(w, h int) (core.Ray, error) {
	ray := core.NewRay(c.Eye, c.Direction(w, h))
	if err := ray.Validate(); err != nil {
		return ray, fmt.Errorf("pixel (%d, %d): %w", w, h, err)
	}
	return ray, nil
}
