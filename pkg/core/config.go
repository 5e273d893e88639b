package core

import "fmt"

// AmbientMode selects how the global ambient term enters the lighting sum
type AmbientMode int

const (
	// AmbientPerLight adds the ambient term once for every light, so it
	// grows with the number of lights. This is the reference behavior.
	AmbientPerLight AmbientMode = iota
	// AmbientOnce adds the ambient term a single time per hit point.
	AmbientOnce
)

// String returns the mode name used in scene files and flags
func (m AmbientMode) String() string {
	switch m {
	case AmbientPerLight:
		return "per-light"
	case AmbientOnce:
		return "once"
	default:
		return fmt.Sprintf("AmbientMode(%d)", int(m))
	}
}

// ParseAmbientMode converts a mode name back into an AmbientMode
func ParseAmbientMode(name string) (AmbientMode, error) {
	switch name {
	case "", "per-light":
		return AmbientPerLight, nil
	case "once":
		return AmbientOnce, nil
	default:
		return AmbientPerLight, fmt.Errorf("unknown ambient mode %q", name)
	}
}

// RenderConfig holds the fixed constants of a render
type RenderConfig struct {
	Width          int         // Image width in pixels
	Height         int         // Image height in pixels
	ScreenDistance float64     // Distance from the eye to the image plane
	PixelSize      float64     // World-space spacing between pixel centers
	Epsilon        float64     // Pull-back along the ray before secondary rays are cast
	MaxDepth       int         // Recursion depth at which a cast returns black
	GlobalAmbient  Color       // Ambient light intensity
	Ambient        AmbientMode // How the ambient term is accumulated
}

// DefaultRenderConfig returns the reference constants
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:          320,
		Height:         240,
		ScreenDistance: 1,
		PixelSize:      0.001,
		Epsilon:        1e-11,
		MaxDepth:       6,
		GlobalAmbient:  NewColor(20, 20, 20),
		Ambient:        AmbientPerLight,
	}
}

// MergeRenderConfig returns base with every non-zero field of override applied.
// GlobalAmbient is only taken from override when it is not black, and the
// ambient mode only when it differs from the default.
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.ScreenDistance != 0 {
		result.ScreenDistance = override.ScreenDistance
	}
	if override.PixelSize != 0 {
		result.PixelSize = override.PixelSize
	}
	if override.Epsilon != 0 {
		result.Epsilon = override.Epsilon
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if !override.GlobalAmbient.Equals(Black) {
		result.GlobalAmbient = override.GlobalAmbient
	}
	if override.Ambient != AmbientPerLight {
		result.Ambient = override.Ambient
	}
	return result
}

// Validate checks the configuration once before a render starts
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.PixelSize <= 0:
		return fmt.Errorf("%w: pixel size %g must be positive", ErrInvalidConfig, c.PixelSize)
	case c.Epsilon < 0:
		return fmt.Errorf("%w: epsilon %g must not be negative", ErrInvalidConfig, c.Epsilon)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	case c.Ambient != AmbientPerLight && c.Ambient != AmbientOnce:
		return fmt.Errorf("%w: unknown ambient mode %v", ErrInvalidConfig, c.Ambient)
	}
	return nil
}
