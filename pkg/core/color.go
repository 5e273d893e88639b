package core

import (
	"image/color"
	"math"
)

// Color is an integer RGB triple. Channels are nominally in [0, 255] but
// construction does not enforce it; Add and Multiply clamp their results.
type Color struct {
	R, G, B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the per-channel sum, capped at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: min(c.R+other.R, 255),
		G: min(c.G+other.G, 255),
		B: min(c.B+other.B, 255),
	}
}

// Multiply scales every channel by scalar, truncating toward zero.
// Negative results become 0; there is no upper clamp.
func (c Color) Multiply(scalar float64) Color {
	return Color{
		R: scaleChannel(c.R, scalar),
		G: scaleChannel(c.G, scalar),
		B: scaleChannel(c.B, scalar),
	}
}

// Dimm attenuates c by a coefficient color: a*b/255 per channel.
// The result is not clamped; it stays in range when both inputs do.
func (c Color) Dimm(other Color) Color {
	return Color{
		R: c.R * other.R / 255,
		G: c.G * other.G / 255,
		B: c.B * other.B / 255,
	}
}

// Equals reports channel-wise equality
func (c Color) Equals(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// RGBA converts the color to an opaque color.RGBA, clamping to [0, 255]
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: 255,
	}
}

func scaleChannel(channel int, scalar float64) int {
	v := float64(channel) * scalar
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return int(v)
}

func clampByte(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
