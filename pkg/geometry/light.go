package geometry

import "github.com/df07/go-phong-raycaster/pkg/core"

// Light is a point light
type Light struct {
	Position core.Vec3
	Color    core.Color
}

// NewLight creates a new point light
func NewLight(position core.Vec3, color core.Color) Light {
	return Light{Position: position, Color: color}
}
