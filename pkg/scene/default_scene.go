package scene

import (
	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
)

// NewDefaultScene creates a white sphere partly covered by a small blue one,
// lit by a single white light off to the side
func NewDefaultScene(configOverrides ...core.RenderConfig) *Scene {
	config := core.DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = core.MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene(config)

	white := geometry.DefaultMaterial(core.NewColor(255, 255, 255))
	blue := geometry.DefaultMaterial(core.NewColor(0, 0, 255))

	s.AddSphere(core.NewVec3(-1, 20, 0), 1, white)
	s.AddSphere(core.NewVec3(0.3, 19, 1), 0.5, blue)
	s.AddLight(core.NewVec3(70, -50, 30), core.NewColor(255, 255, 255))

	return s
}
