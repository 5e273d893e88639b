package scene

import (
	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
)

// NewReflectScene creates three mirror-like spheres that reflect each other,
// lit from the eye position
func NewReflectScene(configOverrides ...core.RenderConfig) *Scene {
	config := core.DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = core.MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene(config)

	mirror := func(color core.Color) geometry.Material {
		m := geometry.DefaultMaterial(color)
		m.Reflectivity = 0.7
		return m
	}

	s.AddSphere(core.NewVec3(-1.3, 20, 1), 1, mirror(core.NewColor(255, 0, 0)))
	s.AddSphere(core.NewVec3(1.3, 20, 1), 1, mirror(core.NewColor(0, 0, 255)))
	s.AddSphere(core.NewVec3(0, 20, -1), 1, mirror(core.NewColor(0, 255, 0)))
	s.AddLight(core.NewVec3(0, 0, 0), core.NewColor(255, 255, 255))

	return s
}
