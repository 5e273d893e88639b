package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while a frame renders.
type Scene struct {
	Eye     core.Vec3          // Camera position
	Spheres []*geometry.Sphere // Objects in the scene, in intersection order
	Lights  []geometry.Light   // Point lights in the scene
	Config  core.RenderConfig  // Image size and shading constants
}

// NewScene creates an empty scene with the eye at the origin
func NewScene(config core.RenderConfig) *Scene {
	return &Scene{
		Eye:     core.NewVec3(0, 0, 0),
		Spheres: make([]*geometry.Sphere, 0),
		Lights:  make([]geometry.Light, 0),
		Config:  config,
	}
}

// AddSphere adds a sphere to the scene and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, material geometry.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, material)
	s.Spheres = append(s.Spheres, sphere)
	return sphere
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color) {
	s.Lights = append(s.Lights, geometry.NewLight(position, color))
}

// Validate checks the configuration and the sphere geometry before rendering
func (s *Scene) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	for i, sphere := range s.Spheres {
		if !(sphere.Radius > 0) || math.IsInf(sphere.Radius, 0) {
			return fmt.Errorf("sphere %d: radius %g must be positive and finite", i, sphere.Radius)
		}
		if sphere.Reflectivity < 0 || sphere.Reflectivity > 1 {
			return fmt.Errorf("sphere %d: reflectivity %g must be in [0, 1]", i, sphere.Reflectivity)
		}
		if !finite(sphere.Center) {
			return fmt.Errorf("sphere %d: center %v is not finite", i, sphere.Center)
		}
	}
	for i, light := range s.Lights {
		if !finite(light.Position) {
			return fmt.Errorf("light %d: position %v is not finite", i, light.Position)
		}
	}
	return nil
}

func finite(v core.Vec3) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
