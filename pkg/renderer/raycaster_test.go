package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
	"github.com/df07/go-phong-raycaster/pkg/scene"
)

// newSinglePixelScene creates a 1x1 scene looking straight up +Y at a white sphere
func newSinglePixelScene() *scene.Scene {
	s := scene.NewScene(core.MergeRenderConfig(core.DefaultRenderConfig(), core.RenderConfig{Width: 1, Height: 1}))
	s.AddSphere(core.NewVec3(0, 20, 0), 1, geometry.DefaultMaterial(core.White))
	return s
}

func castPixel(t *testing.T, s *scene.Scene) (core.Color, RayStats) {
	t.Helper()
	ray, err := NewCamera(s.Eye, s.Config).GetRay(0, 0)
	if err != nil {
		t.Fatalf("Unexpected error building ray: %v", err)
	}
	var stats RayStats
	color, err := NewRaycaster(s).Trace(ray, &stats)
	if err != nil {
		t.Fatalf("Unexpected trace error: %v", err)
	}
	return color, stats
}

func TestRaycaster_LitSphereFacingLight(t *testing.T) {
	s := newSinglePixelScene()
	s.AddLight(core.NewVec3(0, -50, 0), core.White)

	color, stats := castPixel(t, s)

	// ambient 15 + diffuse 150 + specular 30
	expected := core.NewColor(195, 195, 195)
	if !color.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if stats.Casts != 2 {
		t.Errorf("Expected the primary cast plus one missed reflection, got %d casts", stats.Casts)
	}
	if stats.ShadowRays != 1 {
		t.Errorf("Expected 1 shadow ray, got %d", stats.ShadowRays)
	}
}

func TestRaycaster_ShadowedSphereKeepsOnlyAmbient(t *testing.T) {
	s := newSinglePixelScene()
	// Occluder sits between the sphere and a light placed behind it
	s.AddSphere(core.NewVec3(0, 35, 0), 5, geometry.DefaultMaterial(core.White))
	s.AddLight(core.NewVec3(0, 50, 0), core.White)

	color, _ := castPixel(t, s)

	expected := core.NewColor(15, 15, 15)
	if !color.Equals(expected) {
		t.Errorf("Expected ambient only %v, got %v", expected, color)
	}
}

func TestRaycaster_TangentHitIsNotSelfShadowed(t *testing.T) {
	s := scene.NewDefaultScene()
	// The center ray grazes the white sphere, so the hit point sits on its surface
	ray, err := NewCamera(s.Eye, s.Config).GetRay(160, 120)
	if err != nil {
		t.Fatalf("Unexpected error building ray: %v", err)
	}

	color, err := NewRaycaster(s).Trace(ray, nil)
	if err != nil {
		t.Fatalf("Unexpected trace error: %v", err)
	}

	// ambient 15 + diffuse 101, no specular
	expected := core.NewColor(116, 116, 116)
	if !color.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestRaycaster_EmptySceneIsBlack(t *testing.T) {
	s := scene.NewScene(core.DefaultRenderConfig())
	s.AddLight(core.NewVec3(0, -50, 0), core.White)

	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(-3, 0.5, 2),
		core.NewVec3(0, 0, -1),
	}
	raycaster := NewRaycaster(s)
	for _, d := range directions {
		var stats RayStats
		color, err := raycaster.Trace(core.NewRay(s.Eye, d), &stats)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !color.Equals(core.Black) {
			t.Errorf("Expected black for direction %v, got %v", d, color)
		}
		if stats.Casts != 1 || stats.Hits != 0 {
			t.Errorf("Expected a single missed cast, got %+v", stats)
		}
	}
}

func TestRaycaster_NoLights(t *testing.T) {
	s := newSinglePixelScene()

	color, stats := castPixel(t, s)
	if !color.Equals(core.Black) {
		t.Errorf("Expected black without lights, got %v", color)
	}
	if stats.ShadowRays != 0 {
		t.Errorf("Expected no shadow rays, got %d", stats.ShadowRays)
	}
}

func TestRaycaster_AmbientModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     core.AmbientMode
		expected core.Color
	}{
		{"per-light ambient adds once per light", core.AmbientPerLight, core.NewColor(30, 30, 30)},
		{"single ambient term", core.AmbientOnce, core.NewColor(15, 15, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSinglePixelScene()
			s.Config.Ambient = tt.mode
			s.AddSphere(core.NewVec3(0, 35, 0), 5, geometry.DefaultMaterial(core.White))
			// Two fully shadowed lights leave only the ambient contribution
			s.AddLight(core.NewVec3(0, 50, 0), core.White)
			s.AddLight(core.NewVec3(0, 60, 0), core.White)

			color, _ := castPixel(t, s)
			if !color.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestRaycaster_RecursionIsBounded(t *testing.T) {
	tests := []struct {
		maxDepth      int
		expectedCasts int
	}{
		{0, 1},
		{1, 2},
		{3, 4},
		{6, 7},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("max depth %d", tt.maxDepth), func(t *testing.T) {
			config := core.MergeRenderConfig(core.DefaultRenderConfig(), core.RenderConfig{Width: 1, Height: 1})
			config.MaxDepth = tt.maxDepth
			s := scene.NewScene(config)

			// Two mirrors facing each other with the eye between them
			mirror := geometry.DefaultMaterial(core.White)
			mirror.Reflectivity = 0.9
			s.AddSphere(core.NewVec3(0, 20, 0), 1, mirror)
			s.AddSphere(core.NewVec3(0, -20, 0), 1, mirror)
			s.AddLight(core.NewVec3(10, 0, 0), core.White)

			_, stats := castPixel(t, s)

			if stats.Casts != tt.expectedCasts {
				t.Errorf("MaxDepth %d: expected %d casts, got %d", tt.maxDepth, tt.expectedCasts, stats.Casts)
			}
			if stats.Hits != tt.maxDepth {
				t.Errorf("MaxDepth %d: expected every cast below the limit to hit, got %d hits", tt.maxDepth, stats.Hits)
			}
			if stats.DepthLimitHits != 1 {
				t.Errorf("Expected exactly one cast cut off at max depth, got %d", stats.DepthLimitHits)
			}
			if stats.DeepestDepth != tt.maxDepth {
				t.Errorf("Expected deepest depth %d, got %d", tt.maxDepth, stats.DeepestDepth)
			}
		})
	}
}

func TestRaycaster_ReflectionAddsColor(t *testing.T) {
	config := core.MergeRenderConfig(core.DefaultRenderConfig(), core.RenderConfig{Width: 1, Height: 1})

	render := func(reflectivity float64) core.Color {
		s := scene.NewScene(config)
		mirror := geometry.DefaultMaterial(core.NewColor(0, 0, 255))
		mirror.Reflectivity = reflectivity
		s.AddSphere(core.NewVec3(0, 20, 0), 1, mirror)
		s.AddSphere(core.NewVec3(0, -20, 0), 1, geometry.DefaultMaterial(core.NewColor(255, 0, 0)))
		s.AddLight(core.NewVec3(0, 0, 0), core.White)
		color, _ := castPixel(t, s)
		return color
	}

	matte := render(0)
	shiny := render(0.7)
	if matte.R != 0 {
		t.Errorf("Expected no red on a matte blue sphere, got %v", matte)
	}
	if shiny.R <= 0 {
		t.Errorf("Expected the red sphere to show up in the reflection, got %v", shiny)
	}
	if shiny.B != matte.B {
		t.Errorf("Expected the local blue term to be unchanged, got %d vs %d", shiny.B, matte.B)
	}
}

func TestRaycaster_TraceRejectsDegenerateRay(t *testing.T) {
	s := newSinglePixelScene()
	var stats RayStats

	color, err := NewRaycaster(s).Trace(core.NewRay(s.Eye, core.NewVec3(0, 0, 0)), &stats)
	if !errors.Is(err, core.ErrDegenerateRay) {
		t.Errorf("Expected ErrDegenerateRay, got %v", err)
	}
	if !color.Equals(core.Black) || stats.Casts != 0 {
		t.Errorf("Expected black and no casts, got %v / %d", color, stats.Casts)
	}
}

func TestRaycaster_CastWithNilStats(t *testing.T) {
	s := newSinglePixelScene()
	s.AddLight(core.NewVec3(0, -50, 0), core.White)

	color := NewRaycaster(s).Cast(core.NewRay(s.Eye, core.NewVec3(0, 1, 0)), 0, nil)
	if !color.Equals(core.NewColor(195, 195, 195)) {
		t.Errorf("Expected (195,195,195), got %v", color)
	}
}
