package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raycaster/pkg/core"
)

func TestCamera_Direction(t *testing.T) {
	config := core.DefaultRenderConfig()
	camera := NewCamera(core.NewVec3(0, 0, 0), config)

	tests := []struct {
		name     string
		w, h     int
		expected core.Vec3
	}{
		{"image center", 160, 120, core.NewVec3(0, 1, 0)},
		{"top left", 0, 0, core.NewVec3(-0.16, 1, 0.12)},
		{"bottom right", 319, 239, core.NewVec3(0.159, 1, -0.119)},
		{"row below center points down", 160, 121, core.NewVec3(0, 1, -0.001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := camera.Direction(tt.w, tt.h)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_DirectionRelativeToEye(t *testing.T) {
	config := core.RenderConfig{Width: 1, Height: 1, ScreenDistance: 1, PixelSize: 0.001}
	camera := NewCamera(core.NewVec3(2, -3, 4), config)

	got := camera.Direction(0, 0)
	expected := core.NewVec3(-2, 4, -4)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestCamera_GetRay(t *testing.T) {
	config := core.RenderConfig{Width: 1, Height: 1, ScreenDistance: 1, PixelSize: 0.001}
	camera := NewCamera(core.NewVec3(0, 0, 0), config)

	ray, err := camera.GetRay(0, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ray.Origin != camera.Eye {
		t.Errorf("Expected ray to start at the eye, got %v", ray.Origin)
	}
	if math.Abs(ray.Direction.Y-1) > 1e-12 {
		t.Errorf("Expected direction (0,1,0), got %v", ray.Direction)
	}
}

func TestCamera_GetRay_Degenerate(t *testing.T) {
	// The eye sits on the image plane at the center pixel
	config := core.RenderConfig{Width: 3, Height: 3, ScreenDistance: 1, PixelSize: 0.001}
	camera := NewCamera(core.NewVec3(0, 1, 0), config)

	if _, err := camera.GetRay(1, 1); !errors.Is(err, core.ErrDegenerateRay) {
		t.Errorf("Expected ErrDegenerateRay, got %v", err)
	}
	if _, err := camera.GetRay(0, 1); err != nil {
		t.Errorf("Unexpected error for an off-center pixel: %v", err)
	}
}
