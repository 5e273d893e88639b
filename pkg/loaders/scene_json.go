package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
	"github.com/df07/go-phong-raycaster/pkg/scene"
)

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

// ColorCfg is a JSON [r, g, b] triple
type ColorCfg [3]int

func (v Vec3Cfg) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (c ColorCfg) toColor() core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

// SphereCfg describes one sphere. Omitted material fields take the
// geometry.DefaultMaterial values and an omitted radius is 1.
type SphereCfg struct {
	Position     Vec3Cfg   `json:"position"`
	Color        ColorCfg  `json:"color"`
	Radius       *float64  `json:"radius,omitempty"`
	Shininess    *float64  `json:"shininess,omitempty"`
	Ambient      *ColorCfg `json:"ambient,omitempty"`
	Diffuse      *ColorCfg `json:"diffuse,omitempty"`
	Specular     *ColorCfg `json:"specular,omitempty"`
	Reflectivity float64   `json:"reflectivity,omitempty"`
}

// LightCfg describes one point light
type LightCfg struct {
	Position Vec3Cfg  `json:"position"`
	Color    ColorCfg `json:"color"`
}

// SceneCfg is the JSON layout of a scene file. Zero-valued constants fall
// back to core.DefaultRenderConfig; maxDepth is a pointer so 0 can be set.
type SceneCfg struct {
	Width          int         `json:"width,omitempty"`
	Height         int         `json:"height,omitempty"`
	ScreenDistance float64     `json:"screenDistance,omitempty"`
	PixelSize      float64     `json:"pixelSize,omitempty"`
	Epsilon        float64     `json:"epsilon,omitempty"`
	MaxDepth       *int        `json:"maxDepth,omitempty"`
	GlobalAmbient  *ColorCfg   `json:"globalAmbient,omitempty"`
	AmbientMode    string      `json:"ambientMode,omitempty"`
	Eye            Vec3Cfg     `json:"eye"`
	Spheres        []SphereCfg `json:"spheres"`
	Lights         []LightCfg  `json:"lights"`
}

// Build converts the sphere description into a scene sphere
func (sc SphereCfg) Build() *geometry.Sphere {
	material := geometry.DefaultMaterial(sc.Color.toColor())
	if sc.Shininess != nil {
		material.Shininess = *sc.Shininess
	}
	if sc.Ambient != nil {
		material.Ka = sc.Ambient.toColor()
	}
	if sc.Diffuse != nil {
		material.Kd = sc.Diffuse.toColor()
	}
	if sc.Specular != nil {
		material.Ks = sc.Specular.toColor()
	}
	material.Reflectivity = sc.Reflectivity

	radius := 1.0
	if sc.Radius != nil {
		radius = *sc.Radius
	}
	return geometry.NewSphere(sc.Position.toVec3(), radius, material)
}

// Build converts the scene description into a validated scene
func (cfg SceneCfg) Build() (*scene.Scene, error) {
	mode, err := core.ParseAmbientMode(cfg.AmbientMode)
	if err != nil {
		return nil, err
	}

	config := core.MergeRenderConfig(core.DefaultRenderConfig(), core.RenderConfig{
		Width:          cfg.Width,
		Height:         cfg.Height,
		ScreenDistance: cfg.ScreenDistance,
		PixelSize:      cfg.PixelSize,
		Epsilon:        cfg.Epsilon,
	})
	config.Ambient = mode
	if cfg.MaxDepth != nil {
		config.MaxDepth = *cfg.MaxDepth
	}
	if cfg.GlobalAmbient != nil {
		config.GlobalAmbient = cfg.GlobalAmbient.toColor()
	}

	s := scene.NewScene(config)
	s.Eye = cfg.Eye.toVec3()
	for _, sc := range cfg.Spheres {
		s.Spheres = append(s.Spheres, sc.Build())
	}
	for _, lc := range cfg.Lights {
		s.AddLight(lc.Position.toVec3(), lc.Color.toColor())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseScene decodes a JSON scene description
func ParseScene(data []byte) (*scene.Scene, error) {
	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return cfg.Build()
}

// LoadSceneFile reads and decodes a JSON scene file
func LoadSceneFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
