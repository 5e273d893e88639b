package renderer

import (
	"math"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/geometry"
	"github.com/df07/go-phong-raycaster/pkg/scene"
)

// RayStats counts the work done while casting rays.
// A RayStats value belongs to a single goroutine.
type RayStats struct {
	Casts          int // Calls to Cast, including the ones cut off at max depth
	Hits           int // Casts that found a sphere
	ShadowRays     int // Occlusion queries toward lights
	DepthLimitHits int // Casts that stopped because max depth was reached
	DeepestDepth   int // Largest depth passed to Cast
}

// Merge adds the counters of other into s
func (s *RayStats) Merge(other RayStats) {
	s.Casts += other.Casts
	s.Hits += other.Hits
	s.ShadowRays += other.ShadowRays
	s.DepthLimitHits += other.DepthLimitHits
	s.DeepestDepth = max(s.DeepestDepth, other.DeepestDepth)
}

// Raycaster computes the color seen along a ray with Phong shading and
// recursive mirror reflection
type Raycaster struct {
	scene  *scene.Scene
	config core.RenderConfig
}

// NewRaycaster creates a raycaster that reads from s without modifying it
func NewRaycaster(s *scene.Scene) *Raycaster {
	return &Raycaster{
		scene:  s,
		config: s.Config,
	}
}

// Trace casts a primary ray at depth 0. Zero-length directions are rejected
// before any intersection math runs.
func (rc *Raycaster) Trace(ray core.Ray, stats *RayStats) (core.Color, error) {
	if err := ray.Validate(); err != nil {
		return core.Black, err
	}
	return rc.Cast(ray, 0, stats), nil
}

// Cast returns the color along ray at the given recursion depth.
// It returns black once depth reaches MaxDepth or when nothing is hit.
// stats may be nil when the counters are not needed.
func (rc *Raycaster) Cast(ray core.Ray, depth int, stats *RayStats) core.Color {
	if stats == nil {
		stats = &RayStats{}
	}
	stats.Casts++
	stats.DeepestDepth = max(stats.DeepestDepth, depth)

	if depth >= rc.config.MaxDepth {
		stats.DepthLimitHits++
		return core.Black
	}

	sphere, t, isHit := geometry.ClosestHit(ray, rc.scene.Spheres)
	if !isHit {
		return core.Black
	}
	stats.Hits++

	// Pull the hit point back toward the origin so secondary rays start outside the surface
	intersection := ray.At(t - rc.config.Epsilon)
	normal := sphere.Normal(intersection)

	illumination := rc.illuminate(sphere, ray.Direction, intersection, normal, stats)

	reflected := core.NewRay(intersection, ray.Direction.Reflect(normal).Negate())
	reflection := rc.Cast(reflected, depth+1, stats)

	return sphere.Color.Dimm(illumination).Add(reflection.Multiply(sphere.Reflectivity))
}

// illuminate sums the ambient, diffuse and specular terms of every light at a hit point
func (rc *Raycaster) illuminate(sphere *geometry.Sphere, direction, intersection, normal core.Vec3, stats *RayStats) core.Color {
	ambient := rc.config.GlobalAmbient.Dimm(sphere.Ka)
	viewer := direction.Negate()

	illumination := core.Black
	if rc.config.Ambient == core.AmbientOnce {
		illumination = illumination.Add(ambient)
	}

	for _, light := range rc.scene.Lights {
		lightDir := light.Position.Subtract(intersection)

		emitted := light.Color
		stats.ShadowRays++
		if geometry.Hits(intersection, lightDir, rc.scene.Spheres) {
			emitted = core.Black
		}

		diffuse := emitted.Dimm(sphere.Kd).Multiply(lightDir.Cosine(normal))

		cosValue := math.Max(0, viewer.Cosine(lightDir.Reflect(normal)))
		specular := emitted.Dimm(sphere.Ks).Multiply(math.Pow(cosValue, sphere.Shininess))

		if rc.config.Ambient == core.AmbientPerLight {
			illumination = illumination.Add(ambient)
		}
		illumination = illumination.Add(diffuse).Add(specular)
	}

	return illumination
}
