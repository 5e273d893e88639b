package geometry

import (
	"math"

	"github.com/df07/go-phong-raycaster/pkg/core"
)

// Material holds the surface color and Phong coefficients of a sphere
type Material struct {
	Color        core.Color // Surface color, attenuated by the accumulated illumination
	Shininess    float64    // Phong exponent for the specular highlight
	Ka           core.Color // Ambient coefficient
	Kd           core.Color // Diffuse coefficient
	Ks           core.Color // Specular coefficient
	Reflectivity float64    // Fraction of the mirror reflection blended in, in [0, 1]
}

// DefaultMaterial returns a matte material of the given color
func DefaultMaterial(color core.Color) Material {
	return Material{
		Color:        color,
		Shininess:    8,
		Ka:           core.NewColor(200, 200, 200),
		Kd:           core.NewColor(150, 150, 150),
		Ks:           core.NewColor(30, 30, 30),
		Reflectivity: 0,
	}
}

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the ray parameter of the hit used for shading.
//
// Both roots behind the origin is a miss. When only the near root is behind
// the origin (the ray starts inside the sphere) the far root is returned.
// Otherwise the nearer root is returned. A zero-length direction never hits.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	oc := ray.Origin.Subtract(s.Center)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-sqrtD - b) / (2 * a)
	t2 := (sqrtD - b) / (2 * a)

	if t2 < 0 {
		return 0, false
	}
	if t1 < 0 {
		return t2, true
	}
	return min(t1, t2), true
}

// Normal returns the outward vector from the center to p. It is not normalized.
func (s *Sphere) Normal(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center)
}
