package geometry

import (
	"math"

	"github.com/df07/go-phong-raycaster/pkg/core"
)

// ClosestHit finds the sphere with the smallest hit parameter along ray.
// Ties keep the sphere that comes first in the slice.
func ClosestHit(ray core.Ray, spheres []*Sphere) (*Sphere, float64, bool) {
	var closest *Sphere
	closestT := math.Inf(1)

	for _, sphere := range spheres {
		if t, isHit := sphere.Intersect(ray); isHit && t < closestT {
			closestT = t
			closest = sphere
		}
	}

	if closest == nil {
		return nil, 0, false
	}
	return closest, closestT, true
}

// Hits reports whether any sphere intersects the ray from origin along
// direction. No distance limit is applied, so a sphere beyond the light
// still counts as an occluder.
func Hits(origin, direction core.Vec3, spheres []*Sphere) bool {
	ray := core.NewRay(origin, direction)
	for _, sphere := range spheres {
		// A root at t == 0 starts on the surface and does not occlude
		if t, isHit := sphere.Intersect(ray); isHit && t != 0 {
			return true
		}
	}
	return false
}
