package core

// Ray represents a ray with an origin and direction.
// The direction is not normalized; its length scales the ray parameter t.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Validate returns ErrDegenerateRay when the direction has zero length
func (r Ray) Validate() error {
	if r.Direction.IsZero() {
		return ErrDegenerateRay
	}
	return nil
}
