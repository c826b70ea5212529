package core

// Ray represents a ray with an origin and direction
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

// Advance returns a copy of the ray with its origin moved distance units along
// the normalized direction.
func (r Ray) Advance(distance float64) Ray {
	return Ray{Origin: r.Origin.Add(r.Direction.Normalize().Multiply(distance)), Direction: r.Direction}
}

// Pixel is an integer image coordinate. It is comparable and used as a cache key.
type Pixel struct {
	X, Y int
}

// ObjectID identifies a scene object. NoObject is never assigned to geometry.
type ObjectID uint64

// NoObject is the zero identity, used for the ambient medium and "no owner".
const NoObject ObjectID = 0
