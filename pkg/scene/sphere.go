package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape. A negative radius turns the normals
// inward, which makes the sphere the inner wall of a hollow shell.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	return hitSphere(s.Center, s.Radius, ray, tMin, tMax, wantExit)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() AABB {
	r := math.Abs(s.Radius)
	extent := core.NewVec3(r, r, r)
	return NewAABB(s.Center.Subtract(extent), s.Center.Add(extent))
}

func hitSphere(center core.Vec3, radius float64, ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.SurfaceHit{}, false
	}
	sqrtD := math.Sqrt(discriminant)
	near := (-halfB - sqrtD) / a
	far := (-halfB + sqrtD) / a

	root := near
	if root < tMin || root > tMax {
		root = far
		if root < tMin || root > tMax {
			return core.SurfaceHit{}, false
		}
	}

	point := ray.At(root)
	local := point.Subtract(center)
	normal := local.Multiply(1.0 / radius)

	// Spherical coordinates of the unit direction from the center
	d := local.Normalize()
	theta := math.Acos(math.Max(-1, math.Min(1, -d.Y)))
	phi := math.Atan2(-d.Z, d.X) + math.Pi

	hit := core.SurfaceHit{
		TEnter:          root,
		TExit:           root,
		Normal:          normal,
		GeometricNormal: normal,
		TexCoord:        core.NewVec2(phi/(2*math.Pi), theta/math.Pi),
		Point:           point,
		ObjectPoint:     local,
		Basis:           core.NewONBFromW(normal),
		Detail:          core.SphereDetail{Theta: theta, Phi: phi},
	}
	if wantExit {
		hit.TExit = far
	}
	return hit, true
}
