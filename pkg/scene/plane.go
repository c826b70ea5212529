package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	basis  core.ONB
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	n := normal.Normalize()
	return &Plane{Point: point, Normal: n, basis: core.NewONBFromW(n)}
}

// Hit tests if a ray intersects with the plane. A plane has no interior, so
// the exit distance equals the entry distance.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return core.SurfaceHit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return core.SurfaceHit{}, false
	}

	point := ray.At(t)
	local := point.Subtract(p.Point)
	s, tt := local.Dot(p.basis.U), local.Dot(p.basis.V)
	return core.SurfaceHit{
		TEnter:          t,
		TExit:           t,
		Normal:          p.Normal,
		GeometricNormal: p.Normal,
		TexCoord:        core.NewVec2(s-math.Floor(s), tt-math.Floor(tt)),
		Point:           point,
		ObjectPoint:     local,
		Basis:           p.basis,
		Detail:          core.PlaneDetail{S: s, T: tt},
	}, true
}

// BoundingBox returns a thin slab for axis-aligned planes and a large cube otherwise
func (p *Plane) BoundingBox() AABB {
	const largeValue = 1e6
	const epsilon = 0.001

	lo := core.NewVec3(-largeValue, -largeValue, -largeValue)
	hi := core.NewVec3(largeValue, largeValue, largeValue)
	switch {
	case math.Abs(p.Normal.X) > 0.999:
		lo.X, hi.X = p.Point.X-epsilon, p.Point.X+epsilon
	case math.Abs(p.Normal.Y) > 0.999:
		lo.Y, hi.Y = p.Point.Y-epsilon, p.Point.Y+epsilon
	case math.Abs(p.Normal.Z) > 0.999:
		lo.Z, hi.Z = p.Point.Z-epsilon, p.Point.Z+epsilon
	}
	return NewAABB(lo, hi)
}
