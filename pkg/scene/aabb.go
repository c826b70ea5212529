package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(lo, hi core.Vec3) AABB {
	return AABB{Min: lo, Max: hi}
}

// axis returns component i of v (0=X, 1=Y, 2=Z)
func axis(v core.Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for i := 0; i < 3; i++ {
		lo, hi := axis(b.Min, i), axis(b.Max, i)
		origin, direction := axis(ray.Origin, i), axis(ray.Direction, i)

		// Parallel to the slab: inside or never
		if math.Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		inv := 1.0 / direction
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: core.NewVec3(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Center returns the center point of the AABB
func (b AABB) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b AABB) LongestAxis() int {
	size := b.Max.Subtract(b.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
