package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for parameterized patterns, point for solid patterns
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a solid (3D) checkerboard pattern
type Checker struct {
	Even, Odd core.Vec3
	Scale     float64 // Size of one check in world units
}

// NewChecker creates a checkerboard with checks of the given size
func NewChecker(even, odd core.Vec3, scale float64) *Checker {
	if scale <= 0 {
		scale = 1
	}
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Evaluate returns the check color containing point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	ix := int(math.Floor(point.X / c.Scale))
	iy := int(math.Floor(point.Y / c.Scale))
	iz := int(math.Floor(point.Z / c.Scale))
	if (ix+iy+iz)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
