package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Filter maps a point of the unit square to an offset from the pixel center
// (in pixels) and the filter's weight at that offset
type Filter interface {
	Warp(u core.Vec2) (core.Vec2, float64)
	Radius() float64
	Name() string
}

// BoxFilter weighs every sample equally
type BoxFilter struct {
	Width float64 // Support width in pixels
}

func (f BoxFilter) Name() string    { return "box" }
func (f BoxFilter) Radius() float64 { return f.Width / 2 }

// Warp implements Filter
func (f BoxFilter) Warp(u core.Vec2) (core.Vec2, float64) {
	return spread(u, f.Radius()), 1
}

// TentFilter weighs samples linearly by distance from the center along each axis
type TentFilter struct {
	Width float64
}

func (f TentFilter) Name() string    { return "tent" }
func (f TentFilter) Radius() float64 { return f.Width / 2 }

// Warp implements Filter
func (f TentFilter) Warp(u core.Vec2) (core.Vec2, float64) {
	r := f.Radius()
	offset := spread(u, r)
	if r <= 0 {
		return offset, 1
	}
	return offset, (1 - math.Abs(offset.X)/r) * (1 - math.Abs(offset.Y)/r)
}

// GaussianFilter is a truncated Gaussian, shifted so it reaches zero at the radius
type GaussianFilter struct {
	Width float64
	Sigma float64
}

func (f GaussianFilter) Name() string    { return "gaussian" }
func (f GaussianFilter) Radius() float64 { return f.Width / 2 }

// Warp implements Filter
func (f GaussianFilter) Warp(u core.Vec2) (core.Vec2, float64) {
	r := f.Radius()
	offset := spread(u, r)
	if r <= 0 || f.Sigma <= 0 {
		return offset, 1
	}
	return offset, f.gaussian(offset.X) * f.gaussian(offset.Y)
}

func (f GaussianFilter) gaussian(x float64) float64 {
	r := f.Radius()
	s2 := 2 * f.Sigma * f.Sigma
	return max(0, math.Exp(-x*x/s2)-math.Exp(-r*r/s2))
}

// FilterByName returns the named filter with the given support width
func FilterByName(name string, width float64) (Filter, bool) {
	switch name {
	case "box":
		return BoxFilter{Width: width}, true
	case "tent":
		return TentFilter{Width: width}, true
	case "gaussian":
		return GaussianFilter{Width: width, Sigma: width / 4}, true
	}
	return nil, false
}

// spread maps [0,1)² onto [-r, r)²
func spread(u core.Vec2, r float64) core.Vec2 {
	return core.NewVec2((2*u.X-1)*r, (2*u.Y-1)*r)
}

// Filters returns the names accepted by FilterByName
func Filters() []string {
	return []string{"box", "tent", "gaussian"}
}
