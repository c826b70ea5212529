package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// MovingSphere is a sphere travelling in a straight line from From (t=0) to
// To (t=1). The current position is set by EvaluateAnimationAtTime, which
// the caller must not run concurrently with intersection queries.
type MovingSphere struct {
	From, To core.Vec3
	Radius   float64
	center   core.Vec3
}

// NewMovingSphere creates a sphere positioned at from
func NewMovingSphere(from, to core.Vec3, radius float64) *MovingSphere {
	return &MovingSphere{From: from, To: to, Radius: radius, center: from}
}

// EvaluateAnimationAtTime moves the sphere to its position at time t.
// Times outside [0, 1] clamp to the ends of the path.
func (m *MovingSphere) EvaluateAnimationAtTime(t float64) {
	m.center = m.From.Lerp(m.To, math.Max(0, math.Min(1, t)))
}

// Center returns the current position
func (m *MovingSphere) Center() core.Vec3 {
	return m.center
}

// Hit intersects the sphere at its current position
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	return hitSphere(m.center, m.Radius, ray, tMin, tMax, wantExit)
}

// BoundingBox covers the whole path so the hierarchy stays valid at any time
func (m *MovingSphere) BoundingBox() AABB {
	r := math.Abs(m.Radius)
	extent := core.NewVec3(r, r, r)
	from := NewAABB(m.From.Subtract(extent), m.From.Add(extent))
	to := NewAABB(m.To.Subtract(extent), m.To.Add(extent))
	return from.Union(to)
}
