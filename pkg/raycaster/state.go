// Package raycaster dispatches rays to the scene and to the shading graph.
// Shaders receive the caster and recurse through it, so the caster's depth
// and importance limits are what bound a path.
package raycaster

import (
	"github.com/df07/go-raycaster/pkg/scatter"
)

// RayState describes where a ray sits in its path. States are values; the
// next level is derived with Next and the current one is never modified.
type RayState struct {
	Depth            int             // 1 for camera rays
	Importance       float64         // Product of path weights so far, in (0, 1] for primary rays
	ConsiderEmission bool            // Whether emitters hit by this ray contribute
	Kind             scatter.RayKind // Kind of the scattering event that produced the ray
}

// NewRayState returns the state of a camera ray
func NewRayState() RayState {
	return RayState{Depth: 1, Importance: 1, ConsiderEmission: true, Kind: scatter.Unknown}
}

// Next returns the state of a ray scattered from this one with the given
// kind and weight factor
func (s RayState) Next(kind scatter.RayKind, factor float64) RayState {
	return RayState{
		Depth:            s.Depth + 1,
		Importance:       s.Importance * factor,
		ConsiderEmission: s.ConsiderEmission,
		Kind:             kind,
	}
}

// WithoutEmission returns a copy that ignores emitters, for paths whose
// emission is already accounted for by direct lighting
func (s RayState) WithoutEmission() RayState {
	s.ConsiderEmission = false
	return s
}
