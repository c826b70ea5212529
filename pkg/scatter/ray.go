package scatter

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
)

// RayKind classifies how a scattered ray left the surface
type RayKind int

const (
	Unknown RayKind = iota
	Diffuse
	Reflection
	Refraction
	Translucent
)

// String returns the lower-case kind name
func (k RayKind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflection:
		return "reflection"
	case Refraction:
		return "refraction"
	case Translucent:
		return "translucent"
	default:
		return "unknown"
	}
}

// ScatteredRay is a candidate outgoing ray produced by a scattering function
type ScatteredRay struct {
	Ray      core.Ray  // Outgoing ray
	Weight   core.Vec3 // Per-channel weight
	WeightNM float64   // Scalar weight for single-wavelength evaluation
	Kind     RayKind   // How the ray left the surface

	// Medium holds the refraction stack operations to apply to the path that
	// continues along this ray. Ownership moves with the ray.
	Medium refraction.Fragment
}

// measure returns the selection weight of the ray
func (r *ScatteredRay) measure(spectral bool) float64 {
	if spectral {
		return r.WeightNM
	}
	return r.Weight.MaxComponent()
}
