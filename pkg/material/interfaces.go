package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// SPF is a surface scattering function: given a hit it produces a small set
// of stochastic outgoing rays with their Monte-Carlo weights.
//
// The incoming ray is hit.Ray. iors describes the media the path is currently
// in; implementations read it but never modify it, recording medium changes as
// fragments on the rays they return instead. iors may be nil, in which case
// the ambient medium is assumed to be vacuum.
type SPF interface {
	Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set

	// ScatterNM scatters for a single wavelength (nm). Only WeightNM is
	// meaningful on the returned rays.
	ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emission(hit *core.SurfaceHit) core.Vec3
}

// EmissionNM returns an emitter's radiance at a single wavelength
func EmissionNM(e Emitter, hit *core.SurfaceHit, nm float64) float64 {
	return core.SpectralValue(e.Emission(hit), nm)
}

// currentIOR returns the medium the ray travels in before reaching the surface
func currentIOR(iors *refraction.Stack) float64 {
	if iors == nil {
		return refraction.DefaultAmbientIOR
	}
	return iors.Top()
}

// outsideIOR returns the medium a ray leaving the current object travels into
func outsideIOR(iors *refraction.Stack) float64 {
	if iors == nil {
		return refraction.DefaultAmbientIOR
	}
	return iors.Outside()
}

// facing returns the normal oriented against the incoming ray, and whether
// the ray arrived from the outside of the surface
func facing(hit *core.SurfaceHit) (core.Vec3, bool) {
	if hit.FrontFace() {
		return hit.Basis.W, true
	}
	return hit.Basis.W.Negate(), false
}
