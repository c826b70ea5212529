package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Radiance core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(radiance core.Vec3) *Emissive {
	return &Emissive{Radiance: radiance}
}

// Scatter returns an empty set: emitters absorb everything they receive
func (e *Emissive) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	return scatter.Set{}
}

// ScatterNM returns an empty set
func (e *Emissive) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	return scatter.Set{}
}

// Emission returns the emitted radiance on the front face only
func (e *Emissive) Emission(hit *core.SurfaceHit) core.Vec3 {
	if !hit.FrontFace() {
		return core.Vec3{}
	}
	return e.Radiance
}
