package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Translucent scatters diffusely on both sides of a thin surface, like paper
// or leaves.
type Translucent struct {
	Reflectance   core.Vec3
	Transmittance core.Vec3
}

// NewTranslucent creates a new translucent material
func NewTranslucent(reflectance, transmittance core.Vec3) *Translucent {
	return &Translucent{Reflectance: reflectance, Transmittance: transmittance}
}

// Scatter returns a diffuse ray on the incoming side and a translucent ray on
// the far side, each cosine-weighted
func (t *Translucent) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	normal, _ := facing(hit)

	if !t.Reflectance.IsZero() {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal, sampler.Get2D())),
			Weight:   t.Reflectance,
			WeightNM: t.Reflectance.MaxComponent(),
			Kind:     scatter.Diffuse,
		})
	}
	if !t.Transmittance.IsZero() {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal.Negate(), sampler.Get2D())),
			Weight:   t.Transmittance,
			WeightNM: t.Transmittance.MaxComponent(),
			Kind:     scatter.Translucent,
		})
	}
	return set
}

// ScatterNM is Scatter with the colors evaluated at wavelength nm
func (t *Translucent) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	normal, _ := facing(hit)

	if r := core.SpectralValue(t.Reflectance, nm); r > 0 {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal, sampler.Get2D())),
			WeightNM: r,
			Kind:     scatter.Diffuse,
		})
	}
	if tr := core.SpectralValue(t.Transmittance, nm); tr > 0 {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal.Negate(), sampler.Get2D())),
			WeightNM: tr,
			Kind:     scatter.Translucent,
		})
	}
	return set
}
