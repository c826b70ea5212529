package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or patterned)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewPatternedLambertian creates a new lambertian material with a color pattern
func NewPatternedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter produces one cosine-weighted diffuse ray on the incoming side.
// With cosine-weighted sampling the BRDF·cos/pdf estimator reduces to the albedo.
func (l *Lambertian) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	normal, _ := facing(hit)
	albedo := l.Albedo.Evaluate(hit.TexCoord, hit.Point)

	set.Add(scatter.ScatteredRay{
		Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal, sampler.Get2D())),
		Weight:   albedo,
		WeightNM: albedo.MaxComponent(),
		Kind:     scatter.Diffuse,
	})
	return set
}

// ScatterNM is Scatter with the albedo evaluated at wavelength nm
func (l *Lambertian) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	normal, _ := facing(hit)
	albedo := l.Albedo.Evaluate(hit.TexCoord, hit.Point)

	set.Add(scatter.ScatteredRay{
		Ray:      core.NewRay(hit.Point, core.SampleCosineHemisphere(normal, sampler.Get2D())),
		WeightNM: core.SpectralValue(albedo, nm),
		Kind:     scatter.Diffuse,
	})
	return set
}
