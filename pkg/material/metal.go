package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0, min(fuzzness, 1))}
}

// Scatter reflects the incoming ray, perturbed by the fuzz factor. Rays
// perturbed below the surface are absorbed.
func (m *Metal) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	if dir, ok := m.reflect(hit, sampler); ok {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, dir),
			Weight:   m.Albedo,
			WeightNM: m.Albedo.MaxComponent(),
			Kind:     scatter.Reflection,
		})
	}
	return set
}

// ScatterNM is Scatter with the albedo evaluated at wavelength nm
func (m *Metal) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	if dir, ok := m.reflect(hit, sampler); ok {
		set.Add(scatter.ScatteredRay{
			Ray:      core.NewRay(hit.Point, dir),
			WeightNM: core.SpectralValue(m.Albedo, nm),
			Kind:     scatter.Reflection,
		})
	}
	return set
}

func (m *Metal) reflect(hit *core.SurfaceHit, sampler core.Sampler) (core.Vec3, bool) {
	normal, _ := facing(hit)
	reflected := core.Reflect(hit.Ray.Direction.Normalize(), normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness))
	}

	return reflected, reflected.Dot(normal) > 0
}
