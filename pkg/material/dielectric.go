package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// sodiumD is the reference wavelength (nm) at which RefractiveIndex is given
const sodiumD = 589.3

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64   // Index of refraction at 589nm (e.g., 1.5 for glass)
	Tint            core.Vec3 // Transmission color
	Dispersion      float64   // Cauchy B coefficient in µm², 0 for none
}

// NewDielectric creates a new clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: core.NewVec3(1, 1, 1)}
}

// IORAt returns the refractive index at wavelength nm
func (d *Dielectric) IORAt(nm float64) float64 {
	if d.Dispersion == 0 {
		return d.RefractiveIndex
	}
	ref := sodiumD / 1000
	lambda := nm / 1000
	return d.RefractiveIndex + d.Dispersion*(1/(lambda*lambda)-1/(ref*ref))
}

// Scatter returns a Fresnel-weighted reflected ray and, unless the ray is
// totally internally reflected, a refracted ray. The refracted ray carries
// the stack operation for entering or leaving this object.
func (d *Dielectric) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	reflected, refracted, ok := d.split(hit, iors, d.RefractiveIndex)

	set.Add(scatter.ScatteredRay{
		Ray:      reflected.ray,
		Weight:   core.NewVec3(reflected.weight, reflected.weight, reflected.weight),
		WeightNM: reflected.weight,
		Kind:     scatter.Reflection,
	})
	if ok {
		w := d.Tint.Multiply(refracted.weight)
		set.Add(scatter.ScatteredRay{
			Ray:      refracted.ray,
			Weight:   w,
			WeightNM: w.MaxComponent(),
			Kind:     scatter.Refraction,
			Medium:   refracted.medium,
		})
	}
	return set
}

// ScatterNM is Scatter using the dispersed index at wavelength nm
func (d *Dielectric) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	var set scatter.Set
	reflected, refracted, ok := d.split(hit, iors, d.IORAt(nm))

	set.Add(scatter.ScatteredRay{
		Ray:      reflected.ray,
		WeightNM: reflected.weight,
		Kind:     scatter.Reflection,
	})
	if ok {
		set.Add(scatter.ScatteredRay{
			Ray:      refracted.ray,
			WeightNM: core.SpectralValue(d.Tint, nm) * refracted.weight,
			Kind:     scatter.Refraction,
			Medium:   refracted.medium,
		})
	}
	return set
}

type branch struct {
	ray    core.Ray
	weight float64
	medium refraction.Fragment
}

func (d *Dielectric) split(hit *core.SurfaceHit, iors *refraction.Stack, ior float64) (branch, branch, bool) {
	normal, entering := facing(hit)
	unitDirection := hit.Ray.Direction.Normalize()

	var etaI, etaT float64
	var medium refraction.Fragment
	if entering {
		etaI, etaT = currentIOR(iors), ior
		medium = medium.Push(hit.Object, ior)
	} else {
		etaI, etaT = ior, outsideIOR(iors)
		medium = medium.Pop(hit.Object)
	}
	ratio := etaI / etaT

	reflected := branch{
		ray:    core.NewRay(hit.Point, core.Reflect(unitDirection, normal)),
		weight: 1,
	}

	dir, ok := core.Refract(unitDirection, normal, ratio)
	if !ok {
		return reflected, branch{}, false
	}

	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)
	r := core.Reflectance(cosTheta, ratio)
	reflected.weight = r

	return reflected, branch{ray: core.NewRay(hit.Point, dir), weight: 1 - r, medium: medium}, true
}
