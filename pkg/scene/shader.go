package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
	"github.com/df07/go-raycaster/pkg/shading"
)

// DefaultMaxDirectLights is the number of lights evaluated exhaustively at
// each diffuse hit; scenes with more lights sample one per hit.
const DefaultMaxDirectLights = 4

// Shader evaluates object materials: emission, direct light from the scene's
// point lights on diffuse rays, and indirect light through the rays the
// material scatters. Primary hits follow every scattered ray; deeper hits
// follow one, chosen in proportion to its weight.
type Shader struct {
	MaxDirectLights int

	scene        *Scene
	lights       *LightSampler
	irradianceOp shading.OperationID
}

// NewShader creates a shader for s. Lights added to s afterwards are not seen.
func NewShader(s *Scene) *Shader {
	return &Shader{
		MaxDirectLights: DefaultMaxDirectLights,
		scene:           s,
		lights:          NewPowerLightSampler(s.Lights),
		irradianceOp:    shading.NewOperationID(),
	}
}

// Shade implements raycaster.Shader
func (sh *Shader) Shade(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster raycaster.Caster, state raycaster.RayState, iors *refraction.Stack) core.Vec3 {
	obj, ok := sh.scene.Object(hit.Object)
	if !ok {
		return core.Vec3{}
	}

	var color core.Vec3
	if e, ok := obj.Material.(material.Emitter); ok && state.ConsiderEmission {
		color = e.Emission(hit)
	}

	set := obj.Material.Scatter(hit, ctx.Sampler(), iors)
	if state.Depth <= 1 {
		for _, r := range set.Rays() {
			color = color.Add(sh.follow(ctx, pixel, hit, caster, state, iors, r, 1))
		}
		return color
	}

	if r, prob, ok := set.SelectAny(ctx.Sampler().Get1D(), false); ok {
		color = color.Add(sh.follow(ctx, pixel, hit, caster, state, iors, r, 1/prob))
	}
	return color
}

// ShadeNM implements raycaster.SpectralShader
func (sh *Shader) ShadeNM(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster raycaster.Caster, state raycaster.RayState, nm float64, iors *refraction.Stack) float64 {
	obj, ok := sh.scene.Object(hit.Object)
	if !ok {
		return 0
	}

	var value float64
	if e, ok := obj.Material.(material.Emitter); ok && state.ConsiderEmission {
		value = material.EmissionNM(e, hit, nm)
	}

	set := obj.Material.ScatterNM(hit, ctx.Sampler(), nm, iors)
	if state.Depth <= 1 {
		for _, r := range set.Rays() {
			value += sh.followNM(ctx, pixel, hit, caster, state, nm, iors, r, 1)
		}
		return value
	}

	if r, prob, ok := set.SelectAny(ctx.Sampler().Get1D(), true); ok {
		value += sh.followNM(ctx, pixel, hit, caster, state, nm, iors, r, 1/prob)
	}
	return value
}

func (sh *Shader) follow(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster raycaster.Caster, state raycaster.RayState, iors *refraction.Stack, r scatter.ScatteredRay, scale float64) core.Vec3 {
	weight := r.Weight.Multiply(scale)
	if weight.IsZero() {
		return core.Vec3{}
	}

	incoming, _, _ := caster.Cast(ctx, pixel, r.Ray, state.Next(r.Kind, weight.MaxComponent()), core.Vec3{}, withMedium(iors, r.Medium))
	if r.Kind == scatter.Diffuse {
		incoming = incoming.Add(sh.direct(ctx, pixel, hit, caster, state, r.Ray.Direction).Multiply(1 / math.Pi))
	}
	return weight.MultiplyVec(incoming)
}

func (sh *Shader) followNM(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster raycaster.Caster, state raycaster.RayState, nm float64, iors *refraction.Stack, r scatter.ScatteredRay, scale float64) float64 {
	weight := r.WeightNM * scale
	if weight <= 0 {
		return 0
	}

	incoming, _, _ := caster.CastNM(ctx, pixel, r.Ray, state.Next(r.Kind, weight), 0, nm, withMedium(iors, r.Medium))
	if r.Kind == scatter.Diffuse {
		incoming += core.SpectralValue(sh.direct(ctx, pixel, hit, caster, state, r.Ray.Direction), nm) / math.Pi
	}
	return weight * incoming
}

// direct returns the irradiance from point lights on the side of the surface
// that outgoing points to. On primary hits the facing side is memoized per
// object and pixel for the duration of the pass.
func (sh *Shader) direct(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster raycaster.Caster, state raycaster.RayState, outgoing core.Vec3) core.Vec3 {
	if sh.lights.Len() == 0 {
		return core.Vec3{}
	}

	normal := hit.Basis.W
	if outgoing.Dot(normal) < 0 {
		normal = normal.Negate()
	}
	compute := func() core.Vec3 {
		return sh.irradiance(ctx, hit.Point, normal, caster)
	}

	facing := hit.FrontFace() == (normal.Dot(hit.Basis.W) > 0)
	if state.Depth == 1 && facing && ctx.Pass() == shading.PassNormal {
		return ctx.Cache(sh.irradianceOp).GetOrCompute(hit.Object, pixel, compute)
	}
	return compute()
}

func (sh *Shader) irradiance(ctx *shading.Context, point, normal core.Vec3, caster raycaster.Caster) core.Vec3 {
	unoccluded := func(l PointLight) core.Vec3 {
		e, dir, dist := l.Irradiance(point, normal)
		if e.IsZero() || caster.CastShadowRay(core.NewRay(point, dir), dist) {
			return core.Vec3{}
		}
		return e
	}

	if sh.lights.Len() > sh.MaxDirectLights {
		l, prob, _ := sh.lights.SampleLight(ctx.Sampler().Get1D())
		if prob <= 0 {
			return core.Vec3{}
		}
		return unoccluded(l).Multiply(1 / prob)
	}

	var total core.Vec3
	for _, l := range sh.lights.lights {
		total = total.Add(unoccluded(l))
	}
	return total
}

// withMedium returns the stack the path continues in after applying f.
// The caller's stack is never modified.
func withMedium(iors *refraction.Stack, f refraction.Fragment) *refraction.Stack {
	if f.Empty() {
		return iors
	}
	var next *refraction.Stack
	if iors == nil {
		next = refraction.NewStack(refraction.DefaultAmbientIOR)
	} else {
		next = iors.Clone()
	}
	next.Splice(f)
	return next
}
