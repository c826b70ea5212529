package raycaster

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/shading"
)

// Scene answers intersection queries. It is read-only while rendering.
type Scene interface {
	// IntersectScene returns the closest hit along ray. With wantExit set the
	// hit also reports where the ray leaves the object (TExit).
	IntersectScene(ray core.Ray, wantExit bool) (core.SurfaceHit, bool)

	// CastShadowRay reports whether anything blocks ray before maxDistance
	CastShadowRay(ray core.Ray, maxDistance float64) bool
}

// Caster is the part of RayCaster visible to shaders
type Caster interface {
	Cast(ctx *shading.Context, pixel core.Pixel, ray core.Ray, state RayState, fallback core.Vec3, iors *refraction.Stack) (core.Vec3, float64, bool)
	CastNM(ctx *shading.Context, pixel core.Pixel, ray core.Ray, state RayState, fallback, nm float64, iors *refraction.Stack) (float64, float64, bool)
	CastShadowRay(ray core.Ray, maxDistance float64) bool
}

// Shader computes the color leaving a hit point towards the ray origin. It
// may recurse into caster for secondary rays. iors has its current owner set
// to hit.Object.
type Shader interface {
	Shade(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster Caster, state RayState, iors *refraction.Stack) core.Vec3
}

// SpectralShader is implemented by shaders that can evaluate a single wavelength
type SpectralShader interface {
	ShadeNM(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster Caster, state RayState, nm float64, iors *refraction.Stack) float64
}

// RadianceMap supplies the light arriving along rays that miss the scene
type RadianceMap interface {
	SampleRadianceMap(ray core.Ray, pixel core.Pixel) core.Vec3
}

// SpectralRadianceMap is implemented by radiance maps with a per-wavelength lookup
type SpectralRadianceMap interface {
	SampleRadianceMapNM(ray core.Ray, pixel core.Pixel, nm float64) float64
}
