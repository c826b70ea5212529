package raycaster

import (
	"sync"
	"sync/atomic"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/log"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/shading"
)

var logger = log.New("raycaster")

// Config holds the limits that terminate recursion
type Config struct {
	MaxDepth      int     // Deepest RayState.Depth that is still traced
	MinImportance float64 // Rays with lower importance are not traced
	AmbientIOR    float64 // Index of the medium camera rays start in
}

// DefaultConfig returns the limits used when none are configured
func DefaultConfig() Config {
	return Config{
		MaxDepth:      8,
		MinImportance: 0.01,
		AmbientIOR:    refraction.DefaultAmbientIOR,
	}
}

// Stats counts the work done by a caster
type Stats struct {
	Casts      int64 // Calls to Cast and CastNM
	Hits       int64 // Casts that hit the scene
	Terminated int64 // Casts refused by the depth or importance limit
	ShadowRays int64 // Calls to CastShadowRay
}

// RayCaster traces rays through a Scene and hands hits to a Shader. It is
// safe for concurrent use as long as the scene, shader and radiance map are.
type RayCaster struct {
	scene    Scene
	shader   Shader
	radiance RadianceMap
	config   Config

	casts      atomic.Int64
	hits       atomic.Int64
	terminated atomic.Int64
	shadowRays atomic.Int64

	spectralOnce sync.Once
}

// New creates a caster. radiance may be nil, in which case misses return
// the caller's fallback.
func New(scene Scene, shader Shader, radiance RadianceMap, config Config) *RayCaster {
	if config.AmbientIOR == 0 {
		config.AmbientIOR = refraction.DefaultAmbientIOR
	}
	return &RayCaster{
		scene:    scene,
		shader:   shader,
		radiance: radiance,
		config:   config,
	}
}

// Config returns the caster's limits
func (rc *RayCaster) Config() Config {
	return rc.config
}

// Cast traces ray and returns the color arriving along it, the hit distance
// and whether anything was hit. When the state is past the depth or
// importance limit the scene is not queried and fallback is returned. A nil
// iors starts the path in the ambient medium.
func (rc *RayCaster) Cast(ctx *shading.Context, pixel core.Pixel, ray core.Ray, state RayState, fallback core.Vec3, iors *refraction.Stack) (core.Vec3, float64, bool) {
	rc.casts.Add(1)
	if rc.exhausted(state) {
		return fallback, 0, false
	}

	hit, ok := rc.scene.IntersectScene(ray, false)
	if !ok {
		if rc.radiance != nil {
			return rc.radiance.SampleRadianceMap(ray, pixel), 0, false
		}
		return fallback, 0, false
	}
	rc.hits.Add(1)

	iors = rc.enter(iors, hit.Object)
	return rc.shader.Shade(ctx, pixel, &hit, rc, state, iors), hit.Distance(), true
}

// CastNM is Cast for a single wavelength. Shaders without spectral support
// contribute zero.
func (rc *RayCaster) CastNM(ctx *shading.Context, pixel core.Pixel, ray core.Ray, state RayState, fallback, nm float64, iors *refraction.Stack) (float64, float64, bool) {
	rc.casts.Add(1)
	if rc.exhausted(state) {
		return fallback, 0, false
	}

	hit, ok := rc.scene.IntersectScene(ray, false)
	if !ok {
		switch m := rc.radiance.(type) {
		case SpectralRadianceMap:
			return m.SampleRadianceMapNM(ray, pixel, nm), 0, false
		case RadianceMap:
			return core.SpectralValue(m.SampleRadianceMap(ray, pixel), nm), 0, false
		}
		return fallback, 0, false
	}
	rc.hits.Add(1)

	shader, ok := rc.shader.(SpectralShader)
	if !ok {
		rc.spectralOnce.Do(func() {
			logger.Debugf("shader %T has no spectral path; wavelength casts contribute zero", rc.shader)
		})
		return 0, hit.Distance(), true
	}

	iors = rc.enter(iors, hit.Object)
	return shader.ShadeNM(ctx, pixel, &hit, rc, state, nm, iors), hit.Distance(), true
}

// CastShadowRay reports whether ray is blocked before maxDistance
func (rc *RayCaster) CastShadowRay(ray core.Ray, maxDistance float64) bool {
	rc.shadowRays.Add(1)
	return rc.scene.CastShadowRay(ray, maxDistance)
}

// Stats returns a snapshot of the caster's counters
func (rc *RayCaster) Stats() Stats {
	return Stats{
		Casts:      rc.casts.Load(),
		Hits:       rc.hits.Load(),
		Terminated: rc.terminated.Load(),
		ShadowRays: rc.shadowRays.Load(),
	}
}

// ResetStats zeroes the counters
func (rc *RayCaster) ResetStats() {
	rc.casts.Store(0)
	rc.hits.Store(0)
	rc.terminated.Store(0)
	rc.shadowRays.Store(0)
}

func (rc *RayCaster) exhausted(state RayState) bool {
	if state.Depth > rc.config.MaxDepth || state.Importance < rc.config.MinImportance {
		rc.terminated.Add(1)
		return true
	}
	return false
}

// enter prepares the stack for shading a hit on object
func (rc *RayCaster) enter(iors *refraction.Stack, object core.ObjectID) *refraction.Stack {
	if iors == nil {
		iors = refraction.NewStack(rc.config.AmbientIOR)
	}
	iors.SetCurrentOwner(object)
	return iors
}
