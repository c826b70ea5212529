package scene

import (
	"fmt"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
)

// PointLight is an infinitesimal light with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3 // Radiant intensity per channel
}

// Irradiance returns the unoccluded light arriving at point on a surface with
// the given normal, together with the direction and distance to the light
func (l PointLight) Irradiance(point, normal core.Vec3) (core.Vec3, core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq == 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	dist := toLight.Length()
	dir := toLight.Multiply(1 / dist)
	cos := dir.Dot(normal)
	if cos <= 0 {
		return core.Vec3{}, dir, dist
	}
	return l.Intensity.Multiply(cos / distSq), dir, dist
}

// LightSampler picks lights with fixed probabilities
type LightSampler struct {
	lights  []PointLight
	weights []float64
}

// NewLightSampler creates a sampler choosing each light proportionally to
// weights. Weights are normalized; if they sum to zero every light is equally likely.
func NewLightSampler(lights []PointLight, weights []float64) *LightSampler {
	if len(lights) != len(weights) {
		panic(fmt.Sprintf("lights length (%d) must match weights length (%d)", len(lights), len(weights)))
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("weights must be non-negative")
		}
		total += w
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		if total == 0 {
			normalized[i] = 1.0 / float64(len(weights))
		} else {
			normalized[i] = w / total
		}
	}
	return &LightSampler{lights: lights, weights: normalized}
}

// NewPowerLightSampler weights each light by the luminance of its intensity
func NewPowerLightSampler(lights []PointLight) *LightSampler {
	weights := make([]float64, len(lights))
	for i, l := range lights {
		weights[i] = l.Intensity.Luminance()
	}
	return NewLightSampler(lights, weights)
}

// SampleLight selects a light for a uniform u in [0, 1). It returns the
// light, its selection probability and its index, or index -1 when empty.
func (ls *LightSampler) SampleLight(u float64) (PointLight, float64, int) {
	if len(ls.lights) == 0 {
		return PointLight{}, 0, -1
	}

	cumulative := 0.0
	for i, w := range ls.weights {
		cumulative += w
		if u < cumulative {
			return ls.lights[i], w, i
		}
	}

	last := len(ls.lights) - 1
	return ls.lights[last], ls.weights[last], last
}

// Probability returns the chance of selecting light index
func (ls *LightSampler) Probability(index int) float64 {
	if index < 0 || index >= len(ls.weights) {
		return 0
	}
	return ls.weights[index]
}

// Len returns the number of lights
func (ls *LightSampler) Len() int {
	return len(ls.lights)
}

// String returns a string representation for debugging
func (ls *LightSampler) String() string {
	if len(ls.lights) == 0 {
		return "LightSampler{no lights}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "LightSampler{%d lights:", len(ls.lights))
	for i, l := range ls.lights {
		fmt.Fprintf(&b, " [%d] %v p=%.3f", i, l.Position, ls.weights[i])
	}
	b.WriteString("}")
	return b.String()
}
