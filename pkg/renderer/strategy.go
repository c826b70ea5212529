package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sample is one filtered evaluation of the image plane
type Sample struct {
	Color  core.Vec3
	Alpha  float64 // 1 when the camera ray hit the scene, 0 otherwise
	Weight float64 // Filter weight at the sample offset
}

// PixelSampler evaluates points of one pixel's unit square
type PixelSampler interface {
	// Sample warps u through the pixel filter and traces the camera ray
	// through the resulting point
	Sample(u core.Vec2) Sample
	// Sampler is the pixel's random source
	Sampler() core.Sampler
}

// PixelResult is the final value of a pixel
type PixelResult struct {
	Color   core.Vec3
	Alpha   float64
	Samples int
}

// Strategy decides where and how often a pixel is sampled
type Strategy interface {
	RenderPixel(ps PixelSampler) PixelResult
	Name() string
}

// accumulator sums weighted samples
type accumulator struct {
	color   core.Vec3
	alpha   float64
	weight  float64
	samples int
}

func (a *accumulator) add(s Sample, scale float64) {
	w := s.Weight * scale
	a.color = a.color.Add(s.Color.Multiply(w))
	a.alpha += s.Alpha * w
	a.weight += w
}

func (a *accumulator) result() PixelResult {
	if a.weight <= 0 {
		return PixelResult{Samples: a.samples}
	}
	inv := 1 / a.weight
	return PixelResult{Color: a.color.Multiply(inv), Alpha: a.alpha * inv, Samples: a.samples}
}

// FixedKernel takes a fixed number of samples placed by a kernel
type FixedKernel struct {
	Kernel  Kernel
	Samples int
}

func (f FixedKernel) Name() string { return "fixed" }

// RenderPixel implements Strategy
func (f FixedKernel) RenderPixel(ps PixelSampler) PixelResult {
	var acc accumulator
	for _, u := range f.Kernel.Generate(max(1, f.Samples), ps.Sampler()) {
		acc.add(ps.Sample(u), 1)
		acc.samples++
	}
	return acc.result()
}

// Adaptive starts with MinSamples and doubles the batch size each step
// while the estimated variance of the pixel's luminance stays above Threshold
type Adaptive struct {
	Kernel     Kernel
	MinSamples int
	MaxSteps   int     // Refinement steps after the first batch
	Threshold  float64 // Variance of the mean luminance that counts as converged
}

func (a Adaptive) Name() string { return "adaptive" }

// RenderPixel implements Strategy
func (a Adaptive) RenderPixel(ps PixelSampler) PixelResult {
	var acc accumulator
	var sum, sumSq float64

	batch := max(1, a.MinSamples)
	for step := 0; step <= a.MaxSteps; step++ {
		for _, u := range a.Kernel.Generate(batch, ps.Sampler()) {
			s := ps.Sample(u)
			acc.add(s, 1)
			acc.samples++

			l := s.Color.Luminance()
			sum += l
			sumSq += l * l
		}

		if meanVariance(sum, sumSq, acc.samples) <= a.Threshold {
			break
		}
		batch *= 2
	}
	return acc.result()
}

// meanVariance estimates the variance of the mean of n samples
func meanVariance(sum, sumSq float64, n int) float64 {
	if n < 2 {
		return math.Inf(1)
	}
	mean := sum / float64(n)
	variance := math.Max(0, (sumSq-float64(n)*mean*mean)/float64(n-1))
	return variance / float64(n)
}

// Contrast samples the pixel center and the four quadrants, and subdivides
// any quadrant whose sample differs from its parent's by more than Threshold
// in some channel, down to MaxLevel
type Contrast struct {
	Threshold core.Vec3
	MaxLevel  int // 1 = quadrants only, 2 = also sub-quadrants
}

func (c Contrast) Name() string { return "contrast" }

type region struct {
	min  core.Vec2
	size float64
}

func (r region) quadrants() [4]region {
	h := r.size / 2
	return [4]region{
		{min: r.min, size: h},
		{min: core.NewVec2(r.min.X+h, r.min.Y), size: h},
		{min: core.NewVec2(r.min.X, r.min.Y+h), size: h},
		{min: core.NewVec2(r.min.X+h, r.min.Y+h), size: h},
	}
}

// RenderPixel implements Strategy. Only leaf regions contribute, each weighted
// by its area.
func (c Contrast) RenderPixel(ps PixelSampler) PixelResult {
	var acc accumulator

	center := ps.Sample(core.NewVec2(0.5, 0.5))
	acc.samples++

	whole := region{size: 1}
	for _, q := range whole.quadrants() {
		c.refine(ps, &acc, q, center, 1)
	}
	return acc.result()
}

func (c Contrast) refine(ps PixelSampler, acc *accumulator, r region, parent Sample, level int) {
	jitter := ps.Sampler().Get2D()
	s := ps.Sample(core.NewVec2(r.min.X+jitter.X*r.size, r.min.Y+jitter.Y*r.size))
	acc.samples++

	if level >= max(1, c.MaxLevel) || !c.differs(s.Color, parent.Color) {
		acc.add(s, r.size*r.size)
		return
	}
	for _, q := range r.quadrants() {
		c.refine(ps, acc, q, s, level+1)
	}
}

func (c Contrast) differs(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) > c.Threshold.X ||
		math.Abs(a.Y-b.Y) > c.Threshold.Y ||
		math.Abs(a.Z-b.Z) > c.Threshold.Z
}

// Strategies lists the available strategy names
func Strategies() []string {
	return []string{"fixed", "adaptive", "contrast"}
}
