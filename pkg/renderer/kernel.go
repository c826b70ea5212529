package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Kernel generates sub-pixel sample positions in the unit square [0,1)²
type Kernel interface {
	Generate(n int, sampler core.Sampler) []core.Vec2
	Name() string
}

// RandomKernel places samples uniformly at random
type RandomKernel struct{}

func (RandomKernel) Name() string { return "random" }

// Generate returns n uniform points
func (RandomKernel) Generate(n int, sampler core.Sampler) []core.Vec2 {
	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = sampler.Get2D()
	}
	return points
}

// JitteredKernel places one random sample in each cell of a grid
type JitteredKernel struct{}

func (JitteredKernel) Name() string { return "jittered" }

// Generate returns n stratified points. When n is not a square the last
// row of the grid is only partly filled.
func (JitteredKernel) Generate(n int, sampler core.Sampler) []core.Vec2 {
	cols, rows := grid(n)
	points := make([]core.Vec2, n)
	for i := range points {
		jitter := sampler.Get2D()
		points[i] = core.NewVec2(
			(float64(i%cols)+jitter.X)/float64(cols),
			(float64(i/cols)+jitter.Y)/float64(rows),
		)
	}
	return points
}

// RegularKernel places samples at grid cell centers. It ignores the sampler.
type RegularKernel struct{}

func (RegularKernel) Name() string { return "regular" }

// Generate returns n grid cell centers
func (RegularKernel) Generate(n int, sampler core.Sampler) []core.Vec2 {
	cols, rows := grid(n)
	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = core.NewVec2(
			(float64(i%cols)+0.5)/float64(cols),
			(float64(i/cols)+0.5)/float64(rows),
		)
	}
	return points
}

// HaltonKernel uses the base 2/3 Halton sequence, shifted by a random offset
// per call so neighbouring pixels do not share the same pattern
type HaltonKernel struct{}

func (HaltonKernel) Name() string { return "halton" }

// Generate returns the first n rotated Halton points
func (HaltonKernel) Generate(n int, sampler core.Sampler) []core.Vec2 {
	shift := sampler.Get2D()
	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = core.NewVec2(
			fract(radicalInverse(i+1, 2)+shift.X),
			fract(radicalInverse(i+1, 3)+shift.Y),
		)
	}
	return points
}

// KernelByName returns the kernel registered under name
func KernelByName(name string) (Kernel, bool) {
	for _, k := range Kernels() {
		if k.Name() == name {
			return k, true
		}
	}
	return nil, false
}

// Kernels lists the available kernels
func Kernels() []Kernel {
	return []Kernel{RandomKernel{}, JitteredKernel{}, RegularKernel{}, HaltonKernel{}}
}

func grid(n int) (cols, rows int) {
	if n <= 0 {
		return 1, 1
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

func radicalInverse(i, base int) float64 {
	inv := 1.0 / float64(base)
	f := inv
	result := 0.0
	for i > 0 {
		result += float64(i%base) * f
		i /= base
		f *= inv
	}
	return result
}

// fract returns the fractional part of a non-negative x, always below 1
func fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
