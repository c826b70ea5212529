package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Mix blends two materials by scattering both and scaling their rays by the
// mixing ratio. Rays that do not fit in the set are dropped, second material first.
type Mix struct {
	First  SPF
	Second SPF
	Ratio  float64 // 0.0 = all First, 1.0 = all Second
}

// NewMix creates a new mix material
func NewMix(first, second SPF, ratio float64) *Mix {
	return &Mix{First: first, Second: second, Ratio: max(0, min(ratio, 1))}
}

// Scatter implements SPF
func (m *Mix) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	var out scatter.Set
	m.add(&out, m.First.Scatter(hit, sampler, iors), 1-m.Ratio)
	m.add(&out, m.Second.Scatter(hit, sampler, iors), m.Ratio)
	return out
}

// ScatterNM implements SPF
func (m *Mix) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	var out scatter.Set
	m.add(&out, m.First.ScatterNM(hit, sampler, nm, iors), 1-m.Ratio)
	m.add(&out, m.Second.ScatterNM(hit, sampler, nm, iors), m.Ratio)
	return out
}

func (m *Mix) add(out *scatter.Set, set scatter.Set, factor float64) {
	if factor <= 0 {
		return
	}
	for _, r := range set.Rays() {
		r.Weight = r.Weight.Multiply(factor)
		r.WeightNM *= factor
		if !out.Add(r) {
			return
		}
	}
}
