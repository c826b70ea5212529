package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// Limits bounds how many times a path inside a Layered material may cross
// between layers along a ray of each kind. Rays of unknown kind never cross.
type Limits struct {
	Reflection  int
	Refraction  int
	Diffuse     int
	Translucent int
}

func (l Limits) forKind(kind scatter.RayKind) int {
	switch kind {
	case scatter.Reflection:
		return l.Reflection
	case scatter.Refraction:
		return l.Refraction
	case scatter.Diffuse:
		return l.Diffuse
	case scatter.Translucent:
		return l.Translucent
	default:
		return 0
	}
}

// DefaultLimits returns the per-kind crossing limits used by NewLayered
func DefaultLimits() Limits {
	return Limits{Reflection: 4, Refraction: 4, Diffuse: 2, Translucent: 2}
}

// Layered represents a material with two stacked layers, such as a coating
// over a substrate. Top faces the outside of the surface (the side the normal
// points to); Bottom lies beneath it.
//
// Light entering either side performs a bounded random walk between the two
// layers. Rays leaving the top layer upwards or the bottom layer downwards
// leave the material; the rest cross into the other layer while limits allow
// and are absorbed otherwise.
type Layered struct {
	Top    SPF
	Bottom SPF

	Thickness    float64 // Distance a crossing ray travels between layers
	MaxRecursion int     // Total layer crossings allowed per scatter call
	Limits       Limits  // Crossings allowed per ray kind along one path
}

// NewLayered creates a layered material with default walk bounds
func NewLayered(top, bottom SPF) *Layered {
	return &Layered{
		Top:          top,
		Bottom:       bottom,
		Thickness:    1e-4,
		MaxRecursion: 8,
		Limits:       DefaultLimits(),
	}
}

// WalkStats reports how much work one scatter call did
type WalkStats struct {
	Crossings   int // Layer crossings taken, never more than MaxRecursion
	Evaluations int // Layer scatter calls
	Absorbed    int // Rays dropped because a limit was reached
}

// Scatter implements SPF
func (l *Layered) Scatter(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) scatter.Set {
	set, _ := l.ScatterWithStats(hit, sampler, iors)
	return set
}

// ScatterNM implements SPF
func (l *Layered) ScatterNM(hit *core.SurfaceHit, sampler core.Sampler, nm float64, iors *refraction.Stack) scatter.Set {
	w := l.newWalk(hit, sampler)
	w.spectral, w.nm = true, nm
	return w.run(hit, iors)
}

// ScatterWithStats is Scatter that also returns walk statistics
func (l *Layered) ScatterWithStats(hit *core.SurfaceHit, sampler core.Sampler, iors *refraction.Stack) (scatter.Set, WalkStats) {
	w := l.newWalk(hit, sampler)
	set := w.run(hit, iors)
	return set, w.stats
}

type layer int

const (
	topLayer layer = iota
	bottomLayer
)

// pathCounts holds per-kind crossings along one path through the walk
type pathCounts [5]int

type walk struct {
	l        *Layered
	sampler  core.Sampler
	up       core.Vec3
	spectral bool
	nm       float64

	result scatter.Set
	stats  WalkStats
}

func (l *Layered) newWalk(hit *core.SurfaceHit, sampler core.Sampler) *walk {
	return &walk{l: l, sampler: sampler, up: hit.Basis.W}
}

func (w *walk) run(hit *core.SurfaceHit, iors *refraction.Stack) scatter.Set {
	// Rays travelling against the normal arrive at the top layer first
	start := topLayer
	if hit.Ray.Direction.Dot(w.up) > 0 {
		start = bottomLayer
	}

	w.process(start, *hit, iors, core.NewVec3(1, 1, 1), 1, pathCounts{}, refraction.Fragment{})

	// Crossing offsets are bookkeeping only; every ray leaves from the hit point
	var out scatter.Set
	for _, r := range w.result.Rays() {
		r.Ray.Origin = hit.Point
		out.Add(r)
	}
	return out
}

func (w *walk) process(side layer, hit core.SurfaceHit, iors *refraction.Stack, importance core.Vec3, importanceNM float64, counts pathCounts, carry refraction.Fragment) {
	spf := w.l.Top
	if side == bottomLayer {
		spf = w.l.Bottom
	}

	var set scatter.Set
	if w.spectral {
		set = spf.ScatterNM(&hit, w.sampler, w.nm, iors)
	} else {
		set = spf.Scatter(&hit, w.sampler, iors)
	}
	w.stats.Evaluations++

	for _, r := range set.Rays() {
		r.Weight = r.Weight.MultiplyVec(importance)
		r.WeightNM *= importanceNM

		upward := r.Ray.Direction.Dot(w.up) > 0
		if (side == topLayer && upward) || (side == bottomLayer && !upward) {
			r.Medium = carry.Concat(r.Medium)
			w.result.Add(r)
			continue
		}

		if !w.canCross(r.Kind, counts) {
			w.stats.Absorbed++
			continue
		}
		w.stats.Crossings++

		next := topLayer
		if side == topLayer {
			next = bottomLayer
		}

		nextHit := hit
		nextHit.Ray = r.Ray.Advance(w.l.Thickness)
		nextHit.Point = nextHit.Ray.Origin

		nextIORs := iors
		if !r.Medium.Empty() {
			if iors != nil {
				nextIORs = iors.Clone()
			} else {
				nextIORs = refraction.NewStack(refraction.DefaultAmbientIOR)
			}
			nextIORs.Splice(r.Medium)
			nextIORs.SetCurrentOwner(hit.Object)
		}

		nextCounts := counts
		nextCounts[r.Kind]++

		w.process(next, nextHit, nextIORs, r.Weight, r.WeightNM, nextCounts, carry.Concat(r.Medium))
	}
}

func (w *walk) canCross(kind scatter.RayKind, counts pathCounts) bool {
	if w.stats.Crossings >= w.l.MaxRecursion {
		return false
	}
	return counts[kind] < w.l.Limits.forKind(kind)
}
