// Package scatter holds the fixed-capacity container of scattered rays that
// scattering functions fill and shaders choose from.
package scatter

// Capacity is the maximum number of rays a Set holds
const Capacity = 6

// weightEpsilon is the total weight under which a subset counts as absorbed
const weightEpsilon = 1e-12

// Set is an ordered, fixed-capacity collection of scattered rays. The zero
// value is an empty set ready to use.
type Set struct {
	rays [Capacity]ScatteredRay
	n    int
}

// Add appends a ray. It reports false, dropping the ray, once the set is full.
func (s *Set) Add(r ScatteredRay) bool {
	if s.n >= Capacity {
		return false
	}
	s.rays[s.n] = r
	s.n++
	return true
}

// Len returns the number of rays held
func (s *Set) Len() int {
	return s.n
}

// Full reports whether another Add would be rejected
func (s *Set) Full() bool {
	return s.n >= Capacity
}

// At returns the i-th ray
func (s *Set) At(i int) ScatteredRay {
	return s.rays[i]
}

// Rays returns the held rays as a slice backed by the set
func (s *Set) Rays() []ScatteredRay {
	return s.rays[:s.n]
}

// Reset empties the set
func (s *Set) Reset() {
	for i := range s.n {
		s.rays[i] = ScatteredRay{}
	}
	s.n = 0
}

// Selection policies restrict which rays are eligible for random selection
type policy int

const (
	policyAny policy = iota
	policyDiffuse
	policyNonDiffuse
)

func (p policy) eligible(r *ScatteredRay) bool {
	switch p {
	case policyDiffuse:
		return r.Kind == Diffuse
	case policyNonDiffuse:
		return r.Kind != Diffuse
	default:
		return true
	}
}

// SelectAny chooses one ray with probability proportional to its weight.
// u is a uniform random value in [0, 1). spectral selects WeightNM rather than
// the largest Weight channel as the measure. The returned probability is the
// chance that this ray was chosen; ok is false when there is nothing to choose
// from or the total weight is zero (the path is absorbed).
func (s *Set) SelectAny(u float64, spectral bool) (ScatteredRay, float64, bool) {
	return s.selectWith(policyAny, u, spectral)
}

// SelectDiffuseOnly is SelectAny restricted to diffuse rays
func (s *Set) SelectDiffuseOnly(u float64, spectral bool) (ScatteredRay, float64, bool) {
	return s.selectWith(policyDiffuse, u, spectral)
}

// SelectNonDiffuseOnly is SelectAny restricted to non-diffuse rays
func (s *Set) SelectNonDiffuseOnly(u float64, spectral bool) (ScatteredRay, float64, bool) {
	return s.selectWith(policyNonDiffuse, u, spectral)
}

func (s *Set) selectWith(p policy, u float64, spectral bool) (ScatteredRay, float64, bool) {
	var idx [Capacity]int
	var weights [Capacity]float64
	count := 0
	total := 0.0

	for i := range s.n {
		r := &s.rays[i]
		if !p.eligible(r) {
			continue
		}
		w := max(0, r.measure(spectral))
		idx[count] = i
		weights[count] = w
		total += w
		count++
	}

	if count == 0 || total <= weightEpsilon {
		return ScatteredRay{}, 0, false
	}

	switch count {
	case 1:
		return s.rays[idx[0]], 1, true
	case 2:
		p0 := weights[0] / total
		if p0 > u {
			return s.rays[idx[0]], p0, true
		}
		return s.rays[idx[1]], 1 - p0, true
	}

	// General path: first entry whose cumulative share exceeds u
	cumulative := 0.0
	last := -1
	for k := range count {
		if weights[k] <= 0 {
			continue
		}
		last = k
		cumulative += weights[k] / total
		if cumulative > u {
			return s.rays[idx[k]], weights[k] / total, true
		}
	}

	// Rounding left the cumulative sum just short of u
	return s.rays[idx[last]], weights[last] / total, true
}
