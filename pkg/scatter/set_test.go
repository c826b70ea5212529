package scatter

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func ray(kind RayKind, w float64) ScatteredRay {
	return ScatteredRay{
		Ray:      core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)),
		Weight:   core.NewVec3(w, w/2, 0),
		WeightNM: w,
		Kind:     kind,
	}
}

func TestSetCapacity(t *testing.T) {
	var s Set
	for i := 0; i < Capacity; i++ {
		if !s.Add(ray(Diffuse, 1)) {
			t.Fatalf("Expected add %d to succeed", i)
		}
	}
	if !s.Full() {
		t.Error("Expected set to be full")
	}
	if s.Add(ray(Diffuse, 1)) {
		t.Error("Expected add beyond capacity to be rejected")
	}
	if s.Len() != Capacity {
		t.Errorf("Expected %d rays, got %d", Capacity, s.Len())
	}

	s.Reset()
	if s.Len() != 0 || len(s.Rays()) != 0 {
		t.Errorf("Expected empty set after reset, got %d", s.Len())
	}
}

func TestSelectEmptyAndZeroWeight(t *testing.T) {
	var s Set
	if _, _, ok := s.SelectAny(0.5, false); ok {
		t.Error("Expected no selection from an empty set")
	}

	s.Add(ray(Diffuse, 0))
	s.Add(ray(Reflection, 0))
	s.Add(ray(Refraction, 0))
	if _, _, ok := s.SelectAny(0.5, false); ok {
		t.Error("Expected no selection when total weight is zero")
	}
	if _, _, ok := s.SelectAny(0.5, true); ok {
		t.Error("Expected no spectral selection when total weight is zero")
	}
}

func TestSelectSubsetPolicies(t *testing.T) {
	var s Set
	s.Add(ray(Diffuse, 1))
	s.Add(ray(Reflection, 2))
	s.Add(ray(Diffuse, 3))
	s.Add(ray(Refraction, 4))

	for i := 0; i < 100; i++ {
		u := float64(i) / 100

		if r, _, ok := s.SelectDiffuseOnly(u, false); !ok || r.Kind != Diffuse {
			t.Fatalf("u=%f: expected a diffuse ray, got %v (ok=%v)", u, r.Kind, ok)
		}
		if r, _, ok := s.SelectNonDiffuseOnly(u, false); !ok || r.Kind == Diffuse {
			t.Fatalf("u=%f: expected a non-diffuse ray, got %v (ok=%v)", u, r.Kind, ok)
		}
		if _, _, ok := s.SelectAny(u, true); !ok {
			t.Fatalf("u=%f: expected a selection", u)
		}
	}

	var onlyDiffuse Set
	onlyDiffuse.Add(ray(Diffuse, 1))
	if _, _, ok := onlyDiffuse.SelectNonDiffuseOnly(0.3, false); ok {
		t.Error("Expected no selection from an empty eligible subset")
	}
}

func TestSelectCDF(t *testing.T) {
	var s Set
	s.Add(ray(Diffuse, 1))
	s.Add(ray(Reflection, 1))
	s.Add(ray(Refraction, 2))

	tests := []struct {
		u        float64
		expected RayKind
		prob     float64
	}{
		{0.0, Diffuse, 0.25},
		{0.24, Diffuse, 0.25},
		{0.25, Reflection, 0.25},
		{0.49, Reflection, 0.25},
		{0.5, Refraction, 0.5},
		{0.999999, Refraction, 0.5},
	}

	for _, tt := range tests {
		r, prob, ok := s.SelectAny(tt.u, false)
		if !ok || r.Kind != tt.expected {
			t.Errorf("u=%f: expected %v, got %v", tt.u, tt.expected, r.Kind)
		}
		if math.Abs(prob-tt.prob) > 1e-12 {
			t.Errorf("u=%f: expected probability %f, got %f", tt.u, tt.prob, prob)
		}
	}
}

// The one- and two-element fast paths must agree with the general path.
func TestFastPathsMatchGeneralPath(t *testing.T) {
	general := func(weights []float64, u float64) int {
		total := 0.0
		for _, w := range weights {
			total += w
		}
		cumulative := 0.0
		last := -1
		for i, w := range weights {
			if w <= 0 {
				continue
			}
			last = i
			cumulative += w / total
			if cumulative > u {
				return i
			}
		}
		return last
	}

	cases := [][]float64{{0.7}, {0.2, 0.8}, {1, 0}, {0, 1}, {0.5, 0.5}}
	for _, weights := range cases {
		var s Set
		for i, w := range weights {
			r := ray(Diffuse, w)
			r.Ray.Origin = core.NewVec3(float64(i), 0, 0)
			s.Add(r)
		}
		for i := 0; i < 50; i++ {
			u := float64(i) / 50
			r, _, ok := s.SelectAny(u, true)
			if !ok {
				t.Fatalf("weights=%v u=%f: expected a selection", weights, u)
			}
			if want := general(weights, u); int(r.Ray.Origin.X) != want {
				t.Errorf("weights=%v u=%f: fast path chose %d, general path %d", weights, u, int(r.Ray.Origin.X), want)
			}
		}
	}
}

func TestSelectDistribution(t *testing.T) {
	var s Set
	s.Add(ray(Diffuse, 1))
	s.Add(ray(Reflection, 3))
	s.Add(ray(Refraction, 6))

	sampler := core.NewSeededSampler(3)
	counts := map[RayKind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		r, _, _ := s.SelectAny(sampler.Get1D(), false)
		counts[r.Kind]++
	}

	expected := map[RayKind]float64{Diffuse: 0.1, Reflection: 0.3, Refraction: 0.6}
	for kind, p := range expected {
		got := float64(counts[kind]) / n
		if math.Abs(got-p) > 0.02 {
			t.Errorf("Expected %v frequency %.2f, got %.3f", kind, p, got)
		}
	}
}

func TestRayKindString(t *testing.T) {
	if Translucent.String() != "translucent" || RayKind(42).String() != "unknown" {
		t.Error("Unexpected kind names")
	}
}
