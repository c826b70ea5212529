package core

import (
	"math"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normal := NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("Sample %d below hemisphere: %v", i, dir)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %f", i, dir.Length())
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Length() > 1+1e-9 || p.Z != 0 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestSeededSamplerDeterministic(t *testing.T) {
	a := NewSeededSampler(123)
	b := NewSeededSampler(123)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	// Straight through at normal incidence
	dir, ok := Refract(NewVec3(0, -1, 0), normal, 1/1.5)
	if !ok || dir.Subtract(NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected undeviated refraction, got %v (ok=%v)", dir, ok)
	}

	// Grazing from dense to thin medium must totally internally reflect
	grazing := NewVec3(1, -0.1, 0).Normalize()
	if _, ok := Refract(grazing, normal, 1.5); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence for glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if r := Reflectance(1.0, 1.5); math.Abs(r-0.04) > 1e-9 {
		t.Errorf("Expected 0.04, got %f", r)
	}
	if r := Reflectance(0.0, 1.5); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Expected full reflectance at grazing angle, got %f", r)
	}
}
