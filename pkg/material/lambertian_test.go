package material

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scatter"
)

// newTestHit creates a hit at the origin on a surface facing +Y
func newTestHit(direction core.Vec3, object core.ObjectID) *core.SurfaceHit {
	normal := core.NewVec3(0, 1, 0)
	return &core.SurfaceHit{
		Ray:             core.NewRay(direction.Negate(), direction),
		Hit:             true,
		TEnter:          1,
		Normal:          normal,
		GeometricNormal: normal,
		Basis:           core.NewONBFromW(normal),
		Object:          object,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.4, 0.2)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name string
		dir  core.Vec3
	}{
		{"From outside", core.NewVec3(0, -1, 0)},
		{"From inside", core.NewVec3(0, 1, 0)},
		{"Oblique", core.NewVec3(1, -1, 0).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				hit := newTestHit(tt.dir, 1)
				set := lambertian.Scatter(hit, sampler, nil)
				if set.Len() != 1 {
					t.Fatalf("Expected one diffuse ray, got %d", set.Len())
				}
				r := set.At(0)
				if r.Kind != scatter.Diffuse {
					t.Errorf("Expected diffuse kind, got %v", r.Kind)
				}
				if r.Weight != albedo {
					t.Errorf("Expected weight %v, got %v", albedo, r.Weight)
				}
				normal := hit.Basis.W
				if r.Ray.Direction.Dot(normal)*tt.dir.Dot(normal) > 0 {
					t.Errorf("Diffuse ray %v crossed the surface for incoming %v", r.Ray.Direction, tt.dir)
				}
			}
		})
	}
}

func TestLambertian_ScatterNM(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 0.5, 0))
	hit := newTestHit(core.NewVec3(0, -1, 0), 1)

	tests := []struct {
		nm       float64
		expected float64
	}{
		{core.BlueWavelength, 0},
		{core.GreenWavelength, 0.5},
		{core.RedWavelength, 1},
	}

	for _, tt := range tests {
		set := lambertian.ScatterNM(hit, core.NewSeededSampler(1), tt.nm, nil)
		if set.Len() != 1 || math.Abs(set.At(0).WeightNM-tt.expected) > 1e-9 {
			t.Errorf("At %.0fnm expected weight %.2f, got %+v", tt.nm, tt.expected, set.Rays())
		}
	}
}

func TestPatternedLambertian(t *testing.T) {
	checker := NewChecker(core.NewVec3(1, 1, 1), core.NewVec3(0.1, 0.1, 0.1), 1)
	lambertian := NewPatternedLambertian(checker)

	hit := newTestHit(core.NewVec3(0, -1, 0), 1)
	hit.Point = core.NewVec3(1.5, 0.5, 0.5)

	set := lambertian.Scatter(hit, core.NewSeededSampler(3), nil)
	if set.At(0).Weight != checker.Odd {
		t.Errorf("Expected odd check color, got %v", set.At(0).Weight)
	}
}

func TestChecker(t *testing.T) {
	c := NewChecker(core.NewVec3(1, 1, 1), core.Vec3{}, 1)

	if c.Evaluate(core.Vec2{}, core.NewVec3(0.5, 0.5, 0.5)) != c.Even {
		t.Error("Expected even check at origin cell")
	}
	if c.Evaluate(core.Vec2{}, core.NewVec3(1.5, 0.5, 0.5)) != c.Odd {
		t.Error("Expected odd check in neighbouring cell")
	}
	if c.Evaluate(core.Vec2{}, core.NewVec3(-0.5, 0.5, 0.5)) != c.Odd {
		t.Error("Expected odd check across the origin")
	}
}
