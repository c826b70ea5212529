package material

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
)

func TestDielectric_EnteringAndLeaving(t *testing.T) {
	glass := NewDielectric(1.5)
	const object core.ObjectID = 7

	iors := refraction.NewStack(1.0)
	iors.SetCurrentOwner(object)

	// Entering from above at normal incidence
	set := glass.Scatter(newTestHit(core.NewVec3(0, -1, 0), object), core.NewSeededSampler(1), iors)
	if set.Len() != 2 {
		t.Fatalf("Expected reflection and refraction rays, got %d", set.Len())
	}

	reflected, refracted := set.At(0), set.At(1)
	if math.Abs(reflected.WeightNM-0.04) > 1e-9 {
		t.Errorf("Expected Fresnel reflectance 0.04, got %f", reflected.WeightNM)
	}
	if math.Abs(reflected.WeightNM+refracted.WeightNM-1) > 1e-9 {
		t.Errorf("Expected reflected and transmitted weights to sum to 1, got %f", reflected.WeightNM+refracted.WeightNM)
	}
	if refracted.Kind != scatter.Refraction || refracted.Medium.Empty() {
		t.Fatalf("Expected refraction ray carrying a medium change, got %+v", refracted)
	}
	if ops := refracted.Medium.Ops(); ops[0].Kind != refraction.OpPush || ops[0].Owner != object {
		t.Errorf("Expected push for object %d, got %+v", object, ops)
	}
	if iors.Depth() != 1 {
		t.Errorf("Scatter must not modify the stack, depth=%d", iors.Depth())
	}

	// Follow the refracted branch: the stack now says we are inside the glass
	inside := iors.Clone()
	inside.Splice(refracted.Medium)
	if inside.Top() != 1.5 {
		t.Fatalf("Expected to be inside glass after splice, top=%f", inside.Top())
	}

	// Leaving through the bottom of a slab
	set = glass.Scatter(newTestHit(core.NewVec3(0, 1, 0), object), core.NewSeededSampler(1), inside)
	if set.Len() != 2 {
		t.Fatalf("Expected two rays when leaving at normal incidence, got %d", set.Len())
	}
	leaving := set.At(1)
	if ops := leaving.Medium.Ops(); ops[0].Kind != refraction.OpPop {
		t.Errorf("Expected pop when leaving, got %+v", ops)
	}
	inside.Splice(leaving.Medium)
	if inside.Depth() != 1 || inside.Top() != 1.0 {
		t.Errorf("Expected back in ambient after leaving, got %+v", inside.Entries())
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	const object core.ObjectID = 3

	iors := refraction.NewStack(1.0)
	iors.SetCurrentOwner(object)
	iors.Push(1.5)

	// Grazing exit from inside the glass
	hit := newTestHit(core.NewVec3(1, 0.1, 0).Normalize(), object)
	set := glass.Scatter(hit, core.NewSeededSampler(1), iors)

	if set.Len() != 1 {
		t.Fatalf("Expected only a reflected ray under TIR, got %d", set.Len())
	}
	r := set.At(0)
	if r.Kind != scatter.Reflection || r.WeightNM != 1 {
		t.Errorf("Expected full-weight reflection, got %+v", r)
	}
	if r.Ray.Direction.Y >= 0 {
		t.Errorf("Expected internal reflection back into the glass, got %v", r.Ray.Direction)
	}
}

func TestDielectric_NestedMedia(t *testing.T) {
	// A glass sphere submerged in water: leaving the glass goes into water
	water := NewDielectric(1.33)
	glass := NewDielectric(1.5)
	const waterID, glassID core.ObjectID = 1, 2

	iors := refraction.NewStack(1.0)
	iors.SetCurrentOwner(waterID)
	iors.Push(water.RefractiveIndex)
	iors.SetCurrentOwner(glassID)
	iors.Push(glass.RefractiveIndex)

	// Straight out at normal incidence: reflectance depends on 1.5 -> 1.33
	set := glass.Scatter(newTestHit(core.NewVec3(0, 1, 0), glassID), core.NewSeededSampler(1), iors)
	ratio := 1.5 / 1.33
	r0 := (1 - ratio) / (1 + ratio)
	if math.Abs(set.At(0).WeightNM-r0*r0) > 1e-9 {
		t.Errorf("Expected glass/water reflectance %f, got %f", r0*r0, set.At(0).WeightNM)
	}
}

func TestDielectric_Dispersion(t *testing.T) {
	glass := NewDielectric(1.5)
	glass.Dispersion = 0.004

	if math.Abs(glass.IORAt(sodiumD)-1.5) > 1e-12 {
		t.Errorf("Expected reference IOR at 589nm, got %f", glass.IORAt(sodiumD))
	}
	if glass.IORAt(450) <= glass.IORAt(650) {
		t.Error("Expected blue light to bend more than red light")
	}

	// Without dispersion every wavelength sees the same index
	clear := NewDielectric(1.5)
	if clear.IORAt(450) != clear.IORAt(650) {
		t.Error("Expected constant IOR without dispersion")
	}
}

func TestReflectanceFunction(t *testing.T) {
	if r := core.Reflectance(1, 1); r != 0 {
		t.Errorf("Matched media should not reflect at normal incidence, got %f", r)
	}
	if r := core.Reflectance(0, 1.0/1.5); math.Abs(r-1) > 1e-9 {
		t.Errorf("Grazing reflectance should approach 1, got %f", r)
	}
}
