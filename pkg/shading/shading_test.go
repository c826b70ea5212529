package shading

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestCache_StoreAndLookup(t *testing.T) {
	c := NewCache()
	px := core.Pixel{X: 3, Y: 4}

	if _, ok := c.Lookup(1, px); ok {
		t.Fatal("Expected miss on empty cache")
	}

	c.Store(1, px, core.NewVec3(1, 2, 3))
	c.Store(1, px, core.NewVec3(4, 5, 6))
	c.Store(2, px, core.NewVec3(7, 8, 9))

	if got, ok := c.Lookup(1, px); !ok || got != core.NewVec3(4, 5, 6) {
		t.Errorf("Expected newest entry to win, got %v (ok=%v)", got, ok)
	}
	if _, ok := c.Lookup(1, core.Pixel{X: 4, Y: 3}); ok {
		t.Error("Expected entries to be keyed by pixel")
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", c.Len())
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("Expected 1 hit and 2 misses, got %d and %d", hits, misses)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after reset, got %d entries", c.Len())
	}
}

func TestCache_GetOrCompute(t *testing.T) {
	c := NewCache()
	calls := 0
	compute := func() core.Vec3 {
		calls++
		return core.NewVec3(0.5, 0.5, 0.5)
	}

	for i := 0; i < 3; i++ {
		if got := c.GetOrCompute(9, core.Pixel{}, compute); got != core.NewVec3(0.5, 0.5, 0.5) {
			t.Errorf("Unexpected color %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("Expected compute to run once, ran %d times", calls)
	}
}

func TestContext_CachesPerOperation(t *testing.T) {
	ctx := NewContext(1, false)
	direct, indirect := NewOperationID(), NewOperationID()

	if direct == indirect {
		t.Fatal("Expected distinct operation identities")
	}
	if ctx.Cache(direct) != ctx.Cache(direct) {
		t.Error("Expected the same cache for repeated lookups")
	}
	if ctx.Cache(direct) == ctx.Cache(indirect) {
		t.Error("Expected separate caches per operation")
	}

	ctx.Cache(direct).Store(1, core.Pixel{}, core.NewVec3(1, 1, 1))
	ctx.BeginPass(PassIrradianceCachePrefill)
	if ctx.Pass() != PassIrradianceCachePrefill {
		t.Errorf("Expected prefill pass, got %s", ctx.Pass())
	}
	if ctx.Cache(direct).Len() != 0 {
		t.Error("Expected caches to be reset when a pass begins")
	}

	ctx.Close()
	if len(ctx.caches) != 0 {
		t.Errorf("Expected no caches after close, got %d", len(ctx.caches))
	}
}

func draw(ctx *Context, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = ctx.Sampler().Get1D()
	}
	return out
}

func TestContext_ReseedPixelIsOrderIndependent(t *testing.T) {
	a := NewContext(100, true)
	b := NewContext(999, true)

	// b renders another pixel first; reseeding must erase that history
	b.ReseedPixel(7, core.Pixel{X: 5, Y: 5})
	draw(b, 13)

	a.ReseedPixel(7, core.Pixel{X: 1, Y: 2})
	b.ReseedPixel(7, core.Pixel{X: 1, Y: 2})

	if diff := cmp.Diff(draw(a, 8), draw(b, 8)); diff != "" {
		t.Errorf("Same seed and pixel produced different samples (-a +b):\n%s", diff)
	}

	a.ReseedPixel(7, core.Pixel{X: 2, Y: 1})
	b.ReseedPixel(7, core.Pixel{X: 1, Y: 2})
	if cmp.Equal(draw(a, 8), draw(b, 8)) {
		t.Error("Expected transposed pixels to get different samples")
	}
}
