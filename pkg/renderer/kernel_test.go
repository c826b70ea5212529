package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestKernels_PointsInUnitSquare(t *testing.T) {
	sampler := core.NewSeededSampler(11)
	for _, kernel := range Kernels() {
		for _, n := range []int{1, 2, 5, 16, 33} {
			points := kernel.Generate(n, sampler)
			if len(points) != n {
				t.Errorf("%s: expected %d points, got %d", kernel.Name(), n, len(points))
			}
			for _, p := range points {
				if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
					t.Errorf("%s: point %v outside [0,1)²", kernel.Name(), p)
				}
			}
		}
	}
}

func TestRegularKernel(t *testing.T) {
	points := RegularKernel{}.Generate(4, nil)
	want := []core.Vec2{{X: 0.25, Y: 0.25}, {X: 0.75, Y: 0.25}, {X: 0.25, Y: 0.75}, {X: 0.75, Y: 0.75}}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], points[i])
		}
	}
}

func TestJitteredKernel_Stratified(t *testing.T) {
	points := JitteredKernel{}.Generate(16, core.NewSeededSampler(3))
	seen := map[[2]int]bool{}
	for _, p := range points {
		seen[[2]int{int(p.X * 4), int(p.Y * 4)}] = true
	}
	if len(seen) != 16 {
		t.Errorf("Expected one sample per stratum, got %d strata", len(seen))
	}
}

func TestKernelByName(t *testing.T) {
	for _, name := range []string{"random", "jittered", "regular", "halton"} {
		if k, ok := KernelByName(name); !ok || k.Name() != name {
			t.Errorf("Expected kernel %q", name)
		}
	}
	if _, ok := KernelByName("sobol"); ok {
		t.Error("Expected unknown kernel to be rejected")
	}
}

func TestFilters(t *testing.T) {
	center := core.NewVec2(0.5, 0.5)
	tests := []struct {
		filter       Filter
		centerWeight float64
		edgeWeight   float64
	}{
		{BoxFilter{Width: 1}, 1, 1},
		{TentFilter{Width: 2}, 1, 0},
		{GaussianFilter{Width: 3, Sigma: 0.5}, math.Pow(1-math.Exp(-4.5), 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.filter.Name(), func(t *testing.T) {
			offset, w := tt.filter.Warp(center)
			if offset != (core.Vec2{}) || math.Abs(w-tt.centerWeight) > 1e-12 {
				t.Errorf("Center: expected zero offset with weight %f, got %v %f", tt.centerWeight, offset, w)
			}

			offset, w = tt.filter.Warp(core.NewVec2(0, 0))
			r := tt.filter.Radius()
			if offset.X != -r || offset.Y != -r {
				t.Errorf("Corner: expected offset -%f, got %v", r, offset)
			}
			if math.Abs(w-tt.edgeWeight) > 1e-12 {
				t.Errorf("Corner: expected weight %f, got %f", tt.edgeWeight, w)
			}
		})
	}
}

func coverage(t *testing.T, region image.Rectangle, tiles []image.Rectangle) {
	t.Helper()
	counts := map[image.Point]int{}
	for _, tile := range tiles {
		if !tile.In(region) {
			t.Errorf("Tile %v outside region %v", tile, region)
		}
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				counts[image.Pt(x, y)]++
			}
		}
	}
	if len(counts) != region.Dx()*region.Dy() {
		t.Errorf("Expected %d pixels covered, got %d", region.Dx()*region.Dy(), len(counts))
	}
	for p, n := range counts {
		if n != 1 {
			t.Errorf("Pixel %v covered %d times", p, n)
		}
	}
}

func TestSequencers_CoverRegionOnce(t *testing.T) {
	regions := []image.Rectangle{
		image.Rect(0, 0, 100, 70),
		image.Rect(13, 7, 50, 29),
		image.Rect(0, 0, 1, 1),
	}
	sequencers := []Sequencer{ScanlineSequencer{}, BlockSequencer{Size: 16}, HilbertSequencer{Size: 16}, HilbertSequencer{Size: 7}}

	for _, seq := range sequencers {
		for _, region := range regions {
			coverage(t, region, seq.Tiles(region))
		}
	}
}

func TestHilbertSequencer_Adjacent(t *testing.T) {
	tiles := HilbertSequencer{Size: 16}.Tiles(image.Rect(0, 0, 128, 128))
	if len(tiles) != 64 {
		t.Fatalf("Expected 64 blocks, got %d", len(tiles))
	}
	if tiles[0].Min != (image.Point{}) {
		t.Errorf("Expected curve to start at the origin, got %v", tiles[0])
	}
	for i := 1; i < len(tiles); i++ {
		d := tiles[i].Min.Sub(tiles[i-1].Min)
		if abs(d.X)+abs(d.Y) != 16 {
			t.Errorf("Blocks %d and %d are not neighbours: %v -> %v", i-1, i, tiles[i-1].Min, tiles[i].Min)
		}
	}
}

func TestHilbertPoint_VisitsEveryCell(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		seen := map[[2]int]bool{}
		for d := 0; d < n*n; d++ {
			x, y := hilbertPoint(n, d)
			seen[[2]int{x, y}] = true
		}
		if len(seen) != n*n {
			t.Errorf("n=%d: expected %d distinct cells, got %d", n, n*n, len(seen))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
