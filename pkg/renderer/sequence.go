package renderer

import (
	"image"
)

// Sequencer splits a region into tiles and decides their dispatch order.
// Order affects progress reporting only, never pixel values.
type Sequencer interface {
	Tiles(region image.Rectangle) []image.Rectangle
	Name() string
}

// ScanlineSequencer dispatches one image row per tile, top to bottom
type ScanlineSequencer struct{}

func (ScanlineSequencer) Name() string { return "scanline" }

// Tiles implements Sequencer
func (ScanlineSequencer) Tiles(region image.Rectangle) []image.Rectangle {
	tiles := make([]image.Rectangle, 0, region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		tiles = append(tiles, image.Rect(region.Min.X, y, region.Max.X, y+1))
	}
	return tiles
}

// BlockSequencer dispatches square blocks in row-major order
type BlockSequencer struct {
	Size int
}

func (BlockSequencer) Name() string { return "block" }

// Tiles implements Sequencer
func (b BlockSequencer) Tiles(region image.Rectangle) []image.Rectangle {
	size := blockSize(b.Size)
	cols, rows := blockGrid(region, size)
	tiles := make([]image.Rectangle, 0, cols*rows)
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			tiles = append(tiles, block(region, size, bx, by))
		}
	}
	return tiles
}

// HilbertSequencer dispatches square blocks along a Hilbert curve, keeping
// consecutive tiles spatially close
type HilbertSequencer struct {
	Size int
}

func (HilbertSequencer) Name() string { return "hilbert" }

// Tiles implements Sequencer
func (h HilbertSequencer) Tiles(region image.Rectangle) []image.Rectangle {
	size := blockSize(h.Size)
	cols, rows := blockGrid(region, size)

	// The curve covers the smallest power-of-two square holding the grid;
	// cells outside the grid are skipped
	n := 1
	for n < cols || n < rows {
		n *= 2
	}

	tiles := make([]image.Rectangle, 0, cols*rows)
	for d := 0; d < n*n; d++ {
		bx, by := hilbertPoint(n, d)
		if bx < cols && by < rows {
			tiles = append(tiles, block(region, size, bx, by))
		}
	}
	return tiles
}

// hilbertPoint converts distance d along the curve filling an n×n grid
// (n a power of two) to grid coordinates
func hilbertPoint(n, d int) (x, y int) {
	t := d
	for s := 1; s < n; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

// SequencerByName returns the named sequencer using size for block orders
func SequencerByName(name string, size int) (Sequencer, bool) {
	switch name {
	case "scanline":
		return ScanlineSequencer{}, true
	case "block":
		return BlockSequencer{Size: size}, true
	case "hilbert":
		return HilbertSequencer{Size: size}, true
	}
	return nil, false
}

func blockSize(size int) int {
	if size <= 0 {
		return 32
	}
	return size
}

func blockGrid(region image.Rectangle, size int) (cols, rows int) {
	return (region.Dx() + size - 1) / size, (region.Dy() + size - 1) / size
}

func block(region image.Rectangle, size, bx, by int) image.Rectangle {
	origin := region.Min.Add(image.Pt(bx*size, by*size))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}.Intersect(region)
}

// Sequencers returns the names accepted by SequencerByName
func Sequencers() []string {
	return []string{"scanline", "block", "hilbert"}
}
