package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Raster holds finished pixels for a rectangle of the image
type Raster struct {
	Rect   image.Rectangle
	Pixels []PixelResult // Row-major within Rect
}

// NewRaster creates an empty raster covering rect
func NewRaster(rect image.Rectangle) *Raster {
	return &Raster{Rect: rect, Pixels: make([]PixelResult, rect.Dx()*rect.Dy())}
}

// At returns the pixel at image coordinates x, y
func (r *Raster) At(x, y int) PixelResult {
	return r.Pixels[r.offset(x, y)]
}

// Set stores the pixel at image coordinates x, y
func (r *Raster) Set(x, y int, p PixelResult) {
	r.Pixels[r.offset(x, y)] = p
}

func (r *Raster) offset(x, y int) int {
	return (y-r.Rect.Min.Y)*r.Rect.Dx() + (x - r.Rect.Min.X)
}

// Sink receives finished tiles and the end of each frame. Calls come from a
// single goroutine.
type Sink interface {
	WriteTile(r *Raster)
	EndFrame()
}

// ImageSink assembles tiles into a full image
type ImageSink struct {
	width, height int
	pixels        []PixelResult
	tiles         int
	frames        int

	// OnFrame, if set, receives every completed frame
	OnFrame func(frame int, img *image.RGBA)
}

// NewImageSink creates a sink for a width×height image
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{width: width, height: height, pixels: make([]PixelResult, width*height)}
}

// WriteTile implements Sink
func (s *ImageSink) WriteTile(r *Raster) {
	clip := r.Rect.Intersect(image.Rect(0, 0, s.width, s.height))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			s.pixels[y*s.width+x] = r.At(x, y)
		}
	}
	s.tiles++
}

// EndFrame implements Sink
func (s *ImageSink) EndFrame() {
	if s.OnFrame != nil {
		s.OnFrame(s.frames, s.Image())
	}
	s.frames++
}

// Pixel returns the stored pixel at x, y
func (s *ImageSink) Pixel(x, y int) PixelResult {
	return s.pixels[y*s.width+x]
}

// Tiles returns the number of tiles written
func (s *ImageSink) Tiles() int {
	return s.tiles
}

// Frames returns the number of completed frames
func (s *ImageSink) Frames() int {
	return s.frames
}

// Image converts the stored pixels to 8-bit RGBA with gamma 2 correction
func (s *ImageSink) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, toRGBA(s.pixels[y*s.width+x].Color))
		}
	}
	return img
}

func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1).GammaCorrect(2.0)
	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
