package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MinSamples     int           // Minimum samples taken per pixel
	MaxSamplesUsed int           // Maximum samples actually used by any pixel
	Tiles          int           // Tiles completed
	Recovered      int           // Pixels that failed and fell back to the background
	Duration       time.Duration // Wall time of the render
}

// addPixel records a single pixel's sample count
func (s *RenderStats) addPixel(samples int) {
	if s.TotalPixels == 0 || samples < s.MinSamples {
		s.MinSamples = samples
	}
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, samples)
	s.TotalSamples += samples
	s.TotalPixels++
}

// Merge folds another set of statistics into s
func (s *RenderStats) Merge(other RenderStats) {
	if other.TotalPixels > 0 && (s.TotalPixels == 0 || other.MinSamples < s.MinSamples) {
		s.MinSamples = other.MinSamples
	}
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, other.MaxSamplesUsed)
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles += other.Tiles
	s.Recovered += other.Recovered
	s.finalize()
}

// finalize calculates derived statistics
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image's
// stored (gamma-encoded) values, in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}

	total := 0.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
		}
	}
	return total / float64(b.Dx()*b.Dy())
}
