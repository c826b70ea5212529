package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722 and black average to 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var a, b RenderStats
	a.addPixel(4)
	a.addPixel(8)
	a.Tiles = 1
	b.addPixel(2)
	b.Tiles = 1
	b.Recovered = 1

	var total RenderStats
	total.Merge(a)
	total.Merge(b)

	if total.TotalPixels != 3 || total.TotalSamples != 14 || total.Tiles != 2 || total.Recovered != 1 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.MinSamples != 2 || total.MaxSamplesUsed != 8 {
		t.Errorf("Expected min 2 and max 8, got %d and %d", total.MinSamples, total.MaxSamplesUsed)
	}
	if total.AverageSamples != 14.0/3.0 {
		t.Errorf("Expected average %f, got %f", 14.0/3.0, total.AverageSamples)
	}

	// Empty stats must not reset the minimum
	total.Merge(RenderStats{})
	if total.MinSamples != 2 {
		t.Errorf("Expected min to survive an empty merge, got %d", total.MinSamples)
	}
}
