package material

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImageTexture(t *testing.T) {
	tex, err := LoadImageTexture(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("Expected 2x1 texture, got %dx%d", tex.Width, tex.Height)
	}

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"left texel", core.NewVec2(0.25, 0.5), core.NewVec3(1, 0, 0)},
		{"right texel", core.NewVec2(0.75, 0.5), core.NewVec3(0, 0, 1)},
		{"wrapped", core.NewVec2(1.25, 0.5), core.NewVec3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Evaluate(tt.uv, core.Vec3{})
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Evaluate(%v) = %v, expected %v", tt.uv, got, tt.expected)
			}
		})
	}
}

func TestLoadImageTexture_Missing(t *testing.T) {
	_, err := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
