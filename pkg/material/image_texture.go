package material

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"golang.org/x/xerrors"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image into linear colors,
// undoing the gamma 2 encoding used for output
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	b := img.Bounds()
	pixels := make([]core.Vec3, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(bl)/0xffff)
			pixels = append(pixels, c.MultiplyVec(c))
		}
	}
	return NewImageTexture(b.Dx(), b.Dy(), pixels)
}

// LoadImageTexture decodes a PNG or JPEG file into a texture
func LoadImageTexture(filename string) (*ImageTexture, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, xerrors.Errorf("decode texture %s: %w", filename, err)
	}
	return NewImageTextureFromImage(img), nil
}

// Evaluate samples the texture at given UV coordinates using bilinear filtering.
// UVs wrap, and V=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	u := wrap(uv.X)*float64(t.Width) - 0.5
	v := (1.0-wrap(uv.Y))*float64(t.Height) - 0.5

	x0, y0 := floor(u), floor(v)
	fx, fy := u-float64(x0), v-float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	return c00.Lerp(c10, fx).Lerp(c01.Lerp(c11, fx), fy)
}

// texel returns the pixel at x, y with coordinates wrapped around the edges
func (t *ImageTexture) texel(x, y int) core.Vec3 {
	x = ((x % t.Width) + t.Width) % t.Width
	y = ((y % t.Height) + t.Height) % t.Height
	return t.Pixels[y*t.Width+x]
}

func wrap(f float64) float64 {
	f -= float64(floor(f))
	if f >= 1 {
		f = 0
	}
	return f
}

func floor(f float64) int {
	i := int(f)
	if f < float64(i) {
		i--
	}
	return i
}
