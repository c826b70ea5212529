package scene

import "github.com/df07/go-raycaster/pkg/core"

// ConstantRadiance returns the same color for every escaping ray
type ConstantRadiance struct {
	Color core.Vec3
}

// SampleRadianceMap implements raycaster.RadianceMap
func (c ConstantRadiance) SampleRadianceMap(ray core.Ray, pixel core.Pixel) core.Vec3 {
	return c.Color
}

// SampleRadianceMapNM implements raycaster.SpectralRadianceMap
func (c ConstantRadiance) SampleRadianceMapNM(ray core.Ray, pixel core.Pixel, nm float64) float64 {
	return core.SpectralValue(c.Color, nm)
}

// GradientSky blends from Bottom (straight down) to Top (straight up)
type GradientSky struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewDaySky returns the blue to white sky used by the demo scenes
func NewDaySky() GradientSky {
	return GradientSky{Top: core.NewVec3(0.5, 0.7, 1.0), Bottom: core.NewVec3(1.0, 1.0, 1.0)}
}

// SampleRadianceMap implements raycaster.RadianceMap
func (g GradientSky) SampleRadianceMap(ray core.Ray, pixel core.Pixel) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}

// SampleRadianceMapNM implements raycaster.SpectralRadianceMap
func (g GradientSky) SampleRadianceMapNM(ray core.Ray, pixel core.Pixel, nm float64) float64 {
	return core.SpectralValue(g.SampleRadianceMap(ray, pixel), nm)
}
