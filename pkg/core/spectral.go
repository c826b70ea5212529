package core

// Wavelengths (nm) at which the RGB channels are anchored for spectral evaluation
const (
	BlueWavelength  = 450.0
	GreenWavelength = 550.0
	RedWavelength   = 600.0
)

// SpectralValue maps an RGB triple to a scalar amplitude at wavelength nm by
// piecewise-linear interpolation between the channel anchors. Wavelengths
// outside [450, 600] clamp to the nearest channel.
func SpectralValue(rgb Vec3, nm float64) float64 {
	switch {
	case nm <= BlueWavelength:
		return rgb.Z
	case nm >= RedWavelength:
		return rgb.X
	case nm <= GreenWavelength:
		t := (nm - BlueWavelength) / (GreenWavelength - BlueWavelength)
		return rgb.Z*(1-t) + rgb.Y*t
	default:
		t := (nm - GreenWavelength) / (RedWavelength - GreenWavelength)
		return rgb.Y*(1-t) + rgb.X*t
	}
}
