package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Camera turns screen coordinates into primary rays
type Camera interface {
	// GetRay returns the ray through screen point (s, t), where s runs left
	// to right and t bottom to top over [0, 1]. lens is a unit-square sample
	// used for depth of field.
	GetRay(s, t float64, lens core.Vec2) core.Ray
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // Distance to the focal plane, 0 = distance to LookAt
}

// PerspectiveCamera is a thin-lens perspective camera
type PerspectiveCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewPerspectiveCamera creates a camera from config
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	if config.Up.IsZero() {
		config.Up = core.NewVec3(0, 1, 0)
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &PerspectiveCamera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay implements Camera
func (c *PerspectiveCamera) GetRay(s, t float64, lens core.Vec2) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(lens).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Forward returns the direction through the center of the image
func (c *PerspectiveCamera) Forward() core.Vec3 {
	return c.GetRay(0.5, 0.5, core.NewVec2(0.5, 0.5)).Direction
}
