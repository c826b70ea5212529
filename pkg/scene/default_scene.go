package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// sunLight stands in for a sphere light of the given radius and radiance far
// away from the scene: it delivers the same irradiance
func sunLight(position core.Vec3, radius float64, radiance core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: radiance.Multiply(math.Pi * radius * radius)}
}

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() *Scene {
	s := New("default", renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:      core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.05,
	})
	s.Radiance = NewDaySky()

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	// Glass coating over a red base
	coatedRed := material.NewLayered(glass, lambertianRed)

	s.Add("center", NewSphere(core.NewVec3(0, 0.5, -1), 0.5), coatedRed)
	s.Add("left", NewSphere(core.NewVec3(-1, 0.5, -1), 0.5), metalSilver)
	s.Add("right", NewSphere(core.NewVec3(1, 0.5, -1), 0.5), metalGold)
	s.Add("ground", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), lambertianGreen)
	s.Add("solid glass", NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25), glass)

	// Hollow glass sphere with a blue sphere inside
	s.Add("hollow outer", NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25), glass)
	s.Add("hollow inner", NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24), glass)
	s.Add("hollow core", NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20), lambertianBlue)

	s.AddLight(sunLight(core.NewVec3(30, 30.5, 15), 10, core.NewVec3(15.0, 14.0, 13.0)))
	return s
}
