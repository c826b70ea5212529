package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewGlassScene creates nested transparent media: a glass marble inside a
// water drop, a dispersive prism-like sphere, a frosted coating and a lamp
func NewGlassScene() *Scene {
	s := New("glass", renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.2, 3),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 4.0 / 3.0,
		VFov:        35.0,
	})
	s.Radiance = ConstantRadiance{Color: core.NewVec3(0.2, 0.2, 0.2)}

	water := material.NewDielectric(1.33)
	water.Tint = core.NewVec3(0.9, 0.95, 1.0)
	glass := material.NewDielectric(1.5)
	flint := material.NewDielectric(1.62)
	flint.Dispersion = 0.0153

	frosted := material.NewLayered(glass, material.NewTranslucent(core.NewVec3(0.4, 0.4, 0.45), core.NewVec3(0.4, 0.45, 0.5)))
	floor := material.NewPatternedLambertian(material.NewChecker(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.1, 0.1, 0.1), 2))

	s.Add("floor", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), floor)
	s.Add("water drop", NewSphere(core.NewVec3(0, 0.6, 0), 0.6), water)
	s.Add("marble", NewSphere(core.NewVec3(0, 0.6, 0), 0.3), glass)
	s.Add("flint", NewSphere(core.NewVec3(-1.3, 0.4, -0.3), 0.4), flint)
	s.Add("frosted", NewSphere(core.NewVec3(1.3, 0.4, -0.3), 0.4), frosted)
	s.Add("lamp", NewSphere(core.NewVec3(0, 3, -2), 0.5), material.NewEmissive(core.NewVec3(8, 7.5, 7)))

	s.AddLight(PointLight{Position: core.NewVec3(2, 4, 2), Intensity: core.NewVec3(20, 20, 20)})
	s.AddLight(PointLight{Position: core.NewVec3(-3, 3, 1), Intensity: core.NewVec3(6, 6, 8)})
	return s
}
