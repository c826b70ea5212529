package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewTextureScene creates spheres showing image textures and a mixed material
func NewTextureScene() *Scene {
	s := New("textures", renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        30.0,
	})
	s.Radiance = NewDaySky()

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	gradient := material.NewGradientTexture(256, 256,
		core.NewVec3(1.0, 0.2, 0.2),
		core.NewVec3(0.2, 1.0, 0.2),
	)
	brick := material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),
		core.NewVec3(0.5, 0.2, 0.05),
	)

	s.Add("ground", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), material.NewPatternedLambertian(brick))
	s.Add("checker", NewSphere(core.NewVec3(-2.5, 1, 0), 1), material.NewPatternedLambertian(checkerboard))
	s.Add("gradient", NewSphere(core.NewVec3(0, 1, 0), 1), material.NewPatternedLambertian(gradient))
	s.Add("satin", NewSphere(core.NewVec3(2.5, 1, 0), 1),
		material.NewMix(material.NewPatternedLambertian(checkerboard), material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.1), 0.3))

	s.AddLight(PointLight{Position: core.NewVec3(0, 8, 6), Intensity: core.NewVec3(60, 60, 60)})
	return s
}
