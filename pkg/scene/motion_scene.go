package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewMotionScene creates a scene with spheres moving during the shutter
// interval, for motion blur and animation
func NewMotionScene() *Scene {
	s := New("motion", renderer.CameraConfig{
		Center:      core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	})
	s.Radiance = NewDaySky()

	s.Add("ground", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Add("rolling", NewMovingSphere(core.NewVec3(-1.5, 0.4, 0), core.NewVec3(1.5, 0.4, 0), 0.4), material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2)))
	s.Add("bouncing", NewMovingSphere(core.NewVec3(0, 0.3, -1.2), core.NewVec3(0, 1.3, -1.2), 0.3), material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05))
	s.Add("still", NewSphere(core.NewVec3(1.2, 0.3, -1.5), 0.3), material.NewDielectric(1.5))

	s.AddLight(sunLight(core.NewVec3(20, 25, 20), 8, core.NewVec3(12.0, 11.5, 10.0)))
	return s
}
