// Package scene provides the geometry, lights, shader and demo scenes that
// drive the ray caster from the command line and in end-to-end tests.
package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/log"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/renderer"
)

var logger = log.New("scene")

// shadowAcne is the minimum hit distance, keeping secondary rays from
// hitting the surface they start on
const shadowAcne = 1e-4

var inf = math.Inf(1)

// Scene holds the objects, lights and view of a renderable world. It is
// read-only while rendering except for EvaluateAnimationAtTime.
type Scene struct {
	Name     string
	Camera   renderer.CameraConfig
	Radiance raycaster.RadianceMap // Light arriving along rays that escape, may be nil
	Lights   []PointLight

	objects  []*Object
	animated []Animated
	bvh      *BVH
}

// New creates an empty scene
func New(name string, camera renderer.CameraConfig) *Scene {
	return &Scene{Name: name, Camera: camera}
}

// Add registers a shape with its material and returns its identity.
// Identities start at 1 so they never collide with core.NoObject.
func (s *Scene) Add(name string, shape Shape, spf material.SPF) core.ObjectID {
	id := core.ObjectID(len(s.objects) + 1)
	s.objects = append(s.objects, &Object{ID: id, Name: name, Shape: shape, Material: spf})
	if a, ok := shape.(Animated); ok {
		s.animated = append(s.animated, a)
	}
	s.bvh = nil
	return id
}

// AddLight adds a point light
func (s *Scene) AddLight(l PointLight) {
	s.Lights = append(s.Lights, l)
}

// Object returns the object with identity id
func (s *Scene) Object(id core.ObjectID) (*Object, bool) {
	if id == core.NoObject || int(id) > len(s.objects) {
		return nil, false
	}
	return s.objects[id-1], true
}

// Objects returns the registered objects in insertion order
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Build creates the bounding volume hierarchy. Until it is called, and after
// any later Add, intersection falls back to a linear search.
func (s *Scene) Build() {
	s.bvh = NewBVH(s.objects)
	logger.Debugf("scene %q: %d objects, hierarchy depth %d", s.Name, len(s.objects), s.bvh.Depth())
}

// IntersectScene returns the closest hit along ray
func (s *Scene) IntersectScene(ray core.Ray, wantExit bool) (core.SurfaceHit, bool) {
	if s.bvh != nil {
		return s.bvh.Hit(ray, shadowAcne, inf, wantExit)
	}

	var closest core.SurfaceHit
	found := false
	tMax := inf
	for _, o := range s.objects {
		if h, ok := o.hit(ray, shadowAcne, tMax, wantExit); ok {
			closest, found, tMax = h, true, h.TEnter
		}
	}
	return closest, found
}

// CastShadowRay reports whether any object blocks ray before maxDistance
func (s *Scene) CastShadowRay(ray core.Ray, maxDistance float64) bool {
	if s.bvh != nil {
		return s.bvh.Any(ray, shadowAcne, maxDistance)
	}
	for _, o := range s.objects {
		if _, ok := o.Shape.Hit(ray, shadowAcne, maxDistance, false); ok {
			return true
		}
	}
	return false
}

// EvaluateAnimationAtTime moves every animated shape to time t
func (s *Scene) EvaluateAnimationAtTime(t float64) {
	for _, a := range s.animated {
		a.EvaluateAnimationAtTime(t)
	}
}

// Animated reports whether the scene has anything that moves
func (s *Scene) Animated() bool {
	return len(s.animated) > 0
}

// NewCaster wires the scene to a ray caster with the scene's shader
func (s *Scene) NewCaster(config raycaster.Config) *raycaster.RayCaster {
	if s.bvh == nil {
		s.Build()
	}
	return raycaster.New(s, NewShader(s), s.Radiance, config)
}
