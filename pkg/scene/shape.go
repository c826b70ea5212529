package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Shape is geometry that can be intersected by rays. Hits report the shape's
// outward normal in Basis.W; the scene fills in Object and Ray.
type Shape interface {
	// Hit returns the closest intersection with t in [tMin, tMax]. With
	// wantExit set, TExit is the distance at which the ray leaves the shape.
	Hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool)
	BoundingBox() AABB
}

// Animated is implemented by shapes whose placement depends on time
type Animated interface {
	EvaluateAnimationAtTime(t float64)
}

// Object is a shape registered with a scene together with its material
type Object struct {
	ID       core.ObjectID
	Name     string
	Shape    Shape
	Material material.SPF
}

// hit intersects the object's shape and stamps the hit with its identity
func (o *Object) hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	h, ok := o.Shape.Hit(ray, tMin, tMax, wantExit)
	if !ok {
		return h, false
	}
	h.Hit = true
	h.Ray = ray
	h.Object = o.ID
	return h, true
}
