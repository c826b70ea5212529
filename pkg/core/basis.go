package core

import "math"

// ONB is an orthonormal basis. W is the surface normal direction at a hit.
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds a basis whose W axis points along w
func NewONBFromW(w Vec3) ONB {
	w = w.Normalize()

	// Pick the helper axis least aligned with w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return ONB{U: u, V: v, W: w}
}

// ToWorld converts local (u, v, w) coordinates to world space
func (b ONB) ToWorld(local Vec3) Vec3 {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}

// ToLocal converts a world-space vector into basis coordinates
func (b ONB) ToLocal(world Vec3) Vec3 {
	return NewVec3(world.Dot(b.U), world.Dot(b.V), world.Dot(b.W))
}

// Flip returns the basis with W (and V, to keep handedness) reversed
func (b ONB) Flip() ONB {
	return ONB{U: b.U, V: b.V.Negate(), W: b.W.Negate()}
}
