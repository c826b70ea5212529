package core

// HitDetail is geometry-specific data attached to a SurfaceHit by the
// geometry that produced it. The set of variants is closed; resolve one with
// DetailAs.
type HitDetail interface {
	hitDetail()
}

// SphereDetail records the spherical coordinates of a sphere hit
type SphereDetail struct {
	Theta, Phi float64
}

// PlaneDetail records the in-plane coordinates of a plane hit
type PlaneDetail struct {
	S, T float64
}

// TriangleDetail records the triangle index and barycentrics of a mesh hit
type TriangleDetail struct {
	Index      int
	BaryU      float64
	BaryV      float64
	Smoothness float64
}

func (SphereDetail) hitDetail()   {}
func (PlaneDetail) hitDetail()    {}
func (TriangleDetail) hitDetail() {}

// DetailAs returns the hit detail as type T if it holds that variant
func DetailAs[T HitDetail](h *SurfaceHit) (T, bool) {
	d, ok := h.Detail.(T)
	return d, ok
}

// SurfaceHit is the result of intersecting a ray with the scene.
//
// Detail is a value owned by the hit; copying a SurfaceHit copies it, and
// assigning a new one replaces the old value.
type SurfaceHit struct {
	Ray             Ray       // The ray that produced this hit
	Hit             bool      // Whether anything was hit
	TEnter          float64   // Distance along the ray to the entry point
	TExit           float64   // Distance along the ray to the exit point, if the object is closed
	Normal          Vec3      // Shading normal, facing the outside of the object
	GeometricNormal Vec3      // True surface normal
	TexCoord        Vec2      // Surface parameterization
	Point           Vec3      // World-space intersection point
	ObjectPoint     Vec3      // Object-space intersection point
	Basis           ONB       // Orthonormal basis with W along Normal
	Object          ObjectID  // Identity of the object that was hit
	Detail          HitDetail // Geometry-specific payload, may be nil
}

// FrontFace reports whether the ray arrived from the side Normal points to
func (h *SurfaceHit) FrontFace() bool {
	return h.Ray.Direction.Dot(h.Basis.W) < 0
}

// Distance returns the entry distance along the ray
func (h *SurfaceHit) Distance() float64 {
	return h.TEnter
}
