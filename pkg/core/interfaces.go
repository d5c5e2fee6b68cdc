package core

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always oriented against the incident ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must point away from the surface.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the interface for surfaces that can be intersected by rays
type Hittable interface {
	Hit(ray Ray, t Interval) (*HitRecord, bool)
	BoundingBox() AABB
}

// Light is a hittable that can be importance-sampled as a light source.
// PDFValue must be 0 exactly where RandomDirection can never land a ray,
// and positive where it can.
type Light interface {
	Hittable
	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction Vec3) float64
	// RandomDirection returns a unit direction from origin toward the light
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// ScatterResult contains the result of a material scattering a ray.
// Exactly one of Scattered (specular) or PDF (diffuse) is meaningful:
// a nil PDF means the material scattered specularly and the integrator
// must follow Scattered directly.
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation applied to the path throughput
	Scattered   Ray  // Specular scattered ray (when PDF is nil)
	PDF         PDF  // Direction distribution for diffuse scattering
}

// IsSpecular returns true if this is specular scattering
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Material is the per-surface light interaction contract.
// Scatter returns false when the ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord) Vec3
}
