package scene

import "math"

// DegToRad converts Euler angles expressed in degrees to radians.
const DegToRad = math.Pi / 180

// Vec3 is a three-component vector. Rotations use Euler angles in degrees.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Uniform returns a vector with all three components set to v.
func Uniform(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Radians converts a rotation vector from degrees to radians.
func (v Vec3) Radians() Vec3 {
	return Vec3{X: v.X * DegToRad, Y: v.Y * DegToRad, Z: v.Z * DegToRad}
}

// Transform places an object in the scene. Rotation is Euler degrees; host
// adapters convert to their native rotation representation.
type Transform struct {
	Position Vec3 `json:"position"`
	Scale    Vec3 `json:"scale"`
	Rotation Vec3 `json:"rotation"`
}
