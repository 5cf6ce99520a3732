// Package math provides the float64 vector types used to derive and print mesh fixtures.
package math

import (
	gomath "math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Vec3 is a 3D vector.
type Vec3 vec3.T

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(other)
	return Vec3(vec3.Add(&a, &b))
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(other)
	return Vec3(vec3.Sub(&a, &b))
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	a := vec3.T(v)
	return Vec3(a.Scaled(s))
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	a, b := vec3.T(v), vec3.T(other)
	return vec3.Dot(&a, &b)
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(other)
	return Vec3(vec3.Cross(&a, &b))
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	a := vec3.T(v)
	return a.Length()
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	if v.Length() == 0 {
		return Vec3{}
	}
	a := vec3.T(v)
	return Vec3(a.Normalized())
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	for i := range v {
		if gomath.Abs(v[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func Normalize(v Vec3) Vec3 { return v.Normalize() }

// Cross returns a x b.
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Dot returns a . b.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// GramSchmidt removes the n component from t and normalizes the rest:
// normalize(t - n * dot(t, n)).
func GramSchmidt(t, n Vec3) Vec3 {
	return t.Sub(n.Scale(t.Dot(n))).Normalize()
}
