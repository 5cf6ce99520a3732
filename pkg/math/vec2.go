package math

import "github.com/ungerik/go3d/float64/vec2"

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 vec2.T

// V2 builds a Vec2 from its components.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// U returns the first component.
func (v Vec2) U() float64 { return v[0] }

// V returns the second component.
func (v Vec2) V() float64 { return v[1] }

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	a, b := vec2.T(v), vec2.T(other)
	return Vec2(vec2.Add(&a, &b))
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	a, b := vec2.T(v), vec2.T(other)
	return Vec2(vec2.Sub(&a, &b))
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	a := vec2.T(v)
	return Vec2(a.Scaled(s))
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	a := vec2.T(v)
	return a.Length()
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}
