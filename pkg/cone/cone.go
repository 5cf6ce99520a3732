// Package cone computes the UV layout and side-face normals used when authoring
// cone fixtures.
package cone

import (
	gomath "math"

	"github.com/Faultbox/fixturegen/pkg/math"
)

// UVFunc maps an angle in degrees to a point of the cone side UV fan.
type UVFunc func(center math.Vec2, thetaDeg float64) math.Vec2

func radians(deg float64) float64 {
	return deg * gomath.Pi / 180
}

// UVArcPoint places theta on an arc of radius sqrt(2)/2 starting at 135 degrees,
// lifted by 0.25 on V.
func UVArcPoint(center math.Vec2, thetaDeg float64) math.Vec2 {
	const r = gomath.Sqrt2 / 2
	theta0 := 3 * gomath.Pi / 4
	a := theta0 - radians(thetaDeg)
	return math.V2(center.U()+r*gomath.Cos(a), center.V()+r*gomath.Sin(a)+0.25)
}

// UVSinePoint places theta on a unit circle around center, shifted by 30 degrees.
func UVSinePoint(center math.Vec2, thetaDeg float64) math.Vec2 {
	theta0 := gomath.Pi / 6
	a := radians(thetaDeg) - theta0
	return math.V2(center.U()+gomath.Sin(a), center.V()+gomath.Cos(a))
}

// UVPath returns center, the point of every angle, then center again.
func UVPath(center math.Vec2, anglesDeg []float64, fn UVFunc) []math.Vec2 {
	path := make([]math.Vec2, 0, len(anglesDeg)+2)
	path = append(path, center)
	for _, a := range anglesDeg {
		path = append(path, fn(center, a))
	}
	return append(path, center)
}

// DefaultArcAngles and DefaultSineAngles are the sample angles for each layout.
var (
	DefaultArcAngles  = []float64{0, 15, 30, 45, 60, 75, 90}
	DefaultSineAngles = []float64{0, 10, 20, 30, 40, 50, 60}
)

// SideNormal returns the outward normal of the cone side for a base radius
// vector r and apex vector h: normalize(cross(h - r, cross(r, h))).
func SideNormal(r, h math.Vec3) math.Vec3 {
	return h.Sub(r).Cross(r.Cross(h)).Normalize()
}
