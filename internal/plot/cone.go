package plot

import (
	"strconv"

	"github.com/Faultbox/fixturegen/pkg/math"
)

// ConeUV draws a UV fan path inside the unit square, numbering every point.
func ConeUV(path []math.Vec2, w, h int) (*Figure, error) {
	xMin, xMax, yMin, yMax := EqualAspect(w, h, 0, 1, 0, 1)
	f, err := New(w, h, xMin, xMax, yMin, yMax)
	if err != nil {
		return nil, err
	}
	f.Grid(0.25)
	f.Polyline(path, 2, Blue)
	f.Markers(path, 6, Blue)
	for i, p := range path {
		f.Label(p, strconv.Itoa(i), Black)
	}
	f.Title("Cone UV points")
	return f, nil
}

// ConeNormal draws the half cross-section of a cone: base radius r along X,
// apex h along Y, and the side normal n from the middle of the slanted edge.
func ConeNormal(r, h, n math.Vec3, w, ht int) (*Figure, error) {
	xMin, xMax, yMin, yMax := EqualAspect(w, ht, -1, 1, -0.5, h.Y()+0.5)
	f, err := New(w, ht, xMin, xMax, yMin, yMax)
	if err != nil {
		return nil, err
	}
	f.Grid(0.5)

	origin := math.V2(0, 0)
	base := math.V2(r.X(), r.Y())
	apex := math.V2(h.X(), h.Y())
	tri := []math.Vec2{origin, base, apex, origin}
	f.Polyline(tri, 2, Blue)
	f.Markers(tri, 6, Blue)

	mid := base.Add(apex).Scale(0.5)
	tip := mid.Add(math.V2(n.X(), n.Y()).Scale(0.2))
	f.Arrow(mid, tip, 2, 8, Red)

	f.Label(base, "r", Black)
	f.Label(apex, "h", Black)
	f.Label(tip, "n", Red)
	f.Title("Cone side normal")
	return f, nil
}
