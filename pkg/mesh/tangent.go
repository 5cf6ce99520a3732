package mesh

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/fixturegen/pkg/math"
)

// Epsilon is the threshold below which a UV determinant or a vector length is
// treated as zero.
const Epsilon = 1e-6

// ErrIndexRange is returned when a triangle references a vertex that does not exist.
var ErrIndexRange = errors.New("index out of range")

// HandednessSign returns +1 for a positive (right-handed) frame and -1 otherwise.
func HandednessSign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}

// TriangleTangent solves the UV-gradient system for one triangle and returns the
// unnormalized tangent.
//
// When the UV determinant is below Epsilon the texture coordinates are collinear
// and the system is singular. In that case the tangent is cross(up, avgNormal),
// with up = +Y unless the averaged normal is itself almost +Y/-Y, and the second
// return value is true.
func TriangleTangent(pos [3]math.Vec3, uv [3]math.Vec2, normals [3]math.Vec3) (math.Vec3, bool) {
	deltaPos1 := pos[1].Sub(pos[0])
	deltaPos2 := pos[2].Sub(pos[0])

	deltaUV1 := uv[1].Sub(uv[0])
	deltaUV2 := uv[2].Sub(uv[0])

	det := deltaUV1.U()*deltaUV2.V() - deltaUV2.U()*deltaUV1.V()
	if gomath.Abs(det) < Epsilon {
		return fallbackTangent(normals), true
	}

	r := 1.0 / det
	tangent := deltaPos1.Scale(deltaUV2.V()).Sub(deltaPos2.Scale(deltaUV1.V())).Scale(r)
	return tangent, false
}

func fallbackTangent(normals [3]math.Vec3) math.Vec3 {
	avg := normals[0].Add(normals[1]).Add(normals[2]).Normalize()

	up := math.V3(0, 1, 0)
	if gomath.Abs(avg.Y()) >= 0.999 {
		up = math.V3(1, 0, 0)
	}
	return up.Cross(avg)
}

// Bitangent returns normalize(cross(n, t) * sign) where sign follows the
// handedness flag.
func Bitangent(normal, tangent math.Vec3, positiveHandedness bool) math.Vec3 {
	return normal.Cross(tangent).Scale(HandednessSign(positiveHandedness)).Normalize()
}

// OrthogonalizeTangent re-projects a shared triangle tangent onto the plane of a
// single vertex normal.
func OrthogonalizeTangent(tangent, normal math.Vec3) math.Vec3 {
	return math.GramSchmidt(tangent, normal)
}

// Triangle returns the three vertex indices of triangle i. Meshes without an
// index list are read as consecutive vertex triples.
func (m *Mesh) Triangle(i int) ([3]uint32, error) {
	var tri [3]uint32
	if len(m.Indices) == 0 {
		for k := range tri {
			tri[k] = uint32(i*3 + k)
		}
	} else {
		if i*3+2 >= len(m.Indices) {
			return tri, fmt.Errorf("triangle %d: %w", i, ErrIndexRange)
		}
		copy(tri[:], m.Indices[i*3:i*3+3])
	}
	for _, idx := range tri {
		if int(idx) >= len(m.Vertices) {
			return tri, fmt.Errorf("triangle %d references vertex %d of %d: %w", i, idx, len(m.Vertices), ErrIndexRange)
		}
	}
	return tri, nil
}

// TriangleTangentAt runs TriangleTangent on triangle i of the mesh.
func (m *Mesh) TriangleTangentAt(i int) (math.Vec3, bool, error) {
	tri, err := m.Triangle(i)
	if err != nil {
		return math.Vec3{}, false, err
	}
	t, degenerate := m.tangentOf(tri)
	return t, degenerate, nil
}

// tangentOf runs TriangleTangent on vertices already checked by Triangle.
func (m *Mesh) tangentOf(tri [3]uint32) (math.Vec3, bool) {
	var (
		pos [3]math.Vec3
		uv  [3]math.Vec2
		nrm [3]math.Vec3
	)
	for k, idx := range tri {
		v := &m.Vertices[idx]
		pos[k] = v.Position
		uv[k] = v.TexCoord
		nrm[k] = v.Normal
	}
	return TriangleTangent(pos, uv, nrm)
}

// GenerateTangents replaces every vertex tangent with the average of the tangents
// of the triangles that use it. Averages shorter than Epsilon are left as they are,
// longer ones are normalized. With orthogonalize set each tangent is then
// Gram-Schmidt projected against its vertex normal. It returns the number of
// triangles that needed the degenerate-UV fallback.
func GenerateTangents(m *Mesh, orthogonalize bool) (int, error) {
	sums := make([]math.Vec3, len(m.Vertices))
	counts := make([]int, len(m.Vertices))
	degenerate := 0

	for i := 0; i < m.TriangleCount(); i++ {
		tri, err := m.Triangle(i)
		if err != nil {
			return degenerate, err
		}
		t, fallback := m.tangentOf(tri)
		if fallback {
			degenerate++
		}
		for _, idx := range tri {
			sums[idx] = sums[idx].Add(t)
			counts[idx]++
		}
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		if counts[i] == 0 {
			continue
		}
		t := sums[i].Scale(1 / float64(counts[i]))
		if t.Length() >= Epsilon {
			t = t.Normalize()
		}
		if orthogonalize && v.Has(FieldNormal) {
			t = OrthogonalizeTangent(t, v.Normal)
		}
		v.Tangent = t
		v.Set(FieldTangent)
	}
	return degenerate, nil
}

// DeriveBitangents sets the bitangent of every vertex that has both a normal and a
// tangent, using the mesh handedness. Vertices missing either get a zero
// bitangent, replacing any read from the input, and their indices are returned.
func DeriveBitangents(m *Mesh) []int {
	var skipped []int
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if !v.Has(FieldNormal | FieldTangent) {
			v.Bitangent = math.Vec3{}
			v.Fields &^= FieldBitangent
			skipped = append(skipped, i)
			continue
		}
		v.Bitangent = Bitangent(v.Normal, v.Tangent, m.PositiveHandedness)
		v.Set(FieldBitangent)
	}
	return skipped
}
