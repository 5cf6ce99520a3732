// Package mesh holds the in-memory vertex/index model shared by every input format
// and derives tangent-space vectors for it.
package mesh

import "github.com/Faultbox/fixturegen/pkg/math"

// Field is a bit set of vertex attributes present in the input.
type Field uint8

// Vertex attributes.
const (
	FieldPosition Field = 1 << iota
	FieldTexCoord
	FieldNormal
	FieldTangent
	FieldBitangent
)

// FieldAll marks a vertex with every attribute.
const FieldAll = FieldPosition | FieldTexCoord | FieldNormal | FieldTangent | FieldBitangent

func (f Field) String() string {
	switch f {
	case FieldPosition:
		return "position"
	case FieldTexCoord:
		return "texCoord"
	case FieldNormal:
		return "normal"
	case FieldTangent:
		return "tangent"
	case FieldBitangent:
		return "bitangent"
	default:
		return "fields"
	}
}

// Vertex is one row of a fixture table.
type Vertex struct {
	Position  math.Vec3
	TexCoord  math.Vec2
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3

	Fields Field
}

// Has reports whether every attribute in f was provided.
func (v *Vertex) Has(f Field) bool {
	return v.Fields&f == f
}

// Set marks the attributes in f as present.
func (v *Vertex) Set(f Field) {
	v.Fields |= f
}

// Mesh is an ordered vertex list, triangle indices and one handedness flag
// applied to every vertex.
type Mesh struct {
	Vertices           []Vertex
	Indices            []uint32
	PositiveHandedness bool
}

// New returns an empty mesh with positive handedness.
func New() *Mesh {
	return &Mesh{PositiveHandedness: true}
}

// HasTangents reports whether any vertex carries a tangent.
func (m *Mesh) HasTangents() bool {
	for i := range m.Vertices {
		if m.Vertices[i].Has(FieldTangent) {
			return true
		}
	}
	return false
}

// TriangleCount returns the number of complete triangles. Without indices the
// vertices are read as consecutive triples.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) == 0 {
		return len(m.Vertices) / 3
	}
	return len(m.Indices) / 3
}
