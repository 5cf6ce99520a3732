package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

type meshJSON struct {
	PositiveHandedness *bool        `json:"positiveHandedness"`
	Vertices           []vertexJSON `json:"vertices"`
	Indices            []uint32     `json:"indices"`
}

// vertexJSON mirrors one entry of "vertices". Absent arrays stay nil.
type vertexJSON struct {
	Position  []float64 `json:"position"`
	TexCoord  []float64 `json:"texCoord"`
	Normal    []float64 `json:"normal"`
	Tangent   []float64 `json:"tangent"`
	Bitangent []float64 `json:"bitangent"`
}

// LoadMeshJSON reads and parses a mesh JSON file. A missing file is an error.
func LoadMeshJSON(path string) (*mesh.Mesh, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseMeshJSON(data)
}

// ParseMeshJSON decodes a mesh document:
//
//	{"positiveHandedness": true,
//	 "vertices": [{"position": [x,y,z], "texCoord": [u,v], "normal": [x,y,z], "tangent": [x,y,z]}],
//	 "indices": [0, 1, 2]}
//
// positiveHandedness defaults to true. Every vertex field is optional; a field
// with the wrong number of components is reported as a Warning and left unset.
// A four-component tangent carries its handedness in w, which is dropped since
// handedness is taken from the document.
func ParseMeshJSON(data []byte) (*mesh.Mesh, []Warning, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, ErrEmptyInput
	}

	var doc meshJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	m := mesh.New()
	if doc.PositiveHandedness != nil {
		m.PositiveHandedness = *doc.PositiveHandedness
	}
	m.Indices = doc.Indices

	var warnings []Warning
	m.Vertices = make([]mesh.Vertex, len(doc.Vertices))
	for i, raw := range doc.Vertices {
		v := &m.Vertices[i]

		set3 := func(f mesh.Field, src []float64, dst *math.Vec3, allowW bool) {
			if src == nil {
				return
			}
			if len(src) != 3 && !(allowW && len(src) == 4) {
				warnings = append(warnings, Warning{i, f, fmt.Errorf("%w: got %d, want 3", ErrFieldArity, len(src))})
				return
			}
			*dst = math.V3(src[0], src[1], src[2])
			v.Set(f)
		}

		set3(mesh.FieldPosition, raw.Position, &v.Position, false)
		set3(mesh.FieldNormal, raw.Normal, &v.Normal, false)
		set3(mesh.FieldTangent, raw.Tangent, &v.Tangent, true)
		set3(mesh.FieldBitangent, raw.Bitangent, &v.Bitangent, false)

		if raw.TexCoord != nil {
			if len(raw.TexCoord) != 2 {
				warnings = append(warnings, Warning{i, mesh.FieldTexCoord, fmt.Errorf("%w: got %d, want 2", ErrFieldArity, len(raw.TexCoord))})
			} else {
				v.TexCoord = math.V2(raw.TexCoord[0], raw.TexCoord[1])
				v.Set(mesh.FieldTexCoord)
			}
		}
	}

	return m, warnings, nil
}

// MissingFields returns a Warning for every vertex lacking any field in want.
func MissingFields(m *mesh.Mesh, want ...mesh.Field) []Warning {
	var warnings []Warning
	for i := range m.Vertices {
		for _, f := range want {
			if !m.Vertices[i].Has(f) {
				warnings = append(warnings, Warning{i, f, ErrMissingField})
			}
		}
	}
	return warnings
}
