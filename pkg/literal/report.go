package literal

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

// bitangentWidth is the fixed field width of each bitangent component.
const bitangentWidth = 10

// WriteBitangents lists the bitangent of every vertex as
// "bitangent[i] = { x, y, z }". Vertices without a derived bitangent get a
// one-line diagnostic instead.
func WriteBitangents(w io.Writer, m *mesh.Mesh, opts Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "(Handedness: %t)\n", m.PositiveHandedness)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if !v.Has(mesh.FieldBitangent) {
			fmt.Fprintf(&b, "[%d] normal or tangent is empty\n", i)
			continue
		}
		vals := vec3Strings(v.Bitangent, opts.FloatSuffix)
		for k := range vals {
			vals[k] = padLeft(vals[k], bitangentWidth)
		}
		fmt.Fprintf(&b, "bitangent[%d] = { %s }\n", i, strings.Join(vals, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTangentReport prints a triangle tangent followed by the tangent of each
// vertex after Gram-Schmidt against its own normal.
func WriteTangentReport(w io.Writer, tangent math.Vec3, perVertex []math.Vec3) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Tangent = %.6f, %.6f, %.6f\n", tangent[0], tangent[1], tangent[2])
	for i, t := range perVertex {
		fmt.Fprintf(&b, "Tangent %d = %.6f, %.6f, %.6f\n", i, t[0], t[1], t[2])
	}
	_, err := io.WriteString(w, b.String())
	return err
}
