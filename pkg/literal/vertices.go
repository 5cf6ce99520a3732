package literal

import (
	"io"
	"strings"

	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

// Block labels, in row order.
var Labels = []string{"POSITION", "TEX COORD", "NORMAL", "TANGENT", "BITANGENT"}

// row holds the formatted values of one vertex, grouped by block.
type row [][]string

func vec3Strings(v math.Vec3, suffix string) []string {
	return []string{FormatFloat(v[0], suffix), FormatFloat(v[1], suffix), FormatFloat(v[2], suffix)}
}

func vec2Strings(v math.Vec2, suffix string) []string {
	return []string{FormatFloat(v[0], suffix), FormatFloat(v[1], suffix)}
}

func buildRows(vertices []mesh.Vertex, withTangents bool, suffix string) []row {
	rows := make([]row, 0, len(vertices))
	for i := range vertices {
		v := &vertices[i]
		r := row{
			vec3Strings(v.Position, suffix),
			vec2Strings(v.TexCoord, suffix),
			vec3Strings(v.Normal, suffix),
		}
		if withTangents {
			r = append(r, vec3Strings(v.Tangent, suffix), vec3Strings(v.Bitangent, suffix))
		}
		rows = append(rows, r)
	}
	return rows
}

// columnWidths returns, per block and per component, the widest string in rows.
func columnWidths(rows []row) [][]int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([][]int, len(rows[0]))
	for b, block := range rows[0] {
		widths[b] = make([]int, len(block))
	}
	for _, r := range rows {
		for b, block := range r {
			for c, s := range block {
				widths[b][c] = max(widths[b][c], len(s))
			}
		}
	}
	return widths
}

func renderBlock(block []string, widths []int) string {
	vals := make([]string, len(block))
	for i, s := range block {
		vals[i] = padLeft(s, widths[i])
	}
	return "{ " + strings.Join(vals, ", ") + " }"
}

// headerLine puts "// LABEL" at the column where each block starts. A label that
// would run into the next one is pushed right by one space.
func headerLine(starts []int) string {
	var b strings.Builder
	for i, start := range starts {
		if i >= len(Labels) {
			break
		}
		if b.Len() < start {
			b.WriteString(strings.Repeat(" ", start-b.Len()))
		} else if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("// ")
		b.WriteString(Labels[i])
	}
	return b.String()
}

// leadingHeader gives each label a field as wide as its block plus the ", "
// separator, starting at the row indent.
func leadingHeader(indent string, blockLens []int) string {
	var b strings.Builder
	b.WriteString(indent)
	for i, l := range blockLens {
		if i >= len(Labels) {
			break
		}
		field := "// " + Labels[i]
		b.WriteString(field)
		b.WriteString(strings.Repeat(" ", max(l-len(field), 0)+2))
	}
	return strings.TrimRight(b.String(), " ")
}

// Vertices renders the vertex table. Tangent and bitangent blocks are included
// only when withTangents is set.
func Vertices(vertices []mesh.Vertex, withTangents bool, opts Options) string {
	rows := buildRows(vertices, withTangents, opts.FloatSuffix)
	widths := columnWidths(rows)

	var b strings.Builder
	opts.openDecl(&b, opts.VertexDecl)

	for i, r := range rows {
		line := opts.RowIndent + "{ "
		var starts, lens []int
		for bi, block := range r {
			starts = append(starts, len(line))
			rendered := renderBlock(block, widths[bi])
			lens = append(lens, len(rendered))
			line += rendered
			if bi < len(r)-1 {
				line += ", "
			}
		}
		line += " },"

		if i == 0 {
			if opts.HeaderLead {
				b.WriteString(leadingHeader(opts.RowIndent, lens))
			} else {
				b.WriteString(headerLine(starts))
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	opts.closeDecl(&b)
	return b.String()
}

// WriteVertices writes the vertex table to w.
func WriteVertices(w io.Writer, vertices []mesh.Vertex, withTangents bool, opts Options) error {
	_, err := io.WriteString(w, Vertices(vertices, withTangents, opts))
	return err
}

// WriteTables writes the vertex table, a blank line and the index table.
func WriteTables(w io.Writer, vertices []mesh.Vertex, withTangents bool, indices []uint32, opts Options) error {
	text := Vertices(vertices, withTangents, opts) + "\n" + Indices(indices, opts)
	_, err := io.WriteString(w, text)
	return err
}
