package literal

import (
	"bytes"
	gomath "math"
	"strings"
	"testing"

	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1.f"},
		{1.456, "1.456f"},
		{0.0, "0.f"},
		{-0.5, "-0.5f"},
		{10, "10.f"},
		{0.8660254, "0.866025f"},
		{-0.4330127, "-0.433013f"},
		{gomath.Copysign(0, -1), "-0.f"},
		{4e-7, "0.f"},
		{-4e-7, "-0.f"},
		{0.19868, "0.19868f"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in, "f"); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := FormatFloat(2.5, ""); got != "2.5" {
		t.Errorf("FormatFloat without suffix = %q, want 2.5", got)
	}
}

func TestIndices(t *testing.T) {
	got := Indices([]uint32{0, 1, 6, 1, 2, 6, 10, 11, 12, 13}, DefaultOptions())
	want := `    static const std::vector<unsigned int> expectedIndices = {
         0,  1,  6,
         1,  2,  6,
        10, 11, 12,
        13
    };
`
	if got != want {
		t.Errorf("Indices() =\n%s\nwant\n%s", got, want)
	}
}

func TestIndicesGrouping(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for k := 1; k <= 4; k++ {
			indices := make([]uint32, n)
			for i := range indices {
				indices[i] = uint32(i)
			}
			opts := DefaultOptions()
			opts.IndicesPerLine = k

			lines := strings.Split(strings.TrimSuffix(Indices(indices, opts), "\n"), "\n")
			body := lines[1 : len(lines)-1]

			wantLines := (n + k - 1) / k
			if len(body) != wantLines {
				t.Fatalf("n=%d k=%d: %d lines, want %d", n, k, len(body), wantLines)
			}

			last := body[len(body)-1]
			if strings.HasSuffix(last, ",") {
				t.Errorf("n=%d k=%d: last line %q has trailing comma", n, k, last)
			}
			wantLast := n % k
			if wantLast == 0 {
				wantLast = k
			}
			if got := len(strings.Split(strings.TrimSpace(last), ",")); got != wantLast {
				t.Errorf("n=%d k=%d: last line has %d entries, want %d", n, k, got, wantLast)
			}
			for _, l := range body[:len(body)-1] {
				if !strings.HasSuffix(l, ",") {
					t.Errorf("n=%d k=%d: line %q missing trailing comma", n, k, l)
				}
			}
		}
	}
}

func TestIndicesEmpty(t *testing.T) {
	got := Indices(nil, DefaultOptions())
	want := "    static const std::vector<unsigned int> expectedIndices = {\n    };\n"
	if got != want {
		t.Errorf("Indices(nil) = %q, want %q", got, want)
	}
}

func testVertices() []mesh.Vertex {
	return []mesh.Vertex{
		{
			Position: math.V3(0, -0.5, 0.866025),
			TexCoord: math.V2(0.5, 1),
			Normal:   math.V3(0, -1, 0),
		},
		{
			Position: math.V3(0.75, -0.5, -0.433013),
			TexCoord: math.V2(0, 0),
			Normal:   math.V3(0, -1, 0),
		},
	}
}

func TestVertices(t *testing.T) {
	got := Vertices(testVertices(), false, DefaultOptions())
	want := `    static const std::vector<Vertex> expectedVertices = {
          // POSITION                   // TEX COORD   // NORMAL
        { {   0.f, -0.5f,  0.866025f }, { 0.5f, 1.f }, { 0.f, -1.f, 0.f } },
        { { 0.75f, -0.5f, -0.433013f }, {  0.f, 0.f }, { 0.f, -1.f, 0.f } },
    };
`
	if got != want {
		t.Errorf("Vertices() =\n%s\nwant\n%s", got, want)
	}
}

func TestVerticesHeaderLead(t *testing.T) {
	opts := DefaultOptions()
	opts.HeaderLead = true
	got := Vertices(testVertices(), true, opts)
	want := `    static const std::vector<Vertex> expectedVertices = {
        // POSITION                   // TEX COORD   // NORMAL           // TANGENT         // BITANGENT
        { {   0.f, -0.5f,  0.866025f }, { 0.5f, 1.f }, { 0.f, -1.f, 0.f }, { 0.f, 0.f, 0.f }, { 0.f, 0.f, 0.f } },
        { { 0.75f, -0.5f, -0.433013f }, {  0.f, 0.f }, { 0.f, -1.f, 0.f }, { 0.f, 0.f, 0.f }, { 0.f, 0.f, 0.f } },
    };
`
	if got != want {
		t.Errorf("Vertices() =\n%s\nwant\n%s", got, want)
	}
}

func TestVerticesAlignment(t *testing.T) {
	vs := testVertices()
	vs = append(vs, mesh.Vertex{
		Position:  math.V3(-123.5, 0.000001, 7),
		TexCoord:  math.V2(0.066987, 0.25),
		Normal:    math.V3(0.612372, 0.707107, 0.353553),
		Tangent:   math.V3(0.5, 0, -0.866025),
		Bitangent: math.V3(0.175633, -0.97922, 0.101401),
	})

	out := Vertices(vs, true, DefaultOptions())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	rows := lines[2 : len(lines)-1]
	if len(rows) != len(vs) {
		t.Fatalf("got %d rows, want %d", len(rows), len(vs))
	}

	// Every row must place each block brace at the same column.
	ref := braceColumns(rows[0])
	if len(ref) != 12 {
		t.Fatalf("expected 12 braces per row (outer + 5 blocks), got %d in %q", len(ref), rows[0])
	}
	for _, r := range rows[1:] {
		if len(r) != len(rows[0]) {
			t.Errorf("row width %d differs from %d: %q", len(r), len(rows[0]), r)
		}
		cols := braceColumns(r)
		for i := range ref {
			if cols[i] != ref[i] {
				t.Errorf("brace %d at column %d, want %d in %q", i, cols[i], ref[i], r)
			}
		}
	}

	header := lines[1]
	for i, label := range Labels {
		col := strings.Index(header, "// "+label)
		if col != ref[1+2*i] {
			t.Errorf("label %s at column %d, want %d", label, col, ref[1+2*i])
		}
	}
}

func braceColumns(s string) []int {
	var cols []int
	for i, c := range s {
		if c == '{' || c == '}' {
			cols = append(cols, i)
		}
	}
	return cols
}

func TestVerticesEmpty(t *testing.T) {
	got := Vertices(nil, true, DefaultOptions())
	want := "    static const std::vector<Vertex> expectedVertices = {\n    };\n"
	if got != want {
		t.Errorf("Vertices(nil) = %q, want %q", got, want)
	}
}

func TestWriteTables(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTables(&buf, testVertices(), false, []uint32{0, 1, 0}, DefaultOptions()); err != nil {
		t.Fatalf("WriteTables failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "    };\n\n    static const std::vector<unsigned int> expectedIndices = {\n") {
		t.Errorf("tables not separated by a blank line:\n%s", out)
	}
	if !strings.HasSuffix(out, "        0, 1, 0\n    };\n") {
		t.Errorf("unexpected index block:\n%s", out)
	}
}

func TestCustomOptions(t *testing.T) {
	opts := Options{
		Indent:         "",
		RowIndent:      "\t",
		FloatSuffix:    "",
		IndicesPerLine: 6,
		VertexDecl:     "static const Vertex vertices[]",
		IndexDecl:      "static const unsigned int indices[]",
	}
	got := Indices([]uint32{1, 2, 3, 4, 5, 6, 7}, opts)
	want := "static const unsigned int indices[] = {\n\t1, 2, 3, 4, 5, 6,\n\t7\n};\n"
	if got != want {
		t.Errorf("Indices() = %q, want %q", got, want)
	}

	out := Vertices(testVertices()[:1], false, opts)
	if !strings.Contains(out, "\t{ { 0., -0.5, 0.866025 }, { 0.5, 1. }, { 0., -1., 0. } },\n") {
		t.Errorf("unexpected suffix-less row:\n%s", out)
	}
}

func TestWriteBitangents(t *testing.T) {
	m := mesh.New()
	m.Vertices = []mesh.Vertex{
		{Normal: math.V3(0, 0, 1), Tangent: math.V3(1, 0, 0), Fields: mesh.FieldNormal | mesh.FieldTangent},
		{Normal: math.V3(0, 0, 1), Fields: mesh.FieldNormal},
	}
	mesh.DeriveBitangents(m)

	var buf bytes.Buffer
	if err := WriteBitangents(&buf, m, DefaultOptions()); err != nil {
		t.Fatalf("WriteBitangents failed: %v", err)
	}
	want := "(Handedness: true)\n" +
		"bitangent[0] = {        0.f,        1.f,        0.f }\n" +
		"[1] normal or tangent is empty\n"
	if buf.String() != want {
		t.Errorf("WriteBitangents() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteTangentReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTangentReport(&buf, math.V3(-0.19317, 0, 0.334579), []math.Vec3{math.V3(1, 0, 0)})
	if err != nil {
		t.Fatalf("WriteTangentReport failed: %v", err)
	}
	want := "Tangent = -0.193170, 0.000000, 0.334579\nTangent 0 = 1.000000, 0.000000, 0.000000\n"
	if buf.String() != want {
		t.Errorf("WriteTangentReport() = %q, want %q", buf.String(), want)
	}
}
