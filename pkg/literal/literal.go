// Package literal renders mesh data as aligned static-array literals that can be
// pasted into native test sources.
package literal

import (
	"strconv"
	"strings"
)

// Default declarations match the fixtures of the shape generator test suite.
const (
	DefaultVertexDecl = "static const std::vector<Vertex> expectedVertices"
	DefaultIndexDecl  = "static const std::vector<unsigned int> expectedIndices"
)

// Options controls declaration names, indentation and number rendering.
type Options struct {
	Indent         string // before the declaration and the closing brace
	RowIndent      string // before every row
	FloatSuffix    string // appended to every float, "f" for C/C++ float literals
	IndicesPerLine int
	VertexDecl     string
	IndexDecl      string

	// HeaderLead starts every block label two columns left of its block, so the
	// first one sits on the row's opening brace.
	HeaderLead bool
}

// DefaultOptions returns the layout used by the fixture test suite.
func DefaultOptions() Options {
	return Options{
		Indent:         "    ",
		RowIndent:      "        ",
		FloatSuffix:    "f",
		IndicesPerLine: 3,
		VertexDecl:     DefaultVertexDecl,
		IndexDecl:      DefaultIndexDecl,
	}
}

func (o Options) perLine() int {
	if o.IndicesPerLine <= 0 {
		return 3
	}
	return o.IndicesPerLine
}

// FormatFloat prints v with six decimals, strips trailing zeros and appends the
// suffix. Integral values keep their decimal point: 1 -> "1.f", 1.456 -> "1.456f".
func FormatFloat(v float64, suffix string) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return s + suffix
}

// padLeft right-justifies s in a field of width characters.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func (o Options) openDecl(b *strings.Builder, decl string) {
	b.WriteString(o.Indent)
	b.WriteString(decl)
	b.WriteString(" = {\n")
}

func (o Options) closeDecl(b *strings.Builder) {
	b.WriteString(o.Indent)
	b.WriteString("};\n")
}
