package literal

import (
	"io"
	"strconv"
	"strings"
)

// Indices renders the index table, IndicesPerLine values per line, every value
// right-justified to the widest index. All lines but the last end with a comma.
func Indices(indices []uint32, opts Options) string {
	strs := make([]string, len(indices))
	width := 0
	for i, idx := range indices {
		strs[i] = strconv.FormatUint(uint64(idx), 10)
		width = max(width, len(strs[i]))
	}

	var b strings.Builder
	opts.openDecl(&b, opts.IndexDecl)

	perLine := opts.perLine()
	for i := 0; i < len(strs); i += perLine {
		end := min(i+perLine, len(strs))
		chunk := make([]string, 0, end-i)
		for _, s := range strs[i:end] {
			chunk = append(chunk, padLeft(s, width))
		}
		b.WriteString(opts.RowIndent)
		b.WriteString(strings.Join(chunk, ", "))
		if end < len(strs) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	opts.closeDecl(&b)
	return b.String()
}

// WriteIndices writes the index table to w.
func WriteIndices(w io.Writer, indices []uint32, opts Options) error {
	_, err := io.WriteString(w, Indices(indices, opts))
	return err
}
