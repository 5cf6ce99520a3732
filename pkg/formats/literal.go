package formats

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

// group is one brace-delimited list. It holds numbers or nested groups.
type group struct {
	nums []token
	kids []*group
	line int
}

func (g *group) leaf() bool { return len(g.kids) == 0 }

// parseGroups builds the brace tree. The returned root is virtual and holds the
// top-level groups.
func parseGroups(toks []token) (*group, error) {
	root := &group{line: 1}
	stack := []*group{root}
	for _, t := range toks {
		top := stack[len(stack)-1]
		switch t.kind {
		case tokLBrace:
			g := &group{line: t.line}
			top.kids = append(top.kids, g)
			stack = append(stack, g)
		case tokRBrace:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: stray '}' at line %d", ErrUnbalanced, t.line)
			}
			stack = stack[:len(stack)-1]
		case tokNumber:
			top.nums = append(top.nums, t)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: '{' at line %d never closed", ErrUnbalanced, stack[len(stack)-1].line)
	}
	return root, nil
}

// isRowList reports whether every group is a row of number-only blocks.
func isRowList(gs []*group) bool {
	if len(gs) == 0 {
		return false
	}
	for _, g := range gs {
		if len(g.nums) > 0 || g.leaf() {
			return false
		}
		for _, k := range g.kids {
			if !k.leaf() {
				return false
			}
		}
	}
	return true
}

// blockSizes is the component count of each vertex block in row order.
var blockSizes = []int{3, 2, 3, 3, 3}

// ParseVertexLiteral parses rows of the form
//
//	{ { px, py, pz }, { u, v }, { nx, ny, nz }, { tx, ty, tz }, { bx, by, bz } },
//
// with or without the enclosing array braces and declaration. Rows carry either
// the first three blocks or all five.
func ParseVertexLiteral(src string) (*mesh.Mesh, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	root, err := parseGroups(toks)
	if err != nil {
		return nil, err
	}
	if len(root.nums) > 0 {
		return nil, fmt.Errorf("%w: number outside braces at line %d", ErrBadLayout, root.nums[0].line)
	}

	rows := root.kids
	if !isRowList(rows) {
		if len(rows) == 1 && isRowList(rows[0].kids) {
			rows = rows[0].kids
		} else {
			return nil, ErrBadLayout
		}
	}

	m := mesh.New()
	m.Vertices = make([]mesh.Vertex, 0, len(rows))
	for r, row := range rows {
		if len(row.kids) != 3 && len(row.kids) != 5 {
			return nil, fmt.Errorf("%w: row %d at line %d has %d blocks, want 3 or 5", ErrBadBlock, r, row.line, len(row.kids))
		}
		for b, blk := range row.kids {
			if len(blk.nums) != blockSizes[b] {
				return nil, fmt.Errorf("%w: row %d at line %d block %d has %d values, want %d",
					ErrBadBlock, r, blk.line, b, len(blk.nums), blockSizes[b])
			}
		}
		m.Vertices = append(m.Vertices, rowVertex(row))
	}
	return m, nil
}

func vec3Of(g *group) math.Vec3 {
	return math.V3(g.nums[0].value, g.nums[1].value, g.nums[2].value)
}

func rowVertex(row *group) mesh.Vertex {
	v := mesh.Vertex{
		Position: vec3Of(row.kids[0]),
		TexCoord: math.V2(row.kids[1].nums[0].value, row.kids[1].nums[1].value),
		Normal:   vec3Of(row.kids[2]),
		Fields:   mesh.FieldPosition | mesh.FieldTexCoord | mesh.FieldNormal,
	}
	if len(row.kids) == 5 {
		v.Tangent = vec3Of(row.kids[3])
		v.Bitangent = vec3Of(row.kids[4])
		v.Set(mesh.FieldTangent | mesh.FieldBitangent)
	}
	return v
}

// ParseIndexLiteral returns every number in src, in order, as an index. Layout
// is ignored; negative or fractional values are rejected.
func ParseIndexLiteral(src string) ([]uint32, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	var indices []uint32
	for _, t := range toks {
		if t.kind != tokNumber {
			continue
		}
		idx, err := strconv.ParseUint(t.text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at line %d", ErrBadIndex, t.text, t.line)
		}
		indices = append(indices, uint32(idx))
	}
	if len(indices) == 0 {
		return nil, ErrEmptyInput
	}
	return indices, nil
}
