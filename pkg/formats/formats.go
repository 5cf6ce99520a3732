// Package formats provides parsers for the mesh fixture inputs: the JSON mesh
// document and the static-array literal text pasted back from test sources.
package formats

import (
	"errors"
	"fmt"

	"github.com/Faultbox/fixturegen/pkg/mesh"
)

// Parser errors.
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrUnbalanced   = errors.New("unbalanced braces")
	ErrBadLayout    = errors.New("unrecognised array layout")
	ErrBadBlock     = errors.New("malformed vertex block")
	ErrBadIndex     = errors.New("invalid index")
	ErrUnexpected   = errors.New("unexpected character")
	ErrInvalidJSON  = errors.New("invalid mesh JSON")
	ErrFieldArity   = errors.New("wrong number of components")
	ErrMissingField = errors.New("missing field")
)

// Warning is a per-vertex problem that does not stop parsing. The affected
// field is treated as absent.
type Warning struct {
	Vertex int
	Field  mesh.Field
	Err    error
}

func (w Warning) Error() string {
	return fmt.Sprintf("vertex %d %s: %v", w.Vertex, w.Field, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}
