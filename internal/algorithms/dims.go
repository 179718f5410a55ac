package algorithms

import (
	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// dims is a matrix reduction returning [rows, cols] as an Int vector.
func dims[E value.Element](m container.Matrix[E], _ dispatch.Args) (value.Dynamic, error) {
	return value.VectorOf([]int64{int64(m.Rows), int64(m.Cols)}), nil
}

var Dims = dispatch.MatrixFuncs{
	Int:     dims[int64],
	Real:    dims[float64],
	Raw:     dims[byte],
	Logical: dims[bool],
	Complex: dims[complex128],
	String:  dims[string],
	List:    dims[value.Dynamic],
	Expr:    dims[value.Expr],
}
