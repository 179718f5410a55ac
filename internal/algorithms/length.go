package algorithms

import (
	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// length is a reduction: whatever the input tag, the result is an Int
// vector of length one holding the flat element count. Matrix-shaped
// values arriving on the vector path therefore report rows*cols.
func length[E value.Element](v container.Vector[E], _ dispatch.Args) (value.Dynamic, error) {
	return value.VectorOf([]int64{int64(v.Len())}), nil
}

var Length = dispatch.VectorFuncs{
	Int:     length[int64],
	Real:    length[float64],
	Raw:     length[byte],
	Logical: length[bool],
	Complex: length[complex128],
	String:  length[string],
	List:    length[value.Dynamic],
	Expr:    length[value.Expr],
}
