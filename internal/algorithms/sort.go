package algorithms

import (
	"cmp"
	"slices"

	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// Sorting is defined for five of the eight kinds. Raw bytes, opaque list
// elements and opaque expressions have no usable element order, so their
// arms stay unset and those tags fail with UnsupportedTag instead of
// producing a meaningless order.

func sortOrdered[E int64 | float64 | string](v container.Vector[E], _ dispatch.Args) (value.Dynamic, error) {
	slices.Sort(v)
	return value.FromVector(v), nil
}

// sortBools orders false before true, in place.
func sortBools(v container.Vector[bool]) {
	trues := 0
	for _, b := range v {
		if b {
			trues++
		}
	}
	for i := range v {
		v[i] = i >= v.Len()-trues
	}
}

func sortLogical(v container.Vector[bool], _ dispatch.Args) (value.Dynamic, error) {
	sortBools(v)
	return value.FromVector(v), nil
}

// complexLess orders by real part, then imaginary part.
func complexLess(a, b complex128) int {
	if c := cmp.Compare(real(a), real(b)); c != 0 {
		return c
	}
	return cmp.Compare(imag(a), imag(b))
}

func sortComplex(v container.Vector[complex128], _ dispatch.Args) (value.Dynamic, error) {
	slices.SortFunc(v, complexLess)
	return value.FromVector(v), nil
}

// Sort sorts a vector ascending in place (on the dispatch-owned copy).
var Sort = dispatch.VectorFuncs{
	Int:     sortOrdered[int64],
	Real:    sortOrdered[float64],
	Logical: sortLogical,
	Complex: sortComplex,
	String:  sortOrdered[string],
}

func sortShaped[E int64 | float64 | string](m container.Matrix[E], _ dispatch.Args) (value.Dynamic, error) {
	slices.Sort(m.Elems)
	return value.FromMatrix(m), nil
}

func sortShapedLogical(m container.Matrix[bool], _ dispatch.Args) (value.Dynamic, error) {
	sortBools(m.Elems)
	return value.FromMatrix(m), nil
}

func sortShapedComplex(m container.Matrix[complex128], _ dispatch.Args) (value.Dynamic, error) {
	slices.SortFunc(m.Elems, complexLess)
	return value.FromMatrix(m), nil
}

// SortShape sorts a matrix's flat column-major storage ascending while
// preserving its dimensions.
var SortShape = dispatch.MatrixFuncs{
	Int:     sortShaped[int64],
	Real:    sortShaped[float64],
	Logical: sortShapedLogical,
	Complex: sortShapedComplex,
	String:  sortShaped[string],
}
