package algorithms

import (
	"fmt"
	"strconv"

	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

func showElem(e any) string {
	switch x := e.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case byte:
		return fmt.Sprintf("%02x", x)
	case bool:
		return strconv.FormatBool(x)
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128)
	case string:
		return x
	case value.Dynamic:
		return x.Inspect()
	case value.Expr:
		return x.Source
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// show is a reduction to String: one formatted cell per element. The CLI
// uses it to render any value without caring about its tag.
func show[E value.Element](v container.Vector[E], _ dispatch.Args) (value.Dynamic, error) {
	out := make([]string, v.Len())
	for i, e := range v {
		out[i] = showElem(e)
	}
	return value.VectorOf(out), nil
}

var Show = dispatch.VectorFuncs{
	Int:     show[int64],
	Real:    show[float64],
	Raw:     show[byte],
	Logical: show[bool],
	Complex: show[complex128],
	String:  show[string],
	List:    show[value.Dynamic],
	Expr:    show[value.Expr],
}
