// Package algorithms carries the illustrative algorithms the dispatcher
// ships with: each is one generic body instantiated across the tag
// universe, plus the per-tag omissions that turn unsupportable element
// kinds into structured failures.
package algorithms

import (
	"github.com/funvibe/dynvec/internal/config"
	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// headTail keeps the first and last n elements. n comes from the first
// extra argument and defaults to config.DefaultHeadTailCount. Oversized n
// clamps to floor(len/2) instead of failing: a count parameter whose
// natural use rarely needs caller-side validation should not surprise.
func headTail[E value.Element](v container.Vector[E], args dispatch.Args) (value.Dynamic, error) {
	n := int(args.Int(0, config.DefaultHeadTailCount))
	if half := v.Len() / 2; n > half {
		n = half
	}
	if n < 0 {
		n = 0
	}
	out := make(container.Vector[E], 0, 2*n)
	out = append(out, v[:n]...)
	out = append(out, v[v.Len()-n:]...)
	return value.FromVector(out), nil
}

// HeadTail is tag-complete: the generic body holds for every element kind.
var HeadTail = dispatch.VectorFuncs{
	Int:     headTail[int64],
	Real:    headTail[float64],
	Raw:     headTail[byte],
	Logical: headTail[bool],
	Complex: headTail[complex128],
	String:  headTail[string],
	List:    headTail[value.Dynamic],
	Expr:    headTail[value.Expr],
}
