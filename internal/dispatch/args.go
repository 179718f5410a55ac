package dispatch

import "fmt"

// MaxExtra caps the extra arguments forwarded to an algorithm. Four is a
// deliberate design choice: real call sites pass one or two, and a fixed
// small cap keeps the forwarding contract explicit.
const MaxExtra = 4

// ErrTooManyExtras is returned when a caller exceeds MaxExtra.
var ErrTooManyExtras = fmt.Errorf("dispatch accepts at most %d extra arguments", MaxExtra)

// Args is the pack of extra caller arguments handed to every algorithm
// arm alongside the converted container.
type Args struct {
	vals []any
}

// PackArgs validates and wraps extra arguments for forwarding.
func PackArgs(extra ...any) (Args, error) {
	if len(extra) > MaxExtra {
		return Args{}, ErrTooManyExtras
	}
	return Args{vals: extra}, nil
}

func (a Args) Len() int {
	return len(a.vals)
}

// At returns the i-th argument, if present.
func (a Args) At(i int) (any, bool) {
	if i < 0 || i >= len(a.vals) {
		return nil, false
	}
	return a.vals[i], true
}

// Int returns the i-th argument as an integer, or def when the argument
// is absent or not integer-shaped. YAML and host marshaling produce
// plain ints, so both int and int64 are accepted.
func (a Args) Int(i int, def int64) int64 {
	v, ok := a.At(i)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	default:
		return def
	}
}

// String returns the i-th argument as a string, or def.
func (a Args) String(i int, def string) string {
	v, ok := a.At(i)
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}
