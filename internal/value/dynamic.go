package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/tag"
)

// Expr is an opaque expression handle. The host runtime owns its meaning;
// the framework only moves it around and never orders or evaluates it.
type Expr struct {
	Source string
}

// Shape carries matrix dimensions. Its presence on a Dynamic, not the
// tag, decides whether the value is treated as a matrix.
type Shape struct {
	Rows int
	Cols int
}

// Element is the closed universe of Go element types, one per tag:
// Int=int64, Real=float64, Raw=byte, Logical=bool, Complex=complex128,
// String=string, List=Dynamic, Expr=Expr.
type Element interface {
	int64 | float64 | byte | bool | complex128 | string | Dynamic | Expr
}

// Dynamic is the host runtime's type-erased value: a tag discriminator, a
// flat payload and optional matrix shape. The framework reads the tag and
// builds new Dynamics; it never rewrites the tag of an existing one.
// The zero Dynamic is the null value.
type Dynamic struct {
	tag     tag.Tag
	payload any // the []E slice matching tag, nil for null
	length  int
	shape   *Shape
}

// Null returns the null value, used as the result slot on every failure
// path.
func Null() Dynamic {
	return Dynamic{}
}

func (d Dynamic) IsNull() bool {
	return d.payload == nil
}

// Tag returns the value's discriminator. Total: null values report Int,
// invalid host codes are returned as-is for the dispatcher to reject.
func (d Dynamic) Tag() tag.Tag {
	return d.tag
}

// TagCode returns the raw discriminator byte, for diagnostics on values
// whose tag lies outside the universe.
func (d Dynamic) TagCode() uint8 {
	return uint8(d.tag)
}

// Len returns the flat element count, regardless of shape.
func (d Dynamic) Len() int {
	return d.length
}

// Shape returns the matrix dimensions and whether the value carries any.
func (d Dynamic) Shape() (Shape, bool) {
	if d.shape == nil {
		return Shape{}, false
	}
	return *d.shape, true
}

func (d Dynamic) IsMatrix() bool {
	return d.shape != nil
}

// TagFor returns the tag a given element type maps to.
func TagFor[E Element]() tag.Tag {
	var zero E
	switch any(zero).(type) {
	case int64:
		return tag.Int
	case float64:
		return tag.Real
	case byte:
		return tag.Raw
	case bool:
		return tag.Logical
	case complex128:
		return tag.Complex
	case string:
		return tag.String
	case Dynamic:
		return tag.List
	case Expr:
		return tag.Expr
	}
	panic("unreachable: Element is a closed union")
}

// VectorOf builds a vector-shaped Dynamic owning a copy of elems.
func VectorOf[E Element](elems []E) Dynamic {
	return FromVector(container.Vector[E](elems))
}

// MatrixOf builds a matrix-shaped Dynamic owning a copy of elems, laid
// out column-major.
func MatrixOf[E Element](elems []E, rows, cols int) (Dynamic, error) {
	m, err := container.NewMatrix(container.Vector[E](elems), rows, cols)
	if err != nil {
		return Null(), err
	}
	return FromMatrix(m), nil
}

// FromVector converts a typed vector back into an owned Dynamic. Total.
func FromVector[E Element](v container.Vector[E]) Dynamic {
	return Dynamic{
		tag:     TagFor[E](),
		payload: []E(v.Clone()),
		length:  v.Len(),
	}
}

// FromMatrix converts a typed matrix back into an owned Dynamic carrying
// the matrix's shape. Total.
func FromMatrix[E Element](m container.Matrix[E]) Dynamic {
	d := FromVector(m.Elems)
	d.shape = &Shape{Rows: m.Rows, Cols: m.Cols}
	return d
}

// FromDiscriminator is the low-level host entry: the host marshals its
// own tag code and payload slice without going through the typed
// constructors. No validation happens here; the dispatcher and accessors
// reject inconsistent values when they are used.
func FromDiscriminator(code uint8, payload any, shape *Shape) Dynamic {
	d := Dynamic{tag: tag.Tag(code), payload: payload, length: payloadLen(payload)}
	if shape != nil {
		s := *shape
		d.shape = &s
	}
	return d
}

func payloadLen(payload any) int {
	switch p := payload.(type) {
	case []int64:
		return len(p)
	case []float64:
		return len(p)
	case []byte:
		return len(p)
	case []bool:
		return len(p)
	case []complex128:
		return len(p)
	case []string:
		return len(p)
	case []Dynamic:
		return len(p)
	case []Expr:
		return len(p)
	default:
		return 0
	}
}

// Inspect returns a printable representation for diagnostics.
func (d Dynamic) Inspect() string {
	if d.IsNull() {
		return "Null"
	}
	var sb strings.Builder
	sb.WriteString(d.tag.String())
	if d.shape != nil {
		fmt.Fprintf(&sb, "[%dx%d]", d.shape.Rows, d.shape.Cols)
	} else {
		fmt.Fprintf(&sb, "[%d]", d.length)
	}
	sb.WriteString("(")
	for i, s := range d.elementStrings() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s)
	}
	sb.WriteString(")")
	return sb.String()
}

func (d Dynamic) elementStrings() []string {
	out := make([]string, 0, d.length)
	switch p := d.payload.(type) {
	case []int64:
		for _, e := range p {
			out = append(out, strconv.FormatInt(e, 10))
		}
	case []float64:
		for _, e := range p {
			out = append(out, strconv.FormatFloat(e, 'g', -1, 64))
		}
	case []byte:
		for _, e := range p {
			out = append(out, fmt.Sprintf("%02x", e))
		}
	case []bool:
		for _, e := range p {
			out = append(out, strconv.FormatBool(e))
		}
	case []complex128:
		for _, e := range p {
			out = append(out, strconv.FormatComplex(e, 'g', -1, 128))
		}
	case []string:
		out = append(out, p...)
	case []Dynamic:
		for _, e := range p {
			out = append(out, e.Inspect())
		}
	case []Expr:
		for _, e := range p {
			out = append(out, e.Source)
		}
	default:
		out = append(out, fmt.Sprintf("<%T>", d.payload))
	}
	return out
}
