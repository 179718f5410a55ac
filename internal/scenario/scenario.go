// Package scenario loads YAML descriptions of dynamic values and the
// dispatch runs to perform on them. It is the CLI's input format and a
// convenient way for a host to stage test data.
package scenario

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/dynvec/internal/tag"
	"github.com/funvibe/dynvec/internal/value"
)

// File is a parsed scenario: named values plus the runs to execute.
type File struct {
	Values []Value `yaml:"values"`
	Runs   []Run   `yaml:"runs"`
}

// Value describes one dynamic value. Rows/Cols > 0 makes it a matrix;
// Data is interpreted according to Tag.
type Value struct {
	Name string `yaml:"name"`
	Tag  string `yaml:"tag"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	Data []any  `yaml:"data"`
}

// Run names an algorithm, the value to feed it and optional extra
// arguments. Matrix selects the matrix dispatch path.
type Run struct {
	Algorithm string `yaml:"algorithm"`
	Value     string `yaml:"value"`
	Matrix    bool   `yaml:"matrix"`
	Args      []any  `yaml:"args"`
}

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(raw)
}

// Parse parses scenario YAML.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("scenario parse error: %w", err)
	}
	return &f, nil
}

// Build converts the declared values into Dynamics, keyed by name.
func (f *File) Build() (map[string]value.Dynamic, error) {
	out := make(map[string]value.Dynamic, len(f.Values))
	for _, v := range f.Values {
		if v.Name == "" {
			return nil, fmt.Errorf("scenario value without a name")
		}
		if _, dup := out[v.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario value %q", v.Name)
		}
		d, err := v.build()
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", v.Name, err)
		}
		out[v.Name] = d
	}
	return out, nil
}

func (v Value) build() (value.Dynamic, error) {
	tg, ok := tag.FromName(v.Tag)
	if !ok {
		return value.Null(), fmt.Errorf("unknown tag %q", v.Tag)
	}
	d, err := buildVector(tg, v.Data)
	if err != nil {
		return value.Null(), err
	}
	if v.Rows == 0 && v.Cols == 0 {
		return d, nil
	}
	return reshape(tg, d, v.Rows, v.Cols)
}

func reshape(tg tag.Tag, d value.Dynamic, rows, cols int) (value.Dynamic, error) {
	switch tg {
	case tag.Int:
		return reshapeAs[int64](d, rows, cols)
	case tag.Real:
		return reshapeAs[float64](d, rows, cols)
	case tag.Raw:
		return reshapeAs[byte](d, rows, cols)
	case tag.Logical:
		return reshapeAs[bool](d, rows, cols)
	case tag.Complex:
		return reshapeAs[complex128](d, rows, cols)
	case tag.String:
		return reshapeAs[string](d, rows, cols)
	case tag.List:
		return reshapeAs[value.Dynamic](d, rows, cols)
	case tag.Expr:
		return reshapeAs[value.Expr](d, rows, cols)
	default:
		return value.Null(), fmt.Errorf("unknown tag %s", tg)
	}
}

func reshapeAs[E value.Element](d value.Dynamic, rows, cols int) (value.Dynamic, error) {
	vec, err := value.AsVector[E](d)
	if err != nil {
		return value.Null(), err
	}
	return value.MatrixOf([]E(vec), rows, cols)
}

// buildVector interprets YAML scalars per tag, the same way the host
// would marshal its own representation.
func buildVector(tg tag.Tag, data []any) (value.Dynamic, error) {
	switch tg {
	case tag.Int:
		return collect(data, asInt)
	case tag.Real:
		return collect(data, asReal)
	case tag.Raw:
		return collect(data, asRawByte)
	case tag.Logical:
		return collect(data, asLogical)
	case tag.Complex:
		return collect(data, asComplex)
	case tag.String:
		return collect(data, asString)
	case tag.List:
		return collect(data, asListElem)
	case tag.Expr:
		return collect(data, asExpr)
	default:
		return value.Null(), fmt.Errorf("unknown tag %s", tg)
	}
}

func collect[E value.Element](data []any, conv func(any) (E, error)) (value.Dynamic, error) {
	elems := make([]E, 0, len(data))
	for i, raw := range data {
		e, err := conv(raw)
		if err != nil {
			return value.Null(), fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return value.VectorOf(elems), nil
}

func asInt(raw any) (int64, error) {
	switch n := raw.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", raw)
	}
}

func asReal(raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected real, got %T", raw)
	}
}

func asRawByte(raw any) (byte, error) {
	n, err := asInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("raw byte %d out of range", n)
	}
	return byte(n), nil
}

func asLogical(raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("expected logical, got %T", raw)
	}
	return b, nil
}

func asComplex(raw any) (complex128, error) {
	switch n := raw.(type) {
	case string:
		c, err := strconv.ParseComplex(n, 128)
		if err != nil {
			return 0, fmt.Errorf("bad complex %q: %w", n, err)
		}
		return c, nil
	case float64:
		return complex(n, 0), nil
	case int:
		return complex(float64(n), 0), nil
	default:
		return 0, fmt.Errorf("expected complex, got %T", raw)
	}
}

func asString(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", raw)
	}
	return s, nil
}

// asListElem infers a nested dynamic from a YAML node: scalars become
// one-element vectors of the matching tag, sequences recurse.
func asListElem(raw any) (value.Dynamic, error) {
	switch e := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.VectorOf([]bool{e}), nil
	case int:
		return value.VectorOf([]int64{int64(e)}), nil
	case int64:
		return value.VectorOf([]int64{e}), nil
	case float64:
		return value.VectorOf([]float64{e}), nil
	case string:
		return value.VectorOf([]string{e}), nil
	case []any:
		return collect(e, asListElem)
	default:
		return value.Null(), fmt.Errorf("cannot infer list element from %T", raw)
	}
}

func asExpr(raw any) (value.Expr, error) {
	s, ok := raw.(string)
	if !ok {
		return value.Expr{}, fmt.Errorf("expected expression source, got %T", raw)
	}
	return value.Expr{Source: s}, nil
}
