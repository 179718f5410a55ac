package value

import (
	"errors"
	"testing"

	"github.com/funvibe/dynvec/internal/tag"
)

func TestTagFor(t *testing.T) {
	tests := []struct {
		got  tag.Tag
		want tag.Tag
	}{
		{TagFor[int64](), tag.Int},
		{TagFor[float64](), tag.Real},
		{TagFor[byte](), tag.Raw},
		{TagFor[bool](), tag.Logical},
		{TagFor[complex128](), tag.Complex},
		{TagFor[string](), tag.String},
		{TagFor[Dynamic](), tag.List},
		{TagFor[Expr](), tag.Expr},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("TagFor = %s, want %s", tt.got, tt.want)
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	d := VectorOf([]int64{1, 2, 3})
	if d.Tag() != tag.Int || d.Len() != 3 || d.IsMatrix() {
		t.Fatalf("VectorOf: tag=%s len=%d matrix=%t", d.Tag(), d.Len(), d.IsMatrix())
	}
	vec, err := AsVector[int64](d)
	if err != nil {
		t.Fatalf("AsVector: %v", err)
	}
	if vec.Len() != 3 || vec[0] != 1 || vec[2] != 3 {
		t.Errorf("AsVector = %v, want [1 2 3]", vec)
	}
}

func TestAsVectorCopies(t *testing.T) {
	d := VectorOf([]string{"a", "b"})
	vec, err := AsVector[string](d)
	if err != nil {
		t.Fatalf("AsVector: %v", err)
	}
	vec[0] = "mutated"
	again, _ := AsVector[string](d)
	if again[0] != "a" {
		t.Errorf("mutating the converted vector reached the Dynamic: got %s, want a", again[0])
	}
}

func TestAsVectorTypeMismatch(t *testing.T) {
	d := VectorOf([]float64{1.5})
	_, err := AsVector[int64](d)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("AsVector[int64] on Real value: err = %v, want TypeMismatchError", err)
	}
	if tm.Want != tag.Int || tm.Got != tag.Real {
		t.Errorf("TypeMismatchError = want %s got %s", tm.Want, tm.Got)
	}
}

func TestAsVectorLyingDiscriminator(t *testing.T) {
	// Discriminator claims Int but the payload holds strings.
	d := FromDiscriminator(uint8(tag.Int), []string{"x"}, nil)
	_, err := AsVector[int64](d)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("lying payload: err = %v, want TypeMismatchError", err)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	d, err := MatrixOf([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("MatrixOf: %v", err)
	}
	if !d.IsMatrix() || d.Len() != 6 {
		t.Fatalf("MatrixOf: matrix=%t len=%d", d.IsMatrix(), d.Len())
	}
	shape, ok := d.Shape()
	if !ok || shape.Rows != 2 || shape.Cols != 3 {
		t.Fatalf("Shape() = %+v, %t", shape, ok)
	}
	m, err := AsMatrix[int64](d)
	if err != nil {
		t.Fatalf("AsMatrix: %v", err)
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %d, want 6", m.At(1, 2))
	}
}

func TestMatrixOfBadDims(t *testing.T) {
	if _, err := MatrixOf([]int64{1, 2, 3}, 2, 2); err == nil {
		t.Error("MatrixOf(3 elems, 2, 2) succeeded, want error")
	}
}

func TestAsMatrixShapeMismatch(t *testing.T) {
	d := VectorOf([]int64{1, 2, 3})
	_, err := AsMatrix[int64](d)
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("AsMatrix on vector: err = %v, want ShapeMismatchError", err)
	}
	if sm.Tag != tag.Int || sm.Length != 3 {
		t.Errorf("ShapeMismatchError = %+v", sm)
	}
}

func TestMatrixConvertsAsVector(t *testing.T) {
	// A matrix is still a flat vector; the vector accessor ignores shape.
	d, _ := MatrixOf([]float64{1, 2, 3, 4}, 2, 2)
	vec, err := AsVector[float64](d)
	if err != nil {
		t.Fatalf("AsVector on matrix value: %v", err)
	}
	if vec.Len() != 4 {
		t.Errorf("AsVector on matrix: len = %d, want 4", vec.Len())
	}
}

func TestNull(t *testing.T) {
	n := Null()
	if !n.IsNull() {
		t.Error("Null().IsNull() = false")
	}
	if VectorOf([]int64{}).IsNull() {
		t.Error("empty Int vector reports null")
	}
	if n.Inspect() != "Null" {
		t.Errorf("Null().Inspect() = %s", n.Inspect())
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		d    Dynamic
		want string
	}{
		{"ints", VectorOf([]int64{1, 2}), "Int[2](1, 2)"},
		{"logicals", VectorOf([]bool{true, false}), "Logical[2](true, false)"},
		{"raw", VectorOf([]byte{0x0a, 0xff}), "Raw[2](0a, ff)"},
		{"exprs", VectorOf([]Expr{{Source: "x + 1"}}), "Expr[1](x + 1)"},
		{"list", VectorOf([]Dynamic{VectorOf([]int64{7})}), "List[1](Int[1](7))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Inspect(); got != tt.want {
				t.Errorf("Inspect() = %s, want %s", got, tt.want)
			}
		})
	}

	m, _ := MatrixOf([]int64{1, 2, 3, 4}, 2, 2)
	if got := m.Inspect(); got != "Int[2x2](1, 2, 3, 4)" {
		t.Errorf("matrix Inspect() = %s", got)
	}
}
