package dispatch

import (
	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/value"
)

// VectorArm is one instantiation of a vector algorithm for element type E.
// The container it receives is an owned copy, free to mutate; the result
// Dynamic may carry any tag, so reductions can return Int regardless of E.
type VectorArm[E value.Element] func(container.Vector[E], Args) (value.Dynamic, error)

// MatrixArm is the matrix-shaped counterpart of VectorArm.
type MatrixArm[E value.Element] func(container.Matrix[E], Args) (value.Dynamic, error)

// VectorFuncs is a vector algorithm: the closed eight-arm dispatch table,
// one statically-typed field per tag. Each field's signature is checked
// against its element type at compile time, so a wrong-container mistake
// cannot build. A nil arm declines its tag, which dispatch reports as
// UnsupportedTag without running anything.
//
// Authors with one generic body fill every arm with a per-type
// instantiation of the same function; authors with per-tag behavior
// override individual fields, and leave unsupportable tags unset.
type VectorFuncs struct {
	Int     VectorArm[int64]
	Real    VectorArm[float64]
	Raw     VectorArm[byte]
	Logical VectorArm[bool]
	Complex VectorArm[complex128]
	String  VectorArm[string]
	List    VectorArm[value.Dynamic]
	Expr    VectorArm[value.Expr]
}

// MatrixFuncs is the matrix-shaped dispatch table, same contract as
// VectorFuncs over Matrix containers.
type MatrixFuncs struct {
	Int     MatrixArm[int64]
	Real    MatrixArm[float64]
	Raw     MatrixArm[byte]
	Logical MatrixArm[bool]
	Complex MatrixArm[complex128]
	String  MatrixArm[string]
	List    MatrixArm[value.Dynamic]
	Expr    MatrixArm[value.Expr]
}
