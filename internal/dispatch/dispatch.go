// Package dispatch resolves a dynamic value's runtime tag to the matching
// statically-typed instantiation of an algorithm, converts the value,
// invokes the arm and hands back the algorithm's result.
//
// The two entry points are deliberately asymmetric about shape: any value
// has a flat length, so matrix-shaped values flow through Vector
// unchanged, but Matrix requires shape metadata and fails with
// ShapeMismatch when it is absent.
package dispatch

import (
	"github.com/funvibe/dynvec/internal/tag"
	"github.com/funvibe/dynvec/internal/value"
)

// Vector dispatches v through the vector algorithm fns. Extra arguments
// are forwarded to the selected arm (at most MaxExtra of them).
// TypeMismatch, ShapeMismatch and UnsupportedTag propagate unchanged; a
// discriminator outside the universe yields UnrecognizedTag and a null
// result instead of reaching any arm.
func Vector(v value.Dynamic, fns VectorFuncs, extra ...any) (value.Dynamic, error) {
	args, err := PackArgs(extra...)
	if err != nil {
		return value.Null(), err
	}
	return VectorArgs(v, fns, args)
}

// VectorArgs is Vector with a pre-packed argument pack. The bound
// adapters use it to avoid re-validating captured arguments.
func VectorArgs(v value.Dynamic, fns VectorFuncs, args Args) (value.Dynamic, error) {
	switch v.Tag() {
	case tag.Int:
		return runVector(v, fns.Int, args)
	case tag.Real:
		return runVector(v, fns.Real, args)
	case tag.Raw:
		return runVector(v, fns.Raw, args)
	case tag.Logical:
		return runVector(v, fns.Logical, args)
	case tag.Complex:
		return runVector(v, fns.Complex, args)
	case tag.String:
		return runVector(v, fns.String, args)
	case tag.List:
		return runVector(v, fns.List, args)
	case tag.Expr:
		return runVector(v, fns.Expr, args)
	default:
		return value.Null(), value.NewUnrecognizedTagError(v.TagCode())
	}
}

// Matrix dispatches v through the matrix algorithm fns. The value must
// carry matrix shape metadata.
func Matrix(v value.Dynamic, fns MatrixFuncs, extra ...any) (value.Dynamic, error) {
	args, err := PackArgs(extra...)
	if err != nil {
		return value.Null(), err
	}
	return MatrixArgs(v, fns, args)
}

// MatrixArgs is Matrix with a pre-packed argument pack.
func MatrixArgs(v value.Dynamic, fns MatrixFuncs, args Args) (value.Dynamic, error) {
	switch v.Tag() {
	case tag.Int:
		return runMatrix(v, fns.Int, args)
	case tag.Real:
		return runMatrix(v, fns.Real, args)
	case tag.Raw:
		return runMatrix(v, fns.Raw, args)
	case tag.Logical:
		return runMatrix(v, fns.Logical, args)
	case tag.Complex:
		return runMatrix(v, fns.Complex, args)
	case tag.String:
		return runMatrix(v, fns.String, args)
	case tag.List:
		return runMatrix(v, fns.List, args)
	case tag.Expr:
		return runMatrix(v, fns.Expr, args)
	default:
		return value.Null(), value.NewUnrecognizedTagError(v.TagCode())
	}
}

// runVector executes one arm: the unset-arm check comes before
// conversion, so declined tags never pay for a copy.
func runVector[E value.Element](v value.Dynamic, arm VectorArm[E], args Args) (value.Dynamic, error) {
	if arm == nil {
		return value.Null(), NewUnsupportedTagError(v.Tag())
	}
	vec, err := value.AsVector[E](v)
	if err != nil {
		return value.Null(), err
	}
	return arm(vec, args)
}

func runMatrix[E value.Element](v value.Dynamic, arm MatrixArm[E], args Args) (value.Dynamic, error) {
	if arm == nil {
		return value.Null(), NewUnsupportedTagError(v.Tag())
	}
	m, err := value.AsMatrix[E](v)
	if err != nil {
		return value.Null(), err
	}
	return arm(m, args)
}
