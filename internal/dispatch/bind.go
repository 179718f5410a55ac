package dispatch

import (
	"github.com/funvibe/dynvec/internal/container"
	"github.com/funvibe/dynvec/internal/value"
)

// Partial application: closing over extra arguments ahead of time so an
// algorithm can be driven through a contract that only passes the
// container. Binding is purely mechanical; for identical inputs the
// bound and direct paths must produce identical results.

// BindVector returns a copy of fns whose arms carry extra captured at
// bind time, ignoring whatever arguments arrive at dispatch time. Unset
// arms stay unset, so declined tags still fail with UnsupportedTag.
func BindVector(fns VectorFuncs, extra ...any) (VectorFuncs, error) {
	args, err := PackArgs(extra...)
	if err != nil {
		return VectorFuncs{}, err
	}
	return VectorFuncs{
		Int:     bindVectorArm(fns.Int, args),
		Real:    bindVectorArm(fns.Real, args),
		Raw:     bindVectorArm(fns.Raw, args),
		Logical: bindVectorArm(fns.Logical, args),
		Complex: bindVectorArm(fns.Complex, args),
		String:  bindVectorArm(fns.String, args),
		List:    bindVectorArm(fns.List, args),
		Expr:    bindVectorArm(fns.Expr, args),
	}, nil
}

// BindMatrix is BindVector for matrix algorithms.
func BindMatrix(fns MatrixFuncs, extra ...any) (MatrixFuncs, error) {
	args, err := PackArgs(extra...)
	if err != nil {
		return MatrixFuncs{}, err
	}
	return MatrixFuncs{
		Int:     bindMatrixArm(fns.Int, args),
		Real:    bindMatrixArm(fns.Real, args),
		Raw:     bindMatrixArm(fns.Raw, args),
		Logical: bindMatrixArm(fns.Logical, args),
		Complex: bindMatrixArm(fns.Complex, args),
		String:  bindMatrixArm(fns.String, args),
		List:    bindMatrixArm(fns.List, args),
		Expr:    bindMatrixArm(fns.Expr, args),
	}, nil
}

func bindVectorArm[E value.Element](arm VectorArm[E], args Args) VectorArm[E] {
	if arm == nil {
		return nil
	}
	return func(v container.Vector[E], _ Args) (value.Dynamic, error) {
		return arm(v, args)
	}
}

func bindMatrixArm[E value.Element](arm MatrixArm[E], args Args) MatrixArm[E] {
	if arm == nil {
		return nil
	}
	return func(m container.Matrix[E], _ Args) (value.Dynamic, error) {
		return arm(m, args)
	}
}
