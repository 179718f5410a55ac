package value

import (
	"fmt"

	"github.com/funvibe/dynvec/internal/tag"
)

// TypeMismatchError indicates a typed conversion was requested for an
// element type that does not match the value's discriminator. With a
// correctly generated dispatch table this is unreachable; the accessors
// keep the check as a safety net so a table bug fails instead of
// aliasing data.
type TypeMismatchError struct {
	Want tag.Tag
	Got  tag.Tag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: requested %s elements from a %s value", e.Want, e.Got)
}

func NewTypeMismatchError(want, got tag.Tag) *TypeMismatchError {
	return &TypeMismatchError{Want: want, Got: got}
}

// ShapeMismatchError indicates a matrix conversion was requested on a
// value that carries no matrix shape.
type ShapeMismatchError struct {
	Tag    tag.Tag
	Length int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s value of length %d carries no matrix shape", e.Tag, e.Length)
}

func NewShapeMismatchError(t tag.Tag, length int) *ShapeMismatchError {
	return &ShapeMismatchError{Tag: t, Length: length}
}

// UnrecognizedTagError indicates a discriminator outside the eight-tag
// universe, which points at a host runtime built against a different
// value representation.
type UnrecognizedTagError struct {
	Code uint8
}

func (e *UnrecognizedTagError) Error() string {
	return fmt.Sprintf("unrecognized tag code %d: value representation unknown to this dispatcher", e.Code)
}

func NewUnrecognizedTagError(code uint8) *UnrecognizedTagError {
	return &UnrecognizedTagError{Code: code}
}
