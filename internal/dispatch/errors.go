package dispatch

import (
	"fmt"

	"github.com/funvibe/dynvec/internal/tag"
)

// UnsupportedTagError indicates the algorithm's author declined the
// value's tag by leaving its arm unset. A structured, intentional
// failure: the generic body never ran.
type UnsupportedTagError struct {
	Tag tag.Tag
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported tag: algorithm declines %s elements", e.Tag)
}

func NewUnsupportedTagError(t tag.Tag) *UnsupportedTagError {
	return &UnsupportedTagError{Tag: t}
}
