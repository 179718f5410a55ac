package tag

import (
	"fmt"
	"strings"
)

// Tag identifies the element kind of a dynamic value.
type Tag uint8

// The universe is closed: exactly eight kinds, in a fixed order. The
// dispatch table is generated from this order, so it must stay stable.
const (
	Int Tag = iota
	Real
	Raw
	Logical
	Complex
	String
	List
	Expr

	count // sentinel, keep last
)

var names = [count]string{
	Int:     "Int",
	Real:    "Real",
	Raw:     "Raw",
	Logical: "Logical",
	Complex: "Complex",
	String:  "String",
	List:    "List",
	Expr:    "Expr",
}

// Universe returns all tags in dispatch order.
func Universe() []Tag {
	out := make([]Tag, count)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}

// Valid reports whether t is one of the eight recognized tags. A host
// runtime built against a different tag universe can hand us codes
// outside this range; those must never reach an algorithm.
func (t Tag) Valid() bool {
	return t < count
}

func (t Tag) String() string {
	if t.Valid() {
		return names[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// FromName resolves a tag by its display name, case-insensitively.
// Used by scenario files and host configuration.
func FromName(name string) (Tag, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Tag(i), true
		}
	}
	return 0, false
}
