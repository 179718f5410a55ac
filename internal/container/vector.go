package container

// Vector is an ordered, length-indexed sequence of elements of a single
// kind. It is the flat view every algorithm receives; the element type is
// fixed by the dispatch arm that produced it.
type Vector[E any] []E

func (v Vector[E]) Len() int {
	return len(v)
}

// Clone returns an independent copy of v.
func (v Vector[E]) Clone() Vector[E] {
	out := make(Vector[E], len(v))
	copy(out, v)
	return out
}
