package value

import "github.com/funvibe/dynvec/internal/container"

// AsVector converts d into a typed vector of E. It succeeds only when E's
// tag matches d's discriminator; the returned vector is an independent
// copy the caller may mutate freely. Shape metadata is ignored: any value
// has a flat length, so matrices convert fine here.
func AsVector[E Element](d Dynamic) (container.Vector[E], error) {
	want := TagFor[E]()
	if d.tag != want {
		return nil, NewTypeMismatchError(want, d.tag)
	}
	src, ok := d.payload.([]E)
	if !ok {
		// Discriminator says E but the payload disagrees: the host lied
		// through FromDiscriminator. Same failure class as a wrong tag.
		return nil, NewTypeMismatchError(want, d.tag)
	}
	return container.Vector[E](src).Clone(), nil
}

// AsMatrix converts d into a typed matrix of E. On top of the AsVector
// contract it requires d to carry matrix shape metadata; a shapeless
// value cannot serve a matrix-shaped algorithm.
func AsMatrix[E Element](d Dynamic) (container.Matrix[E], error) {
	vec, err := AsVector[E](d)
	if err != nil {
		return container.Matrix[E]{}, err
	}
	if d.shape == nil {
		return container.Matrix[E]{}, NewShapeMismatchError(d.tag, d.length)
	}
	return container.NewMatrix(vec, d.shape.Rows, d.shape.Cols)
}
