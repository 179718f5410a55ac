package container

import "fmt"

// Matrix is a 2-D view over the same flat storage a Vector uses.
// Storage is column-major: element (r, c) sits at flat index r + c*Rows,
// so the row index varies fastest when walking Elems in order.
type Matrix[E any] struct {
	Elems Vector[E]
	Rows  int
	Cols  int
}

// NewMatrix wraps elems as a rows x cols matrix. The element count must
// match the requested dimensions exactly.
func NewMatrix[E any](elems Vector[E], rows, cols int) (Matrix[E], error) {
	if rows < 0 || cols < 0 || rows*cols != len(elems) {
		return Matrix[E]{}, fmt.Errorf("matrix dimensions %dx%d do not fit %d elements", rows, cols, len(elems))
	}
	return Matrix[E]{Elems: elems, Rows: rows, Cols: cols}, nil
}

func (m Matrix[E]) Len() int {
	return len(m.Elems)
}

// At returns the element at row r, column c.
func (m Matrix[E]) At(r, c int) E {
	return m.Elems[r+c*m.Rows]
}

// Set stores e at row r, column c.
func (m *Matrix[E]) Set(r, c int, e E) {
	m.Elems[r+c*m.Rows] = e
}

// Clone returns an independent copy of m.
func (m Matrix[E]) Clone() Matrix[E] {
	return Matrix[E]{Elems: m.Elems.Clone(), Rows: m.Rows, Cols: m.Cols}
}
