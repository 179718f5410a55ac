package algorithms

import (
	"sort"

	"github.com/funvibe/dynvec/internal/config"
	"github.com/funvibe/dynvec/internal/dispatch"
)

// Algorithm pairs a registered name with its dispatch tables. An
// algorithm may exist on one path only: Dims has no vector form, Sort no
// matrix form.
type Algorithm struct {
	Name   string
	Vector *dispatch.VectorFuncs
	Matrix *dispatch.MatrixFuncs
}

var registry = map[string]Algorithm{
	config.HeadTailAlgName:  {Name: config.HeadTailAlgName, Vector: &HeadTail},
	config.LengthAlgName:    {Name: config.LengthAlgName, Vector: &Length},
	config.SortAlgName:      {Name: config.SortAlgName, Vector: &Sort},
	config.SortShapeAlgName: {Name: config.SortShapeAlgName, Matrix: &SortShape},
	config.DimsAlgName:      {Name: config.DimsAlgName, Matrix: &Dims},
	config.ShowAlgName:      {Name: config.ShowAlgName, Vector: &Show},
}

// Lookup resolves a registered algorithm by name.
func Lookup(name string) (Algorithm, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns the registered algorithm names, for usage output.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
