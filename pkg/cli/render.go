package cli

import (
	"fmt"
	"strings"

	"github.com/funvibe/dynvec/internal/algorithms"
	"github.com/funvibe/dynvec/internal/dispatch"
	"github.com/funvibe/dynvec/internal/value"
)

// Render formats a dispatch result for terminal output. Element
// formatting goes through the show algorithm, so rendering needs no
// per-tag knowledge of its own; matrices come out as a padded grid in
// row order even though storage is column-major.
func Render(d value.Dynamic) (string, error) {
	if d.IsNull() {
		return "<null>", nil
	}
	shown, err := dispatch.Vector(d, algorithms.Show)
	if err != nil {
		return "", err
	}
	cells, err := value.AsVector[string](shown)
	if err != nil {
		return "", err
	}

	shape, ok := d.Shape()
	if !ok {
		return fmt.Sprintf("%s[%d] %s", d.Tag(), d.Len(), strings.Join(cells, " ")), nil
	}
	return renderGrid(d, cells, shape.Rows, shape.Cols), nil
}

func renderGrid(d value.Dynamic, cells []string, rows, cols int) string {
	width := 0
	for _, c := range cells {
		if len(c) > width {
			width = len(c)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%dx%d]", d.Tag(), rows, cols)
	for r := 0; r < rows; r++ {
		sb.WriteString("\n")
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			// column-major storage: (r, c) sits at r + c*rows
			fmt.Fprintf(&sb, "%*s", width, cells[r+c*rows])
		}
	}
	return sb.String()
}
