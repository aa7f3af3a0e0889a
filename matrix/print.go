package matrix

import (
	"fmt"
	"io"
)

// Fprint writes m to w, one row per line in "[a b c]" form.
// It is a debugging aid only; no validation is performed so ragged input
// prints as-is. The first write error is returned wrapped with "Fprint".
func Fprint(w io.Writer, m Matrix) error {
	for _, row := range m {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return matrixErrorf(opFprint, err)
		}
	}

	return nil
}
