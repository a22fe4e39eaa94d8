package matrix

import (
	"fmt"
	"strings"
)

// String renders the current window as a table of six-decimal values, one
// row per line, space-separated. Grounded on original_source/src/matrix.rs's
// Debug impl, which printed the same grid for trace-level tableau dumps.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, r := range m.Rows() {
		cols := m.Cols()
		for i, c := range cols {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.6f", m.Value(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
