package matrix

// Row indexes a row inside a Matrix's current window. It is distinct from
// Col so the two cannot be swapped by accident at a call site.
type Row uint

// Col indexes a column inside a Matrix's current window.
type Col uint

// Int returns r as a plain int, for arithmetic and slice indexing.
func (r Row) Int() int { return int(r) }

// Int returns c as a plain int, for arithmetic and slice indexing.
func (c Col) Int() int { return int(c) }

// ColFromRow converts a Row to the Col of the same numeric index. Used
// where an engine's layout deliberately aligns a row and a column, such
// as the diagonal of Gaussian elimination's square system during back
// substitution.
func ColFromRow(r Row) Col { return Col(r) }

// RowFromCol converts a Col to the Row of the same numeric index.
func RowFromCol(c Col) Row { return Row(c) }
