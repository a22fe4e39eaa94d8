package matrix

import (
	"github.com/katalvlaran/gosolve/internal/logx"
)

// Matrix is a dense, row-major grid of float64 values with a movable
// window. The backing store is fixed at construction; Sub only narrows
// which rectangle of it is currently visible to indexing, row operations,
// and iteration.
//
// Bounds are not checked by Value, SetValue, or the row operations. A
// caller passing an out-of-window Row or Col corrupts neighboring data
// rather than panicking or erroring. Engines are expected to derive every
// index they use from the window accessors (FirstRow, LastCol, Rows,
// Cols, ...) rather than from raw literals, the same discipline
// dense.go's indexOf enforces through a checked path; Matrix trades that
// check for the unconditional window-narrowing Sub needs.
type Matrix struct {
	width, height          int
	data                   []float64
	startX, startY         int
	endX, endY             int
}

// New allocates a Matrix of the given width and height, backed directly
// by coeffs in row-major order. It panics if len(coeffs) != width*height,
// or if width <= 2 or height <= 2. The Simplex tableau always clears
// that bound; a Gaussian augmented matrix is N+1 wide and N high, so a
// system of fewer than three variables triggers the panic.
func New(width, height int, coeffs []float64) *Matrix {
	if width <= 2 || height <= 2 {
		panic("matrix: width and height must both be greater than 2")
	}
	if len(coeffs) != width*height {
		panic("matrix: coeffs length does not match width*height")
	}
	return &Matrix{
		width:  width,
		height: height,
		data:   coeffs,
		startX: 0,
		startY: 0,
		endX:   width,
		endY:   height,
	}
}

// Width returns the full backing width, ignoring the current window.
func (m *Matrix) Width() int { return m.width }

// Height returns the full backing height, ignoring the current window.
func (m *Matrix) Height() int { return m.height }

// FirstRow returns the window's topmost row.
func (m *Matrix) FirstRow() Row { return Row(m.startY) }

// LastRow returns the window's bottommost row.
func (m *Matrix) LastRow() Row { return Row(m.endY - 1) }

// FirstCol returns the window's leftmost column.
func (m *Matrix) FirstCol() Col { return Col(m.startX) }

// LastCol returns the window's rightmost column.
func (m *Matrix) LastCol() Col { return Col(m.endX - 1) }

// Value reads cell (row, col). The index is taken as-is against the full
// backing store; it is the caller's responsibility to keep it inside the
// current window.
func (m *Matrix) Value(row Row, col Col) float64 {
	return m.data[row.Int()*m.width+col.Int()]
}

// SetValue writes cell (row, col).
func (m *Matrix) SetValue(row Row, col Col, value float64) {
	m.data[row.Int()*m.width+col.Int()] = value
}

// Sub narrows the window so its upper-left corner becomes (sx, sy); the
// lower-right corner is unchanged. It panics if the new corner would not
// leave at least one row and one column visible: sx must be strictly
// less than the current end column, sy strictly less than the current
// end row. Simplex uses this once, via Sub(1, 1), to retire the Phase-I
// objective row and column ahead of Phase II without reallocating.
func (m *Matrix) Sub(sx, sy int) {
	if !(sx < m.endX && sy < m.endY) {
		panic("matrix: sub would leave an empty window")
	}
	m.startX = sx
	m.startY = sy
}

// SwapRows exchanges the contents of two rows across every column in the
// current window.
func (m *Matrix) SwapRows(a, b Row) {
	for c := m.startX; c < m.endX; c++ {
		ia := a.Int()*m.width + c
		ib := b.Int()*m.width + c
		m.data[ia], m.data[ib] = m.data[ib], m.data[ia]
	}
}

// MultiplyRow scales every cell of row r, across the current window's
// columns, by k. k == 0 zeroes the row, which is almost never the
// caller's intent, so it is logged at warn and then carried out anyway.
// Matrix does not second-guess its caller.
func (m *Matrix) MultiplyRow(r Row, k float64) {
	if k == 0 {
		logx.Warn("matrix: MultiplyRow called with k == 0, row will be zeroed")
	}
	for c := m.startX; c < m.endX; c++ {
		i := r.Int()*m.width + c
		m.data[i] *= k
	}
}

// AddRow adds k times src's values into dest's values, across the current
// window's columns: dest[c] += k * src[c].
func (m *Matrix) AddRow(src, dest Row, k float64) {
	for c := m.startX; c < m.endX; c++ {
		si := src.Int()*m.width + c
		di := dest.Int()*m.width + c
		m.data[di] += k * m.data[si]
	}
}

// HasZeroRow reports whether any row in the current window is exactly all
// zero. This is Gaussian elimination's linear-dependence check, and
// deliberately an exact comparison rather than an epsilon one: a row that
// reduced to a true zero row did so through exact arithmetic on exact
// pivots, and a near-zero row from floating-point noise is a different,
// unhandled condition.
func (m *Matrix) HasZeroRow() bool {
	for r := m.startY; r < m.endY; r++ {
		zero := true
		base := r * m.width
		for c := m.startX; c < m.endX; c++ {
			if m.data[base+c] != 0.0 {
				zero = false
				break
			}
		}
		if zero {
			return true
		}
	}
	return false
}

// Rows returns every row index in the current window, top to bottom.
func (m *Matrix) Rows() []Row {
	rows := make([]Row, 0, m.endY-m.startY)
	for r := m.startY; r < m.endY; r++ {
		rows = append(rows, Row(r))
	}
	return rows
}

// Cols returns every column index in the current window, left to right.
func (m *Matrix) Cols() []Col {
	cols := make([]Col, 0, m.endX-m.startX)
	for c := m.startX; c < m.endX; c++ {
		cols = append(cols, Col(c))
	}
	return cols
}

// RowsFrom returns every row index in the current window from r to the
// bottom, inclusive. Rows outside the window are silently clipped.
func (m *Matrix) RowsFrom(r Row) []Row {
	start := r.Int()
	if start < m.startY {
		start = m.startY
	}
	rows := make([]Row, 0, m.endY-start)
	for i := start; i < m.endY; i++ {
		rows = append(rows, Row(i))
	}
	return rows
}

// ColsFrom returns every column index in the current window from c to
// the right edge, inclusive.
func (m *Matrix) ColsFrom(c Col) []Col {
	start := c.Int()
	if start < m.startX {
		start = m.startX
	}
	cols := make([]Col, 0, m.endX-start)
	for i := start; i < m.endX; i++ {
		cols = append(cols, Col(i))
	}
	return cols
}

// ColsRange returns every column index in [a, b), b itself excluded,
// clipped to the current window. Back substitution uses this to walk the
// already-solved columns to the right of a pivot, stopping just before
// the RHS column.
func (m *Matrix) ColsRange(a, b Col) []Col {
	start, end := a.Int(), b.Int()
	if start < m.startX {
		start = m.startX
	}
	if end > m.endX {
		end = m.endX
	}
	if end < start {
		end = start
	}
	cols := make([]Col, 0, end-start)
	for i := start; i < end; i++ {
		cols = append(cols, Col(i))
	}
	return cols
}
