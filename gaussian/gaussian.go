package gaussian

import (
	"math"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/internal/logx"
	"github.com/katalvlaran/gosolve/matrix"
)

// BuildAugmented validates problem against Gaussian elimination's input
// shape and builds its augmented matrix: width N+1, height N, row i
// holding constraint i's coefficients in columns 0..N-1 and its constant
// in column N.
//
// It rejects a problem carrying an objective (InvalidObjective), a
// constraint count different from the variable count, or any
// non-equality constraint (both InvalidConstraint). A valid system of
// fewer than three variables panics in matrix.New, which requires a
// height above 2.
func BuildAugmented(problem *core.Problem) (*matrix.Matrix, error) {
	if problem.Objective() != nil {
		return nil, core.InvalidObjectiveError("gaussian elimination does not accept an objective function")
	}

	n := problem.NumVariables()
	if problem.NumConstraints() != n {
		return nil, core.InvalidConstraintError("number of constraints must equal number of variables for gaussian elimination")
	}

	for _, c := range problem.Constraints() {
		if c.Kind != core.EqualTo {
			return nil, core.InvalidConstraintError("gaussian elimination only accepts equality constraints")
		}
	}

	logx.Infof("set up gaussian elimination with %d constraints and %d variables", problem.NumConstraints(), n)

	width := n + 1
	height := n
	coeffs := make([]float64, width*height)
	for row, c := range problem.Constraints() {
		for col := 0; col < n; col++ {
			coeffs[col+row*width] = c.Expr.Get(col)
		}
		coeffs[width-1+row*width] = c.Constant
	}

	return matrix.New(width, height, coeffs), nil
}

// Run reduces m to upper-triangular form with partial pivoting and then
// back-substitutes, returning the solved values with no objective. m is
// mutated in place and must have been built by BuildAugmented.
func Run(m *matrix.Matrix) (*core.Solution, error) {
	pivotRow, pivotCol := m.FirstRow(), m.FirstCol()

	logx.Info("performing gaussian elimination")
	logx.Debugf("%s", m.String())

	logx.Info("reducing matrix to triangular form")
	for pivotRow.Int() <= m.LastRow().Int() && pivotCol.Int() <= m.LastCol().Int() {
		pivotMax := findPivotMax(m, pivotRow, pivotCol)

		if m.Value(pivotMax, pivotCol) == 0.0 {
			pivotCol++
		} else {
			m.SwapRows(pivotRow, pivotMax)

			for _, row := range m.RowsFrom(pivotRow + 1) {
				coeff := m.Value(row, pivotCol) / m.Value(pivotRow, pivotCol)
				m.SetValue(row, pivotCol, 0.0)

				for _, col := range m.ColsFrom(pivotCol + 1) {
					value := m.Value(row, col) - m.Value(pivotRow, col)*coeff
					m.SetValue(row, col, value)
				}
			}

			pivotRow++
			pivotCol++
		}

		logx.Debug("step")
		logx.Debugf("%s", m.String())

		if m.HasZeroRow() {
			return nil, core.UnderspecifiedError("two or more rows are linearly dependent")
		}
	}

	logx.Info("back substituting")
	coeffs := make([]float64, m.Height())
	rows := m.Rows()
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		coeff := m.Value(row, m.LastCol())
		for _, col := range m.ColsRange(matrix.ColFromRow(row+1), m.LastCol()) {
			coeff -= m.Value(row, col) * coeffs[col.Int()]
		}
		coeffs[row.Int()] = coeff / m.Value(row, matrix.ColFromRow(row))

		logx.Trace("current solution:")
		logx.Tracef("%v", coeffs)
	}

	solution := core.NewSolution(coeffs, nil)
	logx.Infof("solution found: %v", solution)
	return &solution, nil
}

func findPivotMax(m *matrix.Matrix, curPivotRow matrix.Row, pivotCol matrix.Col) matrix.Row {
	maxValue := 0.0
	pivotMax := curPivotRow
	for _, row := range m.RowsFrom(curPivotRow) {
		curValue := math.Abs(m.Value(row, pivotCol))
		if curValue > maxValue {
			maxValue = curValue
			pivotMax = row
		}
	}
	return pivotMax
}

// Solve builds the augmented matrix for problem and runs elimination on
// it, returning a Solution with no objective.
func Solve(problem *core.Problem) (*core.Solution, error) {
	m, err := BuildAugmented(problem)
	if err != nil {
		return nil, err
	}
	return Run(m)
}
