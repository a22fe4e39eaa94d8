package simplex

import (
	"math"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/internal/logx"
	"github.com/katalvlaran/gosolve/matrix"
)

// Options carries the numeric tunables this engine otherwise hardcodes:
// the Phase-I residual threshold and a multiplier on the W*H iteration
// safety valve.
type Options struct {
	PhaseIResidualEpsilon float64
	IterationCapFactor    int
}

// DefaultOptions reproduces the thresholds named in the algorithm notes:
// a 1e-6 Phase-I residual epsilon and an iteration cap of exactly W*H.
func DefaultOptions() Options {
	return Options{PhaseIResidualEpsilon: 1e-6, IterationCapFactor: 1}
}

// runInnerLoop is the pivoting loop shared by both phases. objectiveRows
// is how many rows at the top of the current window carry objectives
// rather than constraints (2 in Phase I, 1 in Phase II); direction
// selects the pivot-column rule.
func runInnerLoop(t *matrix.Matrix, objectiveRows int, direction core.ObjectiveKind, capFactor int) error {
	iterationCap := capFactor * t.Width() * t.Height()
	iteration := 0

	for {
		logx.Tracef("iteration %d\n%s", iteration, t.String())
		if iteration >= iterationCap {
			logx.Warnf("simplex: iteration cap of %d reached", iterationCap)
			return core.UnableToSolveError("failed to find a solution within the iteration cap")
		}

		pivotCol, found := selectPivotColumn(t, direction)
		if !found {
			logx.Debug("no improving column found, solution is optimal")
			break
		}
		logx.Debugf("selected pivot column %d", pivotCol.Int())

		pivotRow, ok := selectPivotRow(t, objectiveRows, pivotCol)
		if !ok {
			logx.Warn("simplex: no pivot row found, function is unbounded")
			return core.InfeasibleError("function is unbounded")
		}
		logx.Debugf("selected pivot row %d", pivotRow.Int())

		pivot(t, pivotRow, pivotCol)
		iteration++
	}

	return nil
}

func selectPivotColumn(t *matrix.Matrix, direction core.ObjectiveKind) (matrix.Col, bool) {
	objRow := t.FirstRow()
	found := false
	var best matrix.Col
	var bestVal float64

	for _, col := range t.ColsRange(t.FirstCol()+1, t.LastCol()) {
		v := t.Value(objRow, col)
		switch direction {
		case core.Minimize:
			if v > 0 && (!found || v > bestVal) {
				best, bestVal, found = col, v, true
			}
		case core.Maximize:
			if v < 0 && (!found || v < bestVal) {
				best, bestVal, found = col, v, true
			}
		}
	}

	return best, found
}

func selectPivotRow(t *matrix.Matrix, objectiveRows int, pivotCol matrix.Col) (matrix.Row, bool) {
	found := false
	var best matrix.Row
	var bestRatio float64

	for _, row := range t.RowsFrom(t.FirstRow() + matrix.Row(objectiveRows)) {
		v := t.Value(row, pivotCol)
		if v <= 0 {
			continue
		}
		ratio := t.Value(row, t.LastCol()) / v
		if ratio < 0 {
			continue
		}
		if !found || ratio < bestRatio {
			best, bestRatio, found = row, ratio, true
		}
	}

	return best, found
}

func pivot(t *matrix.Matrix, pivotRow matrix.Row, pivotCol matrix.Col) {
	t.MultiplyRow(pivotRow, 1.0/t.Value(pivotRow, pivotCol))

	for _, row := range t.Rows() {
		if row == pivotRow {
			continue
		}
		factor := -t.Value(row, pivotCol)
		t.AddRow(pivotRow, row, factor)
	}
}

// RunPhaseI drives the inner loop to minimize the sum of artificial
// variables. It fails with Infeasible if the Phase-I residual does not
// vanish within opts.PhaseIResidualEpsilon.
func RunPhaseI(t *matrix.Matrix, opts Options) error {
	logx.Info("running phase I")
	if err := runInnerLoop(t, 2, core.Minimize, opts.IterationCapFactor); err != nil {
		return err
	}

	residual := t.Value(t.FirstRow(), t.LastCol())
	if math.Abs(residual) > opts.PhaseIResidualEpsilon {
		return core.InfeasibleError("no feasible solution exists")
	}
	return nil
}

// TransitionToPhaseII narrows t's window to hide the Phase-I row and
// column, then zeroes every artificial column across the remaining rows
// so Phase II never reintroduces them into the basis.
func TransitionToPhaseII(t *matrix.Matrix, artificialCols []int) {
	t.Sub(1, 1)

	for _, col := range artificialCols {
		for _, row := range t.Rows() {
			t.SetValue(row, matrix.Col(col), 0.0)
		}
	}
}

// RunPhaseII drives the inner loop toward the user's objective.
func RunPhaseII(t *matrix.Matrix, direction core.ObjectiveKind, opts Options) error {
	logx.Info("running phase II")
	return runInnerLoop(t, 1, direction, opts.IterationCapFactor)
}

// ExtractSolution reads the optimal values for the first n variables
// from t's current window, plus the objective value in cell(first_row,
// last_col). A variable's column is basic, and so contributes its value,
// only if it has exactly one non-zero entry in the window.
func ExtractSolution(t *matrix.Matrix, n int) *core.Solution {
	objective := t.Value(t.FirstRow(), t.LastCol())
	values := make([]float64, n)

	cols := t.ColsRange(t.FirstCol()+1, t.FirstCol()+1+matrix.Col(n))
	for i, col := range cols {
		var basicRow matrix.Row
		count := 0
		for _, row := range t.Rows() {
			if t.Value(row, col) != 0.0 {
				count++
				basicRow = row
			}
		}
		if count == 1 {
			values[i] = t.Value(basicRow, t.LastCol())
		}
	}

	solution := core.NewSolution(values, &objective)
	return &solution
}

// Solve builds the tableau for problem, runs both phases under
// DefaultOptions, and extracts the solution.
func Solve(problem *core.Problem) (*core.Solution, error) {
	return SolveWithOptions(problem, DefaultOptions())
}

// SolveWithOptions is Solve with caller-supplied numeric tolerances.
func SolveWithOptions(problem *core.Problem, opts Options) (*core.Solution, error) {
	t, artificialCols, err := BuildTableau(problem)
	if err != nil {
		return nil, err
	}

	if err := RunPhaseI(t, opts); err != nil {
		return nil, err
	}

	TransitionToPhaseII(t, artificialCols)

	if err := RunPhaseII(t, problem.Objective().Kind, opts); err != nil {
		return nil, err
	}

	solution := ExtractSolution(t, problem.NumVariables())
	logx.Infof("solution found: %v", solution)
	return solution, nil
}
