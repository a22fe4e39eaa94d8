package simplex

import (
	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/internal/logx"
	"github.com/katalvlaran/gosolve/matrix"
)

// BuildTableau validates problem against Simplex's input shape (an
// objective must be set) and constructs its two-phase tableau.
//
// Layout, width n+m+3 by height m+2:
//   - row 0 is the Phase-I objective, row 1 is the Phase-II objective,
//     rows 2..m+1 are the constraints.
//   - column 0 is the Phase-I marker, column 1 the Phase-II marker,
//     columns 2..n+1 the original variables, columns n+2..n+m+1 the
//     per-constraint slack/artificial columns, and column width-1 the
//     right-hand side.
//
// It returns the tableau and the raw column index of every artificial
// variable introduced, in constraint order.
func BuildTableau(problem *core.Problem) (*matrix.Matrix, []int, error) {
	obj := problem.Objective()
	if obj == nil {
		return nil, nil, core.InvalidObjectiveError("simplex requires an objective function")
	}

	n := problem.NumVariables()
	m := problem.NumConstraints()
	width := n + m + 3
	height := m + 2
	coeffs := make([]float64, width*height)

	constraints := problem.Constraints()
	for i, c := range constraints {
		row := i + 2
		sign := 1.0
		if c.Constant < 0 {
			sign = -1.0
		}
		for col := 0; col < n; col++ {
			coeffs[2+col+row*width] = sign * c.Expr.Get(col)
		}
		coeffs[width-1+row*width] = sign * c.Constant
	}

	coeffs[0] = 1.0

	for col := 0; col < n; col++ {
		coeffs[2+col+width] = -obj.Expr.Get(col)
	}
	coeffs[1+width] = 1.0

	artificialCols := make([]int, 0, m)
	for i, c := range constraints {
		row := i + 2
		slackCol := n + 2 + i
		switch c.Kind {
		case core.LessThanOrEqualTo:
			coeffs[slackCol+row*width] = 1.0
		case core.GreaterThanOrEqualTo:
			coeffs[slackCol+row*width] = -1.0
		case core.EqualTo:
			coeffs[slackCol+row*width] = 1.0
			artificialCols = append(artificialCols, slackCol)
		}
	}

	logx.Infof("set up two-phase simplex with %d variables, %d constraints, %d artificial", n, m, len(artificialCols))

	t := matrix.New(width, height, coeffs)

	for i, c := range constraints {
		if c.Kind != core.EqualTo {
			continue
		}
		slackCol := n + 2 + i
		row := matrix.Row(i + 2)
		t.SetValue(0, matrix.Col(slackCol), -1.0)
		t.AddRow(row, 0, 1.0)
	}

	logx.Debugf("initial tableau:\n%s", t.String())

	return t, artificialCols, nil
}
