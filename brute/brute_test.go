package brute_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gosolve/brute"
	"github.com/katalvlaran/gosolve/core"
	"github.com/stretchr/testify/require"
)

func booleanProblem(n int) *core.Problem {
	p := core.NewProblem()
	for i := 0; i < n; i++ {
		p.AddIntegerVariable(0, 1)
	}
	return p
}

func expr(coeffs ...float64) core.Expression {
	e := core.NewExpression()
	for i, c := range coeffs {
		e.Set(i, c)
	}
	return e
}

// S7. Brute boolean knapsack-like.
func TestSolve_S7(t *testing.T) {
	p := booleanProblem(5)
	require.NoError(t, p.AddConstraint(expr(1, 1, 1, 1, 1), core.EqualTo, 2))
	require.NoError(t, p.AddConstraint(expr(3, 2, 1, 1, 2), core.EqualTo, 3))
	require.NoError(t, p.AddConstraint(expr(-2, -1, -1, -3, -2), core.EqualTo, -4))
	p.SetObjective(expr(4, 5, 3, 4, 5), core.Maximize)

	sol, err := brute.Solve(p)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1, 0}, sol.Values)
	require.NotNil(t, sol.Objective)
	require.InDelta(t, 9.0, *sol.Objective, 1e-9)
}

// S8. Brute infeasible.
func TestSolve_S8(t *testing.T) {
	p := booleanProblem(2)
	require.NoError(t, p.AddConstraint(expr(1, 1), core.EqualTo, 1))
	require.NoError(t, p.AddConstraint(expr(1, 1), core.EqualTo, 2))
	p.SetObjective(expr(1, 1), core.Maximize)

	_, err := brute.Solve(p)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.InfeasibleError("")))
}

func TestSolve_RequiresObjective(t *testing.T) {
	p := booleanProblem(1)
	require.NoError(t, p.AddConstraint(expr(1), core.EqualTo, 1))

	_, err := brute.Solve(p)
	require.True(t, errors.Is(err, core.UnableToSolveError("")))
}

func TestSolve_OneVar(t *testing.T) {
	p := booleanProblem(1)
	require.NoError(t, p.AddConstraint(expr(1), core.EqualTo, 1))
	p.SetObjective(expr(1), core.Maximize)

	sol, err := brute.Solve(p)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, sol.Values)
	require.InDelta(t, 1.0, *sol.Objective, 1e-9)
}

func TestSolve_PinsContinuousToZero(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable()            // continuous, pinned to [0,0]
	p.AddIntegerVariable(0, 2)

	require.NoError(t, p.AddConstraint(expr(0, 1), core.LessThanOrEqualTo, 2))
	p.SetObjective(expr(1, 1), core.Maximize)

	sol, err := brute.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 0.0, sol.Values[0])
	require.Equal(t, 2.0, sol.Values[1])
}
