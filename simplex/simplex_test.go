package simplex_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/simplex"
	"github.com/stretchr/testify/require"
)

// S4. Simplex maximize with <=.
func TestSolve_S4(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable() // x
	p.AddVariable() // y

	c1 := core.NewExpression()
	c1.Set(0, 1)
	c1.Set(1, 1)
	require.NoError(t, p.AddConstraint(c1, core.LessThanOrEqualTo, 10))

	c2 := core.NewExpression()
	c2.Set(0, 1)
	c2.Set(1, 2)
	require.NoError(t, p.AddConstraint(c2, core.LessThanOrEqualTo, 15))

	obj := core.NewExpression()
	obj.Set(0, 2)
	obj.Set(1, 3)
	p.SetObjective(obj, core.Maximize)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 5.0, sol.Values[0], 1e-6)
	require.InDelta(t, 5.0, sol.Values[1], 1e-6)
	require.NotNil(t, sol.Objective)
	require.InDelta(t, 25.0, *sol.Objective, 1e-6)
}

// S5. Simplex minimize with equalities.
func TestSolve_S5(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable() // x
	p.AddVariable() // y
	p.AddVariable() // z

	c1 := core.NewExpression()
	c1.Set(0, 3)
	c1.Set(1, 2)
	c1.Set(2, 1)
	require.NoError(t, p.AddConstraint(c1, core.EqualTo, 10))

	c2 := core.NewExpression()
	c2.Set(0, 2)
	c2.Set(1, 5)
	c2.Set(2, 3)
	require.NoError(t, p.AddConstraint(c2, core.EqualTo, 15))

	obj := core.NewExpression()
	obj.Set(0, -2)
	obj.Set(1, -3)
	obj.Set(2, -4)
	p.SetObjective(obj, core.Minimize)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 2.142857, sol.Values[0], 1e-5)
	require.InDelta(t, 0.0, sol.Values[1], 1e-5)
	require.InDelta(t, 3.571429, sol.Values[2], 1e-5)
	require.InDelta(t, -18.571429, *sol.Objective, 1e-4)
}

// S6. Simplex unbounded.
func TestSolve_S6(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable()
	p.AddVariable()
	p.AddVariable()

	c := core.NewExpression()
	c.Set(0, 1)
	c.Set(1, 1)
	c.Set(2, 1)
	require.NoError(t, p.AddConstraint(c, core.GreaterThanOrEqualTo, 0))

	obj := core.NewExpression()
	obj.Set(0, 1)
	obj.Set(1, 1)
	obj.Set(2, 1)
	p.SetObjective(obj, core.Maximize)

	_, err := simplex.Solve(p)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.InfeasibleError("")))
}

// S9. Simplex with negative RHS (validates row-sign flip during setup).
func TestSolve_S9(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable() // x
	p.AddVariable() // y

	c1 := core.NewExpression()
	c1.Set(0, 1)
	c1.Set(1, -1)
	require.NoError(t, p.AddConstraint(c1, core.LessThanOrEqualTo, -5))

	c2 := core.NewExpression()
	c2.Set(0, 1)
	require.NoError(t, p.AddConstraint(c2, core.LessThanOrEqualTo, 10))

	obj := core.NewExpression()
	obj.Set(0, 2)
	obj.Set(1, 3)
	p.SetObjective(obj, core.Maximize)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 10.0, sol.Values[0], 1e-6)
	require.InDelta(t, 15.0, sol.Values[1], 1e-6)
	require.InDelta(t, 65.0, *sol.Objective, 1e-6)
}

func TestBuildTableau_RejectsMissingObjective(t *testing.T) {
	p := core.NewProblem()
	p.AddVariable()
	_, _, err := simplex.BuildTableau(p)
	require.True(t, errors.Is(err, core.InvalidObjectiveError("")))
}
