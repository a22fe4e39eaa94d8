package brute

import (
	"math"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/internal/logx"
)

// defaultTolerance is the f32-epsilon cast to a 64-bit float, per the
// feasibility rule: a point is accepted if it violates a constraint's
// inequality by less than this amount.
const defaultTolerance = float64(1.1920929e-07)

type bound struct {
	min, max int32
}

type variable struct {
	value int32
	bound bound
}

// Solve enumerates every integer point within the declared variable
// bounds and returns the best feasible one, using defaultTolerance for
// constraint feasibility. See SolveWithTolerance to override it.
func Solve(problem *core.Problem) (*core.Solution, error) {
	return SolveWithTolerance(problem, defaultTolerance)
}

// SolveWithTolerance is Solve with a caller-supplied feasibility
// tolerance. problem must carry an objective; otherwise it fails with
// UnableToSolve, matching the dispatcher's table for an integer problem
// with no objective.
//
// A Continuous variable is bounded to [0, 0] (see the package doc), and
// logged once per call, not once per variable, since the condition
// applies to the whole solve rather than any one variable.
func SolveWithTolerance(problem *core.Problem, tolerance float64) (*core.Solution, error) {
	obj := problem.Objective()
	if obj == nil {
		return nil, core.UnableToSolveError("must set an objective for integer problems")
	}

	vars := problem.Variables()
	bounds := make([]bound, len(vars))
	pinnedContinuous := false
	for i, v := range vars {
		switch v.Kind {
		case core.Integer:
			bounds[i] = bound{min: v.Min, max: v.Max}
		case core.Continuous:
			bounds[i] = bound{min: 0, max: 0}
			pinnedContinuous = true
		}
	}
	if pinnedContinuous {
		logx.Warn("brute force: problem mixes continuous and integer variables; continuous variables are pinned to [0, 0]")
	}

	n := len(vars)
	objCoeffs := make([]float64, n)
	for i := 0; i < n; i++ {
		objCoeffs[i] = obj.Expr.Get(i)
	}

	constraints := problem.Constraints()
	constraintCoeffs := make([][]float64, len(constraints))
	for ci, c := range constraints {
		coeffs := make([]float64, n)
		for i := 0; i < n; i++ {
			coeffs[i] = c.Expr.Get(i)
		}
		constraintCoeffs[ci] = coeffs
	}

	solution := make([]int32, n)
	var bestObj float64
	switch obj.Kind {
	case core.Maximize:
		bestObj = math.Inf(-1)
	case core.Minimize:
		bestObj = math.Inf(1)
	}
	initialBest := bestObj

	vals := make([]variable, n)
	for i, b := range bounds {
		vals[i] = variable{value: b.min, bound: b}
	}

	logx.Info("setup problem in vector form; brute force searching")
	checkCombinations(solution, &bestObj, vals, constraints, constraintCoeffs, objCoeffs, obj.Kind, tolerance, 0)

	if bestObj == initialBest {
		return nil, core.InfeasibleError("no solution exists")
	}

	coeffs := make([]float64, n)
	for i, v := range solution {
		coeffs[i] = float64(v)
	}

	result := core.NewSolution(coeffs, &bestObj)
	return &result, nil
}

func checkCombinations(
	solution []int32,
	bestValue *float64,
	vars []variable,
	constraints []core.Constraint,
	constraintCoeffs [][]float64,
	objCoeffs []float64,
	direction core.ObjectiveKind,
	tolerance float64,
	curIndex int,
) {
	for val := vars[curIndex].bound.min; val <= vars[curIndex].bound.max; val++ {
		vars[curIndex].value = val
		logx.Debugf("checking with coefficients: %v", vars)

		if meetsConstraints(vars, constraints, constraintCoeffs, tolerance) {
			test := constraintValue(vars, objCoeffs)
			logx.Debugf("constraints met, got objective value: %v", test)

			best := false
			switch direction {
			case core.Minimize:
				best = test < *bestValue
			case core.Maximize:
				best = test > *bestValue
			}

			if best {
				logx.Debug("values tested are new best")
				*bestValue = test
				for i := range vars {
					solution[i] = vars[i].value
				}
			}
		}

		if curIndex < len(vars)-1 {
			checkCombinations(solution, bestValue, vars, constraints, constraintCoeffs, objCoeffs, direction, tolerance, curIndex+1)
		}
	}
}

func meetsConstraints(vars []variable, constraints []core.Constraint, constraintCoeffs [][]float64, tolerance float64) bool {
	for ci, c := range constraints {
		computed := constraintValue(vars, constraintCoeffs[ci])
		logx.Tracef("computed constraint value of %v, test %v against %v", computed, c.Kind, c.Constant)

		var met bool
		switch c.Kind {
		case core.GreaterThanOrEqualTo:
			met = computed > c.Constant-tolerance
		case core.EqualTo:
			met = math.Abs(computed-c.Constant) < tolerance
		case core.LessThanOrEqualTo:
			met = computed < c.Constant+tolerance
		}

		if !met {
			return false
		}
	}

	return true
}

func constraintValue(vars []variable, coeffs []float64) float64 {
	total := 0.0
	for i, v := range vars {
		total += float64(v.value) * coeffs[i]
	}
	return total
}
