package gosolve

import (
	"github.com/katalvlaran/gosolve/brute"
	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/gaussian"
	"github.com/katalvlaran/gosolve/internal/logx"
	"github.com/katalvlaran/gosolve/simplex"
)

// Solve picks an engine from problem's shape and runs it under the
// default SolveOptions:
//
//	no objective, all continuous  -> Gaussian elimination
//	no objective, any integer     -> UnableToSolve
//	has objective, all continuous -> Simplex
//	has objective, any integer    -> brute force
//
// Solve is a free function rather than a Problem method so that core
// never has to import the engines that depend on it.
func Solve(problem *core.Problem) (*core.Solution, error) {
	return SolveWithOptions(problem, NewSolveOptions())
}

// SolveWithOptions is Solve with caller-supplied numeric tolerances.
func SolveWithOptions(problem *core.Problem, opts SolveOptions) (*core.Solution, error) {
	hasObjective := problem.Objective() != nil
	hasInteger := false
	for _, v := range problem.Variables() {
		if v.Kind == core.Integer {
			hasInteger = true
			break
		}
	}

	switch {
	case !hasObjective && !hasInteger:
		logx.Info("dispatching to gaussian elimination")
		return gaussian.Solve(problem)
	case !hasObjective && hasInteger:
		return nil, core.UnableToSolveError("integer problem must specify an objective")
	case hasObjective && !hasInteger:
		logx.Info("dispatching to simplex")
		return simplex.SolveWithOptions(problem, simplex.Options{
			PhaseIResidualEpsilon: opts.phaseIResidualEpsilon,
			IterationCapFactor:    opts.iterationCapFactor,
		})
	default:
		logx.Info("dispatching to brute force")
		return brute.SolveWithTolerance(problem, opts.bruteForceTolerance)
	}
}
