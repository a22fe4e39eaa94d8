package dsl

import (
	"fmt"

	"github.com/katalvlaran/gosolve/core"
)

// Constructor applies one deterministic mutation to a Problem being
// built: declaring variables, appending a constraint, or setting the
// objective.
type Constructor func(p *core.Problem) error

// BuildProblem creates an empty Problem and applies each Constructor to
// it in order. The first error returned by a Constructor is wrapped with
// its index and returned immediately together with a nil Problem; the
// partially built Problem is discarded.
func BuildProblem(cons ...Constructor) (*core.Problem, error) {
	p := core.NewProblem()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("dsl.BuildProblem: nil constructor at index %d", i)
		}
		if err := fn(p); err != nil {
			return nil, fmt.Errorf("dsl.BuildProblem: constructor %d: %w", i, err)
		}
	}
	return p, nil
}

// Vars declares n Continuous variables.
func Vars(n int) Constructor {
	return func(p *core.Problem) error {
		for i := 0; i < n; i++ {
			p.AddVariable()
		}
		return nil
	}
}

// IntVar declares one Integer variable bounded by [min, max].
func IntVar(min, max int32) Constructor {
	return func(p *core.Problem) error {
		p.AddIntegerVariable(min, max)
		return nil
	}
}

// IntVars declares one Integer variable per [2]int32{min, max} bound, in
// order.
func IntVars(bounds ...[2]int32) Constructor {
	return func(p *core.Problem) error {
		for _, b := range bounds {
			p.AddIntegerVariable(b[0], b[1])
		}
		return nil
	}
}

// Row builds an Expression from coeffs positionally: coeffs[i] becomes
// the coefficient of variable i. Every index is set, including zeros,
// since AddConstraint requires Len() to equal the problem's variable
// count and a short or ragged row would otherwise be rejected.
func Row(coeffs ...float64) core.Expression {
	e := core.NewExpression()
	for i, c := range coeffs {
		e.Set(i, c)
	}
	return e
}

// Rule appends a constraint built from coeffs, a comparator token, and
// rhs. The comparator accepts either the word form ("le", "ge", "eq") or
// the symbol form ("<=", ">=", "==").
func Rule(comparator string, rhs float64, coeffs ...float64) Constructor {
	kind, kindErr := parseComparator(comparator)
	return func(p *core.Problem) error {
		if kindErr != nil {
			return kindErr
		}
		return p.AddConstraint(Row(coeffs...), kind, rhs)
	}
}

func parseComparator(token string) (core.ConstraintKind, error) {
	switch token {
	case "le", "<=":
		return core.LessThanOrEqualTo, nil
	case "ge", ">=":
		return core.GreaterThanOrEqualTo, nil
	case "eq", "==":
		return core.EqualTo, nil
	default:
		return 0, fmt.Errorf("dsl: unknown comparator %q, want one of le, ge, eq, <=, >=, ==", token)
	}
}

// Minimize sets the objective to minimize coeffs dotted with the
// variable values.
func Minimize(coeffs ...float64) Constructor {
	return func(p *core.Problem) error {
		p.SetObjective(Row(coeffs...), core.Minimize)
		return nil
	}
}

// Maximize sets the objective to maximize coeffs dotted with the
// variable values.
func Maximize(coeffs ...float64) Constructor {
	return func(p *core.Problem) error {
		p.SetObjective(Row(coeffs...), core.Maximize)
		return nil
	}
}
