package core

import (
	"fmt"
	"strings"
)

// Solution is the result of a successful solve: one value per declared
// variable, plus the objective value when the engine that produced it
// evaluates one (Gaussian elimination never sets it).
type Solution struct {
	Values    []float64
	Objective *float64
}

// NewSolution builds a Solution from a values slice and an optional
// objective. objective may be nil.
func NewSolution(values []float64, objective *float64) Solution {
	return Solution{Values: values, Objective: objective}
}

// Equal compares two Solutions exactly: same objective (both nil, or both
// set and bit-for-bit equal), same length, same coefficients in order.
// Engines and tests that need a tolerance apply it themselves before
// calling Equal, or compare coefficients directly.
func (s Solution) Equal(other Solution) bool {
	if (s.Objective == nil) != (other.Objective == nil) {
		return false
	}
	if s.Objective != nil && *s.Objective != *other.Objective {
		return false
	}
	if len(s.Values) != len(other.Values) {
		return false
	}
	for i := range s.Values {
		if s.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// String renders the solution the way rusolve's Debug impl for Solution
// did: one "x[i] = value" line per variable, preceded by the objective
// line when present.
func (s Solution) String() string {
	var b strings.Builder
	if s.Objective != nil {
		fmt.Fprintf(&b, "Objective = %.6f\n", *s.Objective)
	}
	for i, v := range s.Values {
		fmt.Fprintf(&b, "x[%d] = %.6f\n", i, v)
	}
	return b.String()
}
