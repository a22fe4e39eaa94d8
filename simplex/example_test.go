package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/simplex"
)

// ExampleSolve maximizes a simple two-variable objective under two <=
// constraints.
func ExampleSolve() {
	p := core.NewProblem()
	p.AddVariable()
	p.AddVariable()

	c1 := core.NewExpression()
	c1.Set(0, 1)
	c1.Set(1, 1)
	_ = p.AddConstraint(c1, core.LessThanOrEqualTo, 10)

	c2 := core.NewExpression()
	c2.Set(0, 1)
	c2.Set(1, 2)
	_ = p.AddConstraint(c2, core.LessThanOrEqualTo, 15)

	obj := core.NewExpression()
	obj.Set(0, 2)
	obj.Set(1, 3)
	p.SetObjective(obj, core.Maximize)

	sol, err := simplex.Solve(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", sol.Values[0], sol.Values[1], *sol.Objective)
	// Output: 5 5 25
}
