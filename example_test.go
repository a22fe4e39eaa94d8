package gosolve_test

import (
	"fmt"

	gosolve "github.com/katalvlaran/gosolve"
)

// ExampleSolve lets the dispatcher route a maximize-with-<= problem to
// the Simplex engine automatically.
func ExampleSolve() {
	p := gosolve.NewProblem()
	p.AddVariable()
	p.AddVariable()

	c1 := gosolve.NewExpression()
	c1.Set(0, 1)
	c1.Set(1, 1)
	_ = p.AddConstraint(c1, gosolve.LessThanOrEqualTo, 10)

	c2 := gosolve.NewExpression()
	c2.Set(0, 1)
	c2.Set(1, 2)
	_ = p.AddConstraint(c2, gosolve.LessThanOrEqualTo, 15)

	obj := gosolve.NewExpression()
	obj.Set(0, 2)
	obj.Set(1, 3)
	p.SetObjective(obj, gosolve.Maximize)

	sol, err := gosolve.Solve(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", sol.Values[0], sol.Values[1], *sol.Objective)
	// Output: 5 5 25
}
