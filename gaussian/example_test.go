package gaussian_test

import (
	"fmt"

	"github.com/katalvlaran/gosolve/core"
	"github.com/katalvlaran/gosolve/gaussian"
)

// ExampleSolve solves a square 3x3 equality system.
func ExampleSolve() {
	p := core.NewProblem()
	p.AddVariable()
	p.AddVariable()
	p.AddVariable()

	row1 := core.NewExpression()
	row1.Set(0, 1)
	row1.Set(1, 1)
	row1.Set(2, 1)
	_ = p.AddConstraint(row1, core.EqualTo, 6)

	row2 := core.NewExpression()
	row2.Set(0, 1)
	row2.Set(1, -1)
	row2.Set(2, 0)
	_ = p.AddConstraint(row2, core.EqualTo, -1)

	row3 := core.NewExpression()
	row3.Set(0, 0)
	row3.Set(1, 1)
	row3.Set(2, -1)
	_ = p.AddConstraint(row3, core.EqualTo, -1)

	sol, err := gaussian.Solve(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %.1f %.1f\n", sol.Values[0], sol.Values[1], sol.Values[2])
	// Output: 1.0 2.0 3.0
}
