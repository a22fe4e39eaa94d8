package dsl_test

import (
	"fmt"

	"github.com/katalvlaran/gosolve/dsl"
	"github.com/katalvlaran/gosolve/simplex"
)

// ExampleBuildProblem assembles a Problem from terse constructors and
// hands it to a specific engine, the same *core.Problem a call to
// gosolve.Solve would also accept.
func ExampleBuildProblem() {
	p, err := dsl.BuildProblem(
		dsl.Vars(2),
		dsl.Rule("le", 10, 1, 1),
		dsl.Rule("le", 15, 1, 2),
		dsl.Maximize(2, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	sol, err := simplex.Solve(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", sol.Values[0], sol.Values[1], *sol.Objective)
	// Output: 5 5 25
}
