// Command solve-demo builds one of three canned problems and solves it,
// printing the resulting Solution or error. It exists to exercise the
// library end-to-end from the command line, the same role
// original_source/src/main.rs played for rusolve.
package main

import (
	"flag"
	"fmt"
	"os"

	gosolve "github.com/katalvlaran/gosolve"
	"github.com/katalvlaran/gosolve/dsl"
	"github.com/katalvlaran/gosolve/internal/logx"
	"github.com/rs/zerolog"
)

func main() {
	kind := flag.String("problem", "linear", "which canned problem to solve: linear, lp, or integer")
	verbose := flag.Bool("verbose", false, "log engine progress at debug level")
	flag.Parse()

	if *verbose {
		logx.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.DebugLevel))
	}

	p, err := buildProblem(*kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sol, err := gosolve.Solve(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve failed:", err)
		os.Exit(1)
	}

	fmt.Printf("values: %v\n", sol.Values)
	if sol.Objective != nil {
		fmt.Printf("objective: %v\n", *sol.Objective)
	}
}

func buildProblem(kind string) (*gosolve.Problem, error) {
	switch kind {
	case "linear":
		// A square equality system with no objective, solved by Gaussian
		// elimination: 2x+y-z=8, -3x-y+2z=-11, -2x+y+2z=-3.
		return dsl.BuildProblem(
			dsl.Vars(3),
			dsl.Rule("eq", 8, 2, 1, -1),
			dsl.Rule("eq", -11, -3, -1, 2),
			dsl.Rule("eq", -3, -2, 1, 2),
		)
	case "lp":
		// A bounded maximization, solved by two-phase Simplex.
		return dsl.BuildProblem(
			dsl.Vars(2),
			dsl.Rule("le", 10, 1, 1),
			dsl.Rule("le", 15, 1, 2),
			dsl.Maximize(2, 3),
		)
	case "integer":
		// A small 0/1 knapsack-style problem, solved by brute force.
		return dsl.BuildProblem(
			dsl.IntVars([2]int32{0, 1}, [2]int32{0, 1}, [2]int32{0, 1}),
			dsl.Rule("le", 2, 1, 1, 1),
			dsl.Maximize(4, 5, 3),
		)
	default:
		return nil, fmt.Errorf("unknown -problem %q: want linear, lp, or integer", kind)
	}
}
