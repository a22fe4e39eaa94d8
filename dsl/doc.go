// Package dsl is a convenience layer for assembling a core.Problem from
// terse constraint rows instead of calling core's builder methods one at
// a time. It is not part of the solving core; it only ever produces a
// *core.Problem, which any of gaussian, simplex, brute, or gosolve.Solve
// then consumes unmodified.
//
// Grounded on lvlath/builder's Constructor/BuildGraph pattern: a
// Constructor is a deterministic mutation applied to a Problem in order,
// and BuildProblem is the single orchestrator that applies them and
// surfaces the first error. This replaces the
// create_problem!/create_constraint!/add_variables! macros
// original_source/src/problem.rs used for the same purpose. Go has no
// macros, so the same compactness comes from ordinary functions
// returning closures.
package dsl
