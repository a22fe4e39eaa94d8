// Package gosolve is a small linear-programming and linear-system solver.
// Build a Problem (variables, constraints, an optional objective) and
// call Solve; you get back a Solution or a typed Error describing why
// none was found.
//
// Three engines do the actual work, chosen automatically from the
// problem's shape:
//
//	gaussian/ : partial-pivoting Gaussian elimination for square systems
//	            of equalities with no objective.
//	simplex/  : two-phase tableau Simplex for continuous LPs with an
//	            objective.
//	brute/    : exhaustive integer enumeration for problems with at
//	            least one Integer variable and an objective.
//
// All three share matrix/ (a dense, typed-index Matrix with sub-view
// framing) and core/ (the dependency-free Variable/Expression/Constraint/
// Problem/Solution data model and error taxonomy). dsl/ is a convenience
// layer for assembling a Problem from terse constraint rows; it is not
// required, since any caller can build a Problem directly against core.
//
//	go get github.com/katalvlaran/gosolve
package gosolve
