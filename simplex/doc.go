// Package simplex implements two-phase tableau Simplex for continuous
// linear programs: an objective plus any mix of <=, =, >= constraints.
// It is the engine the dispatcher picks when a Problem carries an
// objective and every variable is Continuous.
//
// The tableau dedicates two leading rows (Phase-I objective, Phase-II
// objective) and two leading columns (their markers) so both objectives
// coexist in one matrix for the whole solve; Phase II is reached by
// narrowing the matrix's window rather than rebuilding it. This layout,
// and the pivot-selection rules in simplex.go, are original to this module.
// original_source/src/simplex.rs shows an earlier single-phase version of
// the same algorithm family, grounding the pivoting and tableau-walking
// style but not the two-phase construction itself.
package simplex
