// Package brute enumerates every integer assignment within variable
// bounds and keeps the best feasible one. It is the engine the
// dispatcher picks when a Problem carries an objective and at least one
// Integer variable.
//
// Grounded on original_source/src/brute.rs: the recursive descent over
// variable bounds, the epsilon-tolerance feasibility test, and the
// keep-if-strictly-better rule all follow that file's structure.
//
// A Continuous variable reaching this engine (a problem mixing Continuous
// and Integer variables) is treated as bounded to [0, 0],
// matching original_source/src/brute.rs's VariableKind::Continuous arm.
// This is very likely an oversight in the original rather than an
// intended feature (see the discussion on SolveWithTolerance), so a solve
// that pins any such variable logs one warning naming the pinning rather
// than silently applying it.
package brute
