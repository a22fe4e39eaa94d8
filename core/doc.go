// Package core defines the dependency-free data model shared by every
// solving engine in gosolve: variables, linear expressions, constraints,
// an optional objective, the Problem they compose into, the Solution an
// engine produces, and the typed Error/ErrorKind taxonomy engines fail
// with.
//
// Nothing in this package knows how to solve a Problem; that lives in
// matrix, gaussian, simplex, brute, and the root gosolve package. core
// exists so those packages (and dsl, the convenience-constructor layer)
// can share one vocabulary without importing each other.
//
// Construction is append-only and single-threaded: a Problem accumulates
// variables, then constraints (which are checked against the variable
// count declared so far), then at most one objective, then is handed to
// an engine. Nothing here is safe for concurrent mutation, nor does it
// need to be: gosolve's concurrency model is single-threaded throughout.
package core
