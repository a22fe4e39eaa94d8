// Package gaussian solves square systems of linear equalities with no
// objective: partial-pivoting Gaussian elimination to upper-triangular
// form, followed by back substitution. It is the engine the dispatcher
// picks when a Problem carries no objective and every variable is
// Continuous.
//
// Grounded on original_source/src/gaussian_elimination.rs, which already
// expressed this algorithm in terms of a typed Row/Col matrix. This
// package keeps that structure nearly verbatim, translated into Go and
// onto the matrix package built for this module.
package gaussian
