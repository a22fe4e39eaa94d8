// Package matrix implements the dense, row-major Matrix every solving
// engine builds its numerical work on: Gaussian elimination's augmented
// system and the two-phase Simplex tableau share this one type rather
// than each rolling its own float64 grid. Brute force does not use it;
// it evaluates constraints over plain slices.
//
// A Matrix carries a fixed backing store (width*height float64s, set once
// at construction) and a window, the sub-rectangle currently visible to
// row operations, iteration, and indexing. Simplex narrows the window with
// Sub to retire the Phase-I objective row and column without copying or
// reallocating; every other engine uses the full window for the Matrix's
// lifetime.
//
// Row and Col are distinct unsigned types so a caller cannot pass a row
// index where a column index belongs. The two are deliberately not
// interchangeable without an explicit conversion, adding a typed-index
// boundary on top of the flat-slice indexing style this package is
// grounded on.
package matrix
