// Package matrix offers a coordinate-keyed sparse integer matrix.
//
// The matrix package provides:
//
//   - Sparse, a dictionary-of-keys matrix that stores only nonzero int64
//     values in a map keyed by Coord. Absent cells read as zero.
//   - Parse / ReadFile for the textual "rows= / cols= / (r,c,v)" format,
//     Display and Encode for writing it back.
//   - Add, Sub and Mul, each returning a fresh matrix that never aliases
//     its operands.
//   - ToDense / FromDense bridges to gonum's mat.Dense.
//
// Add and Sub run in O(nnz(a) + nnz(b)). Mul indexes the right operand by
// row once and runs in O(nnz(b) + Σ nnz(row k of b)) over the stored cells
// (i,k) of a, so it never scans zero cells of either operand.
//
// Every error returned by the package matches one of the sentinels in
// errors.go via errors.Is. See the examples in this package for usage
// patterns.
package matrix
