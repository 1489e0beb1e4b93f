// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear algebra kernel: a row-major
// Dense type with bounds-checked access, Transpose, Mul, MatVec, Inverse and
// an ordinary least-squares solver used by the regression fits in kinetics.
//
// Design:
//   - Deterministic loop order (i→j→k) everywhere; no randomness.
//   - Sentinel errors only (errors.go), wrapped with the operation name.
//   - Inputs are never mutated; every kernel allocates its result.
//
// This is not a general linear-algebra engine. It covers exactly what the
// fitting routines need.
package matrix
