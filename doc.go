// Package lvmath is a small collection of stateless numeric routines, one
// package per routine family, plus a command line and tool server on top.
//
// 🚀 What is lvmath?
//
//	A pure-Go toolbox for the calculations that keep coming back in lab
//	and coursework code:
//		• Root finding: Newton–Raphson with a finite-difference slope
//		• Normal distribution: Φ, φ, the printed four-place z-table and its inverse
//		• Enzyme kinetics: Michaelis–Menten fits (Hanes–Woolf, Lineweaver–Burk)
//		  and the integrated rate law
//		• Dense matrices: just enough linear algebra for least squares
//
// ✨ Why choose lvmath?
//
//   - Stateless – every call is independent and safe for concurrent use
//   - Two failure channels – usage errors are returned as errors, numeric
//     divergence is reported as NaN or a tagged result
//   - Hooks – observe every Newton iteration or completion (tracing, metrics)
//
// Packages:
//
//	newton/    — Solve / SolveResult, options, Polynomial helper
//	normal/    — CDF, PDF, Quantile, Lookup, ReverseLookup, WriteTable
//	kinetics/  — Fit, HanesWoolfFit, Params.Rate / Substrate / Remaining
//	matrix/    — Dense, Transpose, Mul, MatVec, Inverse, LeastSquares
//	cmd/lvmath — the lvmath command (solve, normal, kinetics, serve, version)
//
// Quick example:
//
//	root, err := newton.Solve(func(p []float64) float64 { return p[0]*p[0] - 5 },
//		[]float64{2}, 0, 1e-5)
//	// root ≈ 2.23607
//
//	go install github.com/katalvlaran/lvmath/cmd/lvmath@latest
package lvmath
