// Package newton finds roots of scalar functions with Newton's method,
// estimating the derivative by a forward finite difference.
//
// 🚀 What is it?
//
//	Given f(params) and a target value t, Newton's method refines a guess x
//	for params[i] using the local tangent line:
//
//	  x ← x + (t − f(x)) / f'(x)
//
//	f'(x) is not supplied by the caller. It is estimated as
//
//	  (f(x + tol) − f(x)) / tol
//
//	so the tolerance doubles as the finite-difference step.
//
// ✨ Key features:
//   - any ordered parameter vector; one index is the unknown, the rest are
//     forwarded unchanged on every evaluation
//   - two failure channels: validation errors (bad tolerance, bad index,
//     nil function) and numeric divergence (flat slope, iteration budget)
//   - sentinel NaN API (Solve) and tagged Result API (SolveResult)
//   - per-iteration and completion hooks for tracing and metrics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmath/newton"
//
//	f := func(p []float64) float64 { return p[0]*p[0] - 5 }
//	root, err := newton.Solve(f, []float64{2}, 0, 1e-5)
//	if err != nil {
//	    // invalid tolerance / index / function
//	}
//	if math.IsNaN(root) {
//	    // did not converge
//	}
//
// Convergence is local: different initial guesses may converge to different
// roots, or not at all.
//
// Performance:
//
//   - Time:   O(MaxIterations) evaluations of f (exactly two per iteration)
//   - Memory: O(len(params)) for the private work buffer
package newton
