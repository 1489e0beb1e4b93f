package newton

import "math"

// Solve returns the value of params[i] for which f(params) == target within
// tolerance, where i is the variable index (default 0). params[i] is the
// initial guess.
//
// Errors (returned before any evaluation of f):
//   - ErrInvalidTolerance: tolerance ≤ 0 or NaN.
//   - ErrNilFunc: f is nil.
//   - ErrVariableIndex: i ≥ len(params).
//
// Numeric failure is not an error: when the slope is too flat or the
// iteration budget runs out, Solve returns NaN. Test it with math.IsNaN.
//
// Example:
//
//	root, err := Solve(f, []float64{2}, 0, 1e-5)
func Solve(f Func, params []float64, target, tolerance float64, opts ...Option) (float64, error) {
	res, err := SolveResult(f, params, target, tolerance, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return res.Value(), nil
}

// SolveResult runs the same iteration as Solve and reports the outcome as a
// tagged Result instead of a NaN sentinel.
//
// Algorithm (per iteration, at least one):
//  1. y  = f(params with p[i] = x)
//  2. y⁺ = f(params with p[i] = x + tolerance)
//  3. slope = (y⁺ − y) / tolerance
//  4. |slope| < tolerance → Divergent / ReasonFlatSlope, stop.
//  5. delta = target − y; x += delta / slope
//  6. repeat while |delta| > tolerance and iterations < max.
//
// The finite-difference step is the tolerance itself.
//
// Complexity: O(max) time, exactly two calls to f per iteration;
// O(len(params)) space.
func SolveResult(f Func, params []float64, target, tolerance float64, opts ...Option) (Result, error) {
	// !(x > 0) also rejects NaN.
	if !(tolerance > 0) {
		return Result{}, ErrInvalidTolerance
	}
	if f == nil {
		return Result{}, ErrNilFunc
	}
	o := gatherOptions(opts)
	if o.index >= len(params) {
		return Result{}, ErrVariableIndex
	}

	// params is never written.
	work := make([]float64, len(params))
	copy(work, params)

	var (
		guess = params[o.index]
		res   Result
		y, yp float64
		slope float64
		delta float64
		dif   float64
	)

	for {
		work[o.index] = guess
		y = f(work)
		work[o.index] = guess + tolerance
		yp = f(work)
		res.Evaluations += 2

		slope = (yp - y) / tolerance
		delta = target - y
		dif = math.Abs(delta)

		if o.onIteration != nil {
			o.onIteration(Step{
				Iteration: res.Iterations + 1,
				Guess:     guess,
				Output:    y,
				Slope:     slope,
				Residual:  dif,
			})
		}

		if math.Abs(slope) < tolerance {
			res.Root = guess
			res.Residual = dif
			res.Status = Divergent
			res.Reason = ReasonFlatSlope

			return finish(o, res), nil
		}

		guess += delta / slope
		res.Iterations++

		if !(dif > tolerance && res.Iterations < o.maxIter) {
			break
		}
	}

	res.Root = guess
	res.Residual = dif
	switch {
	case math.IsNaN(dif) || math.IsNaN(guess) || math.IsInf(guess, 0):
		res.Status = Divergent
		res.Reason = ReasonNonFinite
	case dif > tolerance:
		res.Status = Divergent
		res.Reason = ReasonIterationLimit
	default:
		res.Status = Converged
		res.Reason = ReasonNone
	}

	return finish(o, res), nil
}

func finish(o options, res Result) Result {
	if o.onFinish != nil {
		o.onFinish(res)
	}

	return res
}

// Polynomial returns a Func evaluating the polynomial with the given
// coefficients (highest degree first) at params[0], using Horner's scheme.
// Entries of params beyond the first are ignored.
//
//	Polynomial(1, 0, -5) // x² − 5
func Polynomial(coeffs ...float64) Func {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return func(params []float64) float64 {
		x := params[0]
		var acc float64
		for _, k := range c {
			acc = acc*x + k
		}

		return acc
	}
}
