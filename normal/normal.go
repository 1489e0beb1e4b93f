package normal

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvmath/newton"
)

var (
	// ErrOutOfTable indicates |z| rounds past the table bound (3.49).
	ErrOutOfTable = errors.New("normal: z outside table range [-3.49, 3.49]")

	// ErrNaN indicates a NaN argument.
	ErrNaN = errors.New("normal: argument is NaN")

	// ErrProbability indicates p is not strictly inside (0, 1).
	ErrProbability = errors.New("normal: probability must be in (0, 1)")

	// ErrNoConvergence indicates the quantile solve did not converge.
	ErrNoConvergence = errors.New("normal: quantile did not converge")
)

// Quantile solver settings.
const (
	quantileTolerance = 1e-10
	quantileMaxIter   = 100
)

// CDF returns Φ(z) = ½·erfc(−z/√2).
func CDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// PDF returns the standard normal density at z.
func PDF(z float64) float64 {
	return math.Exp(-0.5*z*z) / math.Sqrt(2*math.Pi)
}

// logCDFFunc adapts log Φ to newton.Func; params = [z].
func logCDFFunc(p []float64) float64 { return math.Log(CDF(p[0])) }

// Quantile returns z such that Φ(z) = p.
//
// The lower half is solved as log Φ(z) = log p with Newton's method; the
// upper half uses Φ(−z) = 1 − Φ(z). Working in log space keeps the
// residual tolerance relative, so tail probabilities such as 1e-9 are
// resolved as accurately as central ones.
//
// The initial guess −√(−2·ln p) always lies left of the root, because
// Φ(−a) ≤ ½·exp(−a²/2). log Φ is increasing and concave, so the iterates
// then climb to the root monotonically without overshooting into the
// underflow region.
//
// Errors:
//   - ErrProbability unless 0 < p < 1.
//   - ErrNoConvergence when the solve diverges; in practice only for
//     subnormal p, where Φ underflows at the initial guess.
func Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return math.NaN(), ErrProbability
	}
	if p > 0.5 {
		z, err := lowerQuantile(1 - p)

		return -z, err
	}

	return lowerQuantile(p)
}

func lowerQuantile(p float64) (float64, error) {
	lp := math.Log(p)
	res, err := newton.SolveResult(logCDFFunc, []float64{-math.Sqrt(-2 * lp)}, lp, quantileTolerance,
		newton.WithMaxIterations(quantileMaxIter))
	if err != nil {
		return math.NaN(), err
	}
	if !res.Converged() {
		return math.NaN(), ErrNoConvergence
	}

	return res.Root, nil
}
