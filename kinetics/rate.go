package kinetics

import (
	"math"

	"github.com/katalvlaran/lvmath/newton"
)

// remainingMaxIter bounds the integrated-rate solve.
const remainingMaxIter = 200

// Rate returns Vmax·s/(Km+s).
func (p Params) Rate(s float64) float64 {
	return p.Vmax * s / (p.Km + s)
}

// Substrate returns the concentration at which the rate equals v,
// s = Km·v/(Vmax − v).
//
// Errors:
//   - ErrNonPhysical for Vmax ≤ 0 or Km ≤ 0.
//   - ErrUnreachableRate unless 0 < v < Vmax.
func (p Params) Substrate(v float64) (float64, error) {
	if err := p.validate(); err != nil {
		return math.NaN(), err
	}
	if !(v > 0 && v < p.Vmax) {
		return math.NaN(), ErrUnreachableRate
	}

	return p.Km * v / (p.Vmax - v), nil
}

// ProgressFunc is the integrated rate law as a newton.Func over
// [ln S, S0, Km]:
//
//	Vmax·t = (S0 − S) + Km·ln(S0/S)
//
// It returns the right-hand side, i.e. Vmax times the time needed to go
// from S0 down to S. S0 and Km are passed through unchanged by the solver.
func ProgressFunc(params []float64) float64 {
	x, s0, km := params[0], params[1], params[2]

	return (s0 - math.Exp(x)) + km*(math.Log(s0)-x)
}

// Remaining returns the substrate concentration left after time t,
// starting from s0, by solving the integrated rate law with Newton's
// method in x = ln S.
//
// In x the progress function is decreasing and concave, and the guess
// x = ln s0 lies right of the root, so the iterates descend monotonically
// and S stays positive. tolerance is absolute in units of Vmax·t.
//
// Errors:
//   - ErrNonPhysical for Vmax ≤ 0 or Km ≤ 0.
//   - ErrInvalidObservation for s0 ≤ 0, t < 0, or non-finite inputs.
//   - newton.ErrInvalidTolerance for tolerance ≤ 0.
//   - ErrNoConvergence if the solve diverges.
func (p Params) Remaining(s0, t, tolerance float64) (float64, error) {
	if err := p.validate(); err != nil {
		return math.NaN(), err
	}
	if !finitePositive(s0) || !(t >= 0) || math.IsInf(t, 1) {
		return math.NaN(), ErrInvalidObservation
	}
	res, err := newton.SolveResult(ProgressFunc, []float64{math.Log(s0), s0, p.Km}, p.Vmax*t, tolerance,
		newton.WithMaxIterations(remainingMaxIter))
	if err != nil {
		return math.NaN(), err
	}
	if !res.Converged() {
		return math.NaN(), ErrNoConvergence
	}

	return math.Exp(res.Root), nil
}

func (p Params) validate() error {
	if !finitePositive(p.Vmax) || !finitePositive(p.Km) {
		return ErrNonPhysical
	}

	return nil
}
