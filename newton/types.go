package newton

import (
	"errors"
	"math"
)

// Validation errors. They are returned before f is evaluated even once.
// Numeric non-convergence is never reported through these; see Status.
var (
	// ErrInvalidTolerance indicates tolerance is not strictly positive (or is NaN).
	ErrInvalidTolerance = errors.New("newton: tolerance must be > 0")

	// ErrVariableIndex indicates the variable index does not address params.
	ErrVariableIndex = errors.New("newton: variable index out of range")

	// ErrNilFunc indicates a nil target function.
	ErrNilFunc = errors.New("newton: function is nil")
)

// Func is the target function. It receives the full ordered parameter
// vector and returns a real number. It must be deterministic and must not
// retain or modify params.
type Func func(params []float64) float64

// Status is the tagged outcome of a solve.
type Status int

const (
	// Converged means the residual dropped to tolerance or below.
	Converged Status = iota

	// Divergent means no root was found; see Reason.
	Divergent
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Divergent:
		return "divergent"
	default:
		return "unknown"
	}
}

// Reason explains a Divergent result.
type Reason int

const (
	// ReasonNone is used for converged results.
	ReasonNone Reason = iota

	// ReasonFlatSlope means |slope| < tolerance at some iteration.
	ReasonFlatSlope

	// ReasonIterationLimit means the iteration budget ran out first.
	ReasonIterationLimit

	// ReasonNonFinite means f produced NaN or the guess left the finite range.
	ReasonNonFinite
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonFlatSlope:
		return "flat_slope"
	case ReasonIterationLimit:
		return "iteration_limit"
	case ReasonNonFinite:
		return "non_finite"
	default:
		return "unknown"
	}
}

// Result holds the outcome of SolveResult.
type Result struct {
	// Root is the last guess. Meaningful only when Status == Converged.
	Root float64

	Status Status
	Reason Reason

	// Iterations counts completed Newton updates. A flat-slope exit stops
	// before the update, so it is not counted.
	Iterations int

	// Evaluations counts calls to f (two per iteration attempt).
	Evaluations int

	// Residual is |target − f(guess)| from the last evaluated iteration.
	Residual float64
}

// Converged reports whether r holds a root.
func (r Result) Converged() bool { return r.Status == Converged }

// Value returns Root when converged and NaN otherwise.
func (r Result) Value() float64 {
	if r.Status != Converged {
		return math.NaN()
	}

	return r.Root
}

// Step describes a single iteration; passed to the WithOnIteration hook
// after the slope is known and before the guess is updated.
type Step struct {
	Iteration int     // 1-based
	Guess     float64 // guess the outputs were taken at
	Output    float64 // f(guess)
	Slope     float64 // finite-difference slope
	Residual  float64 // |target − Output|
}
