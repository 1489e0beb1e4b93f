package kinetics

import "errors"

var (
	// ErrTooFewObservations indicates fewer than two observations.
	ErrTooFewObservations = errors.New("kinetics: at least two observations are required")

	// ErrInvalidObservation indicates a non-finite or non-positive S or V,
	// or an invalid starting concentration or time for Remaining.
	ErrInvalidObservation = errors.New("kinetics: observations must be finite and positive")

	// ErrDegenerate indicates all substrate concentrations are equal, so
	// no line can be fitted.
	ErrDegenerate = errors.New("kinetics: substrate concentrations do not vary")

	// ErrNonPhysical indicates a fit produced Vmax ≤ 0 or Km < 0, or Params
	// with non-positive constants were evaluated.
	ErrNonPhysical = errors.New("kinetics: parameters are not physical")

	// ErrUnreachableRate indicates a rate outside (0, Vmax).
	ErrUnreachableRate = errors.New("kinetics: rate must be in (0, Vmax)")

	// ErrNoConvergence indicates the substrate solve did not converge.
	ErrNoConvergence = errors.New("kinetics: substrate solve did not converge")

	// ErrUnknownMethod indicates an unsupported linearisation.
	ErrUnknownMethod = errors.New("kinetics: unknown fitting method")
)

// Observation is one measured initial velocity V at substrate
// concentration S. Units are the caller's; Vmax and Km come back in the
// same units.
type Observation struct {
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Method selects the linearisation used by Fit.
type Method int

const (
	// HanesWoolf regresses S/v on S.
	HanesWoolf Method = iota

	// LineweaverBurk regresses 1/v on 1/S.
	LineweaverBurk
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case HanesWoolf:
		return "hanes-woolf"
	case LineweaverBurk:
		return "lineweaver-burk"
	default:
		return "unknown"
	}
}

// ParseMethod maps "hanes-woolf" / "lineweaver-burk" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "hanes-woolf", "hanes_woolf", "hw":
		return HanesWoolf, nil
	case "lineweaver-burk", "lineweaver_burk", "lb":
		return LineweaverBurk, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Params are the Michaelis–Menten constants.
type Params struct {
	Vmax float64 `json:"vmax"`
	Km   float64 `json:"km"`
}

// FitResult is the outcome of a linearised regression.
type FitResult struct {
	Params

	Method Method `json:"-"`

	// Slope and Intercept of the fitted line in the linearised coordinates.
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`

	// R2 is the coefficient of determination in linearised coordinates.
	R2 float64 `json:"r2"`

	// N is the number of observations used.
	N int `json:"n"`
}
