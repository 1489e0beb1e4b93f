package kinetics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

// HanesWoolfFit is Fit(obs, HanesWoolf).
func HanesWoolfFit(obs []Observation) (FitResult, error) {
	return Fit(obs, HanesWoolf)
}

// Fit estimates Vmax and Km from obs with the given linearisation.
//
// Implementation:
//   - Stage 1: validate observations (count, finiteness, positivity, spread).
//   - Stage 2: map each observation to (x, y) for the method and solve the
//     2-parameter least-squares line y = slope·x + intercept.
//   - Stage 3: recover (Vmax, Km) from (slope, intercept) and compute R².
//
// Errors: ErrTooFewObservations, ErrInvalidObservation, ErrDegenerate,
// ErrNonPhysical, ErrUnknownMethod.
//
// Complexity: O(n).
func Fit(obs []Observation, m Method) (FitResult, error) {
	if m != HanesWoolf && m != LineweaverBurk {
		return FitResult{}, ErrUnknownMethod
	}
	if len(obs) < 2 {
		return FitResult{}, ErrTooFewObservations
	}
	for i, o := range obs {
		if !finitePositive(o.S) || !finitePositive(o.V) {
			return FitResult{}, fmt.Errorf("observation %d: %w", i, ErrInvalidObservation)
		}
	}
	if !varies(obs) {
		return FitResult{}, ErrDegenerate
	}

	rows := make([][]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		x, y := linearise(o, m)
		rows[i] = []float64{x, 1}
		ys[i] = y
	}
	X, err := matrix.NewFromRows(rows)
	if err != nil {
		return FitResult{}, fmt.Errorf("kinetics: %w", err)
	}
	beta, err := matrix.LeastSquares(X, ys)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return FitResult{}, ErrDegenerate
		}
		return FitResult{}, fmt.Errorf("kinetics: %w", err)
	}
	slope, intercept := beta[0], beta[1]

	var p Params
	switch m {
	case HanesWoolf:
		// slope = 1/Vmax, intercept = Km/Vmax
		p.Vmax = 1 / slope
		p.Km = intercept * p.Vmax
	case LineweaverBurk:
		// slope = Km/Vmax, intercept = 1/Vmax
		p.Vmax = 1 / intercept
		p.Km = slope * p.Vmax
	}
	if !(p.Vmax > 0) || p.Km < 0 || math.IsInf(p.Vmax, 0) || math.IsNaN(p.Km) {
		return FitResult{}, ErrNonPhysical
	}

	return FitResult{
		Params:    p,
		Method:    m,
		Slope:     slope,
		Intercept: intercept,
		R2:        rSquared(rows, ys, slope, intercept),
		N:         len(obs),
	}, nil
}

func linearise(o Observation, m Method) (x, y float64) {
	if m == LineweaverBurk {
		return 1 / o.S, 1 / o.V
	}

	return o.S, o.S / o.V
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func varies(obs []Observation) bool {
	for _, o := range obs[1:] {
		if o.S != obs[0].S {
			return true
		}
	}

	return false
}

// rSquared returns 1 − SSres/SStot; a perfectly flat y gives 1 when the
// line matches it exactly.
func rSquared(rows [][]float64, ys []float64, slope, intercept float64) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot, d float64
	for i, y := range ys {
		d = y - (slope*rows[i][0] + intercept)
		ssRes += d * d
		d = y - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}

	return 1 - ssRes/ssTot
}
