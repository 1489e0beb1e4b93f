// Package kinetics fits Michaelis–Menten enzyme kinetics from
// (substrate, velocity) observations by linear regression on a
// linearised form of the rate law
//
//	v = Vmax·[S] / (Km + [S])
//
// Supported linearisations:
//
//	Hanes–Woolf:     [S]/v = (1/Vmax)·[S] + Km/Vmax
//	Lineweaver–Burk:   1/v = (Km/Vmax)·(1/[S]) + 1/Vmax
//
// Hanes–Woolf weights the data more evenly and is the default. The fitted
// Params can be evaluated (Rate), inverted (Substrate), or integrated over
// time (Remaining), the last by Newton's method on the integrated rate law.
package kinetics
