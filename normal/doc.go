// Package normal provides standard normal distribution functions and the
// classic printed z-table.
//
// 🚀 What is it?
//
//	Φ(z) is the probability that a standard normal variable is ≤ z.
//	Textbook z-tables list Φ rounded to four decimals for z in
//	[−3.49, 3.49] in steps of 0.01; Lookup and ReverseLookup reproduce
//	exactly those table reads, while CDF and Quantile are the continuous
//	functions behind them.
//
// ⚙️ Usage:
//
//	p, err := normal.Lookup(1.96)        // 0.975
//	z, err := normal.ReverseLookup(0.95) // 1.64 (closest table entry)
//	q, err := normal.Quantile(0.975)     // 1.959964…
//
// Quantile inverts CDF with the newton package, so its failure modes are
// those of Newton's method (see ErrNoConvergence).
package normal
