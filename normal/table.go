package normal

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
)

// Table bounds and precision, as printed in standard z-tables.
const (
	// TableMax is the largest |z| listed.
	TableMax = 3.49

	// zPlaces is the number of decimals z is rounded to before a lookup.
	zPlaces = 2

	// phiPlaces is the number of decimals Φ is listed with.
	phiPlaces = 4

	// tableHundredths is TableMax expressed in hundredths.
	tableHundredths = 349
)

// entries[k] holds Φ(z) for z = (k − tableHundredths)/100, rounded.
var entries = buildEntries()

func buildEntries() []decimal.Decimal {
	out := make([]decimal.Decimal, 2*tableHundredths+1)
	for k := range out {
		z := decimal.New(int64(k-tableHundredths), -zPlaces)
		out[k] = decimal.NewFromFloat(CDF(z.InexactFloat64())).Round(phiPlaces)
	}

	return out
}

// roundZ rounds z half away from zero to two decimals and returns it in
// hundredths.
func roundZ(z float64) int64 {
	return decimal.NewFromFloat(z).Round(zPlaces).Shift(zPlaces).IntPart()
}

// Lookup returns the table value of Φ for z rounded to two decimals.
//
// Errors:
//   - ErrNaN for NaN.
//   - ErrOutOfTable when the rounded |z| exceeds TableMax (±Inf included).
func Lookup(z float64) (float64, error) {
	if math.IsNaN(z) {
		return math.NaN(), ErrNaN
	}
	if math.Abs(z) > TableMax+0.005 {
		return math.NaN(), ErrOutOfTable
	}
	h := roundZ(z)
	if h < -tableHundredths || h > tableHundredths {
		return math.NaN(), ErrOutOfTable
	}

	return entries[h+tableHundredths].InexactFloat64(), nil
}

// ReverseLookup returns the tabulated z whose Φ entry is closest to p.
// Ties go to the z of smaller magnitude.
//
// Errors:
//   - ErrProbability unless 0 < p < 1.
//
// Complexity: O(log n) over the monotone table.
func ReverseLookup(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return math.NaN(), ErrProbability
	}
	target := decimal.NewFromFloat(p)

	// First index whose entry is ≥ p.
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if entries[mid].LessThan(target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	best := lo
	switch {
	case lo == len(entries):
		best = lo - 1
	case lo > 0:
		above := entries[lo].Sub(target).Abs()
		below := target.Sub(entries[lo-1]).Abs()
		if c := below.Cmp(above); c < 0 || (c == 0 && abs64(int64(lo-1-tableHundredths)) < abs64(int64(lo-tableHundredths))) {
			best = lo - 1
		}
	}
	// Flat runs (e.g. 0.9998 repeated) map to the entry nearest zero.
	for best > tableHundredths && entries[best-1].Equal(entries[best]) {
		best--
	}
	for best < tableHundredths && entries[best+1].Equal(entries[best]) {
		best++
	}

	return decimal.New(int64(best-tableHundredths), -zPlaces).InexactFloat64(), nil
}

// WriteTable renders the table rows covering [from, to] in the printed
// layout: one row per tenth, columns .00 … .09. Negative rows run their
// columns away from zero (row -1.2, column .05 is z = -1.25), and -0.0 is a
// row of its own.
//
// Errors:
//   - ErrNaN / ErrOutOfTable for bounds outside the table.
//   - Write errors from w.
func WriteTable(w io.Writer, from, to float64) error {
	if math.IsNaN(from) || math.IsNaN(to) {
		return ErrNaN
	}
	if from > to {
		from, to = to, from
	}
	if from < -TableMax-0.005 || to > TableMax+0.005 {
		return ErrOutOfTable
	}
	hf, ht := roundZ(from), roundZ(to)
	if hf < -tableHundredths || ht > tableHundredths {
		return ErrOutOfTable
	}

	if _, err := fmt.Fprint(w, "    z"); err != nil {
		return err
	}
	for c := 0; c < 10; c++ {
		if _, err := fmt.Fprintf(w, "    .%02d", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for r := rowOf(hf); r <= rowOf(ht); r++ {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}

	return nil
}

// rowOf maps z in hundredths to a row index: r ≥ 0 is the row labelled
// r/10, r < 0 is the row labelled -(|r|-1)/10.
func rowOf(h int64) int64 {
	if h < 0 {
		return -(-h / 10) - 1
	}

	return h / 10
}

func writeRow(w io.Writer, r int64) error {
	neg := r < 0
	tenth := r
	if neg {
		tenth = -r - 1
	}
	label := decimal.New(tenth, -1).StringFixed(1)
	if neg {
		label = "-" + label
	}
	if _, err := fmt.Fprintf(w, "%5s", label); err != nil {
		return err
	}
	for c := int64(0); c < 10; c++ {
		h := tenth*10 + c
		if neg {
			h = -h
		}
		if _, err := fmt.Fprintf(w, " %s", entries[h+tableHundredths].StringFixed(phiPlaces)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
