package kinetics_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/kinetics"
)

func BenchmarkHanesWoolfFit(b *testing.B) {
	obs := exact()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = kinetics.HanesWoolfFit(obs)
	}
}

func BenchmarkRemaining(b *testing.B) {
	p := kinetics.Params{Vmax: 10, Km: 2}
	for i := 0; i < b.N; i++ {
		_, _ = p.Remaining(100, 5, 1e-9)
	}
}
