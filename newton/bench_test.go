package newton_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/newton"
)

// BenchmarkSolve_Quadratic benchmarks the √5 solve.
func BenchmarkSolve_Quadratic(b *testing.B) {
	f := newton.Polynomial(1, 0, -5)
	params := []float64{2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newton.Solve(f, params, 0, 1e-9); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Budget benchmarks a solve that exhausts the default budget.
func BenchmarkSolve_Budget(b *testing.B) {
	// No real root: x² + 1.
	f := newton.Polynomial(1, 0, 1)
	params := []float64{0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = newton.Solve(f, params, 0, 1e-9)
	}
}
