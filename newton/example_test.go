package newton_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/newton"
)

// ExampleSolve finds √5 as the positive root of x² − 5.
func ExampleSolve() {
	f := func(p []float64) float64 { return p[0]*p[0] - 5 }

	root, err := newton.Solve(f, []float64{2}, 0, 0.00001)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.5f\n", root)
	// Output:
	// root=2.23607
}

// ExampleSolve_divergent shows the NaN sentinel for a flat function.
func ExampleSolve_divergent() {
	flat := func([]float64) float64 { return 1 }

	root, err := newton.Solve(flat, []float64{0}, 0, 1e-5)
	fmt.Println(err, math.IsNaN(root))
	// Output:
	// <nil> true
}

// ExampleSolveResult solves for the second parameter of a·x = b while
// forwarding a and b unchanged.
func ExampleSolveResult() {
	// params: [a, x, b]; f = a·x − b
	f := func(p []float64) float64 { return p[0]*p[1] - p[2] }

	res, err := newton.SolveResult(f, []float64{4, 0, 10}, 0, 1e-6, newton.WithVariableIndex(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s x=%.4f\n", res.Status, res.Root)
	// Output:
	// converged x=2.5000
}
