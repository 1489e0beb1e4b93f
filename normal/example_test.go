package normal_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmath/normal"
)

// ExampleLookup reads Φ(1.96) from the z-table.
func ExampleLookup() {
	p, err := normal.Lookup(1.96)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", p)
	// Output:
	// 0.9750
}

// ExampleQuantile computes the two-sided 95% critical value.
func ExampleQuantile() {
	z, err := normal.Quantile(0.975)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", z)
	// Output:
	// 1.9600
}

// ExampleWriteTable prints the first two positive rows.
func ExampleWriteTable() {
	_ = normal.WriteTable(os.Stdout, 0, 0.1)
	// Output:
	//     z    .00    .01    .02    .03    .04    .05    .06    .07    .08    .09
	//   0.0 0.5000 0.5040 0.5080 0.5120 0.5160 0.5199 0.5239 0.5279 0.5319 0.5359
	//   0.1 0.5398 0.5438 0.5478 0.5517 0.5557 0.5596 0.5636 0.5675 0.5714 0.5753
}
