package neville_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/interpol/neville"
	"github.com/katalvlaran/interpol/search"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleInterpolator_Evaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five samples of the Gaussian exp(-x²/2) on [-1, 1], queried between
//	the nodes at x = 0.25. Full-order interpolation (degree 4) recovers
//	the true value to a few parts in 10⁴, and the returned estimate —
//	the last correction the tableau added — is of matching size.
//
// Options:
//   - none — full table, bisection window seating.
//
// Complexity: O(M²) per evaluation for window order M.
func ExampleInterpolator_Evaluate() {
	xs := []float64{-1, -0.5, 0, 0.5, 1}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Exp(-0.5 * x * x)
	}

	ip, err := neville.New(xs, ys)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, est, err := ip.Evaluate(0.25)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value    %.5f\n", y)
	fmt.Printf("true     %.5f\n", math.Exp(-0.5*0.25*0.25))
	fmt.Printf("|est|<1e-2  %v\n", math.Abs(est) < 1e-2)
	// Output:
	// value    0.96943
	// true     0.96923
	// |est|<1e-2  true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInterpolator_EvaluateAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Resampling a coarse table onto a finer grid with 3-point local
//	windows and a hunting search — the sweep is sorted, so each window
//	seat costs only a couple of comparisons.
//
// Use case:
//
//	Densifying measurement tables before plotting or further processing.
func ExampleInterpolator_EvaluateAll() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16} // y = x²

	ip, err := neville.New(xs, ys,
		neville.WithOrder(3),
		neville.WithStrategy(search.StrategyHunt),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, err := ip.EvaluateAll([]float64{0.5, 1.5, 2.5, 3.5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f\n", out)
	// Output:
	// [0.25 2.25 6.25 12.25]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLagrange
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same quadratic, evaluated through the direct Lagrange form.
//	A quadratic is reproduced exactly by any table of ≥ 3 of its samples.
func ExampleLagrange() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 2, 5, 10} // y = x² + 1

	y, err := neville.Lagrange(xs, ys, 2.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("L(2.5) = %.2f\n", y)
	// Output:
	// L(2.5) = 7.25
}
