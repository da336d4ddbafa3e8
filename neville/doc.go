// Package neville evaluates polynomial interpolants through tabulated
// samples using Neville's correction tableau, reporting an error estimate
// alongside every value.
//
// 🚀 What is Neville's algorithm?
//
//	Through any n samples with distinct abscissas passes exactly one
//	polynomial of degree n-1. Neville's recursion builds its value at a
//	query point from a triangular tableau of partial interpolants,
//	tracking the *differences* between adjacent tableau entries (the C
//	and D correction arrays) instead of absolute values — a formulation
//	that reduces cancellation error and yields, for free, the size of the
//	last correction added. That last correction is the standard heuristic
//	convergence signal for the returned value.
//
// ✨ Key features:
//   - value + error estimate from a single evaluation
//   - local windows: interpolate with order n ≤ M nearest samples
//     instead of one global degree-(M-1) polynomial
//   - pluggable bracket search (bisection by default, hunting for
//     correlated query streams) via the search package
//   - direct Lagrange evaluation as an independent cross-check
//   - sentinel errors, never silent approximation: numerically
//     coincident abscissas surface as ErrCoincidentNodes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interpol/neville"
//
//	ip, err := neville.New(xs, ys)            // full-order interpolation
//	y, est, err := ip.Evaluate(0.25)          // value + last correction
//
//	ip, err = neville.New(xs, ys,
//	    neville.WithOrder(4),                 // 4-point local windows
//	    neville.WithStrategy(search.StrategyHunt),
//	)
//
// Out-of-range queries are extrapolation: the window clamps to the nearest
// table edge and accuracy is explicitly not guaranteed. That is documented
// behavior, not an error.
//
// Concurrency: Evaluate mutates two pieces of per-instance state — the
// last error estimate behind LastEstimate, and (under StrategyHunt) the
// hunting cursor. One logical caller per Interpolator; share only behind
// external synchronization.
//
// Complexity:
//
//   - Evaluate: O(n²) time over the window order n, O(n) scratch space,
//     plus the configured bracket search
//   - Lagrange:  O(M²) time, O(1) space
package neville
