// Package search locates brackets in strictly increasing sample tables.
//
// 🚀 What is a bracket?
//
//	Given a table xs[0] < xs[1] < … < xs[M-1] and a query x, the bracket is
//	the index i with xs[i] ≤ x < xs[i+1]. Brackets are the entry point for
//	piecewise evaluation of tabulated functions: interpolation, lookup
//	tables, histogram binning, time-series alignment.
//
// ✨ Key features:
//   - Linear — O(M) scan; the correctness reference, and fastest for very
//     small or uncorrelated tables
//   - Bisection — O(log M) halving; the workhorse for arbitrary queries
//   - Hunt — exponential expansion from a previous bracket, then a local
//     bisection; sub-logarithmic when consecutive queries are close
//   - Cursor — remembers the last bracket so a query stream can hunt
//     without the caller threading hints by hand
//   - Locate — validating facade selecting a Strategy via functional
//     options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interpol/search"
//
//	xs := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
//	i, err := search.Locate(xs, 45) // bisection by default
//	// i == 4, since xs[4]=40 ≤ 45 < 50=xs[5]
//
//	var cur search.Cursor
//	for _, x := range stream { // correlated queries
//	    i, err := cur.Search(xs, x)
//	    …
//	}
//
// Edge behavior (documented, not an error): queries at or beyond the table
// ends clamp to the nearest valid bracket — 0 below the table, M-2 at or
// above the top. The one exception is the low-level Linear, which reports
// ErrBelowTable when x < xs[0]; the Locate facade clamps for every
// strategy so extrapolating callers see uniform semantics.
//
// All three strategies agree on every in-table query; this identity is
// covered by tests and safe to rely on.
//
// Complexity:
//
//   - Linear:    O(M) time, O(1) space
//   - Bisection: O(log M) time, O(1) space
//   - Hunt:      O(log d) time for a query d brackets away from the hint,
//     degrading to O(log M) when locality is absent
package search
