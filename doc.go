// Package interpol is a small toolkit for working with tabulated
// one-dimensional functions: locating where a query falls inside an ordered
// sample table, and reconstructing function values between the samples by
// polynomial interpolation.
//
// 🚀 What is interpol?
//
//	A pure-Go numerical library built around two classic, tightly coupled
//	routines:
//	  • Ordered-table search — find the bracket xs[i] ≤ x < xs[i+1] by
//	    linear scan, bisection, or "hunting" from a remembered position
//	  • Neville interpolation — evaluate the unique polynomial through a
//	    set of samples, with a built-in estimate of the last correction
//
// ✨ Why choose interpol?
//
//   - Explicit contracts — sentinel errors for every failure mode,
//     checked with errors.Is; no silent approximation
//   - Locality aware — hunting search makes correlated query streams
//     cheaper than repeated bisection
//   - Honest numerics — Neville's correction tableau reports the size of
//     the last term it added, a standard convergence signal
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	search/  — bracket location in strictly increasing tables
//	           (Linear, Bisection, Hunt, Cursor, Locate)
//	neville/ — polynomial interpolation through tabulated samples
//	           (Interpolator, Evaluate, EvaluateAll, Lagrange)
//
// Quick ASCII example:
//
//	xs:  x0    x1    x2    x3    x4
//	      │     │  ▲  │     │     │
//	      └─────┴──┼──┴─────┴─────┘
//	            bracket(x) = 1      (xs[1] ≤ x < xs[2])
//
// A bracket feeds the interpolator's local window; the interpolator walks
// Neville's correction tableau over that window and returns both the value
// and the magnitude of the final correction.
//
// Dive into search/doc.go and neville/doc.go for the full contracts, and
// the example tests in each package for runnable walkthroughs.
//
//	go get github.com/katalvlaran/interpol
package interpol
