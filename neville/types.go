// Package neville: sentinel errors and functional options.
//
// Failure taxonomy (mirrors the package contract):
//   - construction-time precondition violations — mismatched lengths,
//     short or unordered tables, bad order: fail fast in New;
//   - ErrCoincidentNodes — the tableau's single runtime failure mode,
//     also reported at construction when two abscissas are exactly equal.

package neville

import (
	"errors"

	"github.com/katalvlaran/interpol/search"
)

// Sentinel errors returned by the neville package.
var (
	// ErrLengthMismatch indicates len(xs) != len(ys), or an output buffer
	// of the wrong length passed to EvaluateAll.
	ErrLengthMismatch = errors.New("neville: xs and ys lengths differ")

	// ErrTooFewPoints indicates a table with fewer than two samples.
	ErrTooFewPoints = errors.New("neville: table needs at least two points")

	// ErrNotIncreasing indicates the abscissas are not strictly
	// increasing (and not merely duplicated — see ErrCoincidentNodes).
	ErrNotIncreasing = errors.New("neville: abscissas are not strictly increasing")

	// ErrCoincidentNodes indicates two numerically identical abscissas:
	// the interpolation tableau is singular. Detected at construction for
	// exactly equal table entries and during Evaluate if a correction
	// denominator underflows to zero.
	ErrCoincidentNodes = errors.New("neville: coincident abscissas")

	// ErrBadOrder indicates an interpolation order outside [1, len(xs)].
	ErrBadOrder = errors.New("neville: order outside [1, len(xs)]")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultOrder = 0 is the "use the whole table" marker: New resolves
	// it to len(xs), i.e. one global polynomial of degree len(xs)-1.
	DefaultOrder = 0

	// DefaultStrategy seats the local window with a bisection search.
	DefaultStrategy = search.StrategyBisection
)

// Options configures an Interpolator.
//
// Order    – number of samples per local window, 1 ≤ Order ≤ len(xs);
// 0 means the full table (global polynomial interpolation).
// Strategy – bracket-search strategy used to seat the window around the
// query. StrategyHunt gives the interpolator an internal cursor, making
// sweeps over correlated targets cheaper.
type Options struct {
	Order    int             // local window size; 0 = full table
	Strategy search.Strategy // window-seating search strategy
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithOrder sets the local interpolation order (window size).
// Must pass a positive value; New rejects orders above the table size
// with ErrBadOrder. Panics on order < 1 (programmer error — there is no
// polynomial through zero points).
func WithOrder(n int) Option {
	if n < 1 {
		panic(ErrBadOrder.Error())
	}

	return func(o *Options) {
		o.Order = n
	}
}

// WithStrategy sets the bracket-search strategy used to seat the local
// window. Unknown values are rejected by New with
// search.ErrUnknownStrategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use as a starting point for further overrides.
//
// Defaults:
//   - Order:    0 (full table)
//   - Strategy: search.StrategyBisection
func DefaultOptions() Options {
	return Options{
		Order:    DefaultOrder,
		Strategy: DefaultStrategy,
	}
}
