// Package search: sentinel errors, strategy enum and functional options.
//
// All user-triggered failure modes surface as the package-level sentinels
// below; callers match them with errors.Is. No exported function panics on
// user input.

package search

import "errors"

// Sentinel errors returned by the search package.
var (
	// ErrTooFewPoints indicates a table with fewer than two samples;
	// no bracket exists in such a table.
	ErrTooFewPoints = errors.New("search: table needs at least two points")

	// ErrNotIncreasing indicates the table violates strict monotonicity
	// (xs[i] < xs[i+1] for all i). Reported by Locate's validation.
	ErrNotIncreasing = errors.New("search: table is not strictly increasing")

	// ErrBelowTable is returned by Linear when x < xs[0]: a linear scan
	// from the start has no bracket to report. Bisection and Hunt clamp
	// instead, as does the Locate facade for every strategy.
	ErrBelowTable = errors.New("search: query below table start")

	// ErrBadHint indicates a hunting hint outside [0, len(xs)-2].
	ErrBadHint = errors.New("search: hint outside valid bracket range")

	// ErrUnknownStrategy indicates a Strategy value outside the declared
	// constants was passed to Locate.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects how Locate finds the bracket.
//
// StrategyBisection – O(log M) halving; the default.
// StrategyLinear    – O(M) scan from the start; reference implementation.
// StrategyHunt      – expand exponentially from a hint, then bisect the
// window; best for correlated query streams.
type Strategy int

const (
	// StrategyBisection repeatedly halves [lo, hi] until hi-lo == 1.
	StrategyBisection Strategy = iota

	// StrategyLinear scans forward until the bracket is passed.
	StrategyLinear

	// StrategyHunt expands a window from a previous bracket before
	// bisecting inside it.
	StrategyHunt
)

// String returns the constant name, for error context and test output.
func (s Strategy) String() string {
	switch s {
	case StrategyBisection:
		return "bisection"
	case StrategyLinear:
		return "linear"
	case StrategyHunt:
		return "hunt"
	default:
		return "unknown"
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrategy is used by Locate when no WithStrategy option is given.
	DefaultStrategy = StrategyBisection

	// DefaultHint seeds StrategyHunt when no WithHint option is given.
	DefaultHint = 0
)

// Options configures the Locate facade.
//
// Strategy – which search routine runs (see Strategy constants).
// Hint     – starting bracket for StrategyHunt; clamped by Locate into
// [0, len(xs)-2], so a stale hint from a previous (longer) table is safe.
type Options struct {
	Strategy Strategy // search routine selector
	Hint     int      // hunting seed; ignored by other strategies
}

// Option represents a functional option for configuring Locate.
type Option func(*Options)

// WithStrategy selects the search routine used by Locate.
// Unknown values are rejected by Locate with ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithHint sets the starting bracket for StrategyHunt.
// Locate clamps the value into the table's valid bracket range, so callers
// may pass the previous result unconditionally.
func WithHint(i int) Option {
	return func(o *Options) {
		o.Hint = i
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use as a starting point for further overrides.
//
// Defaults:
//   - Strategy: StrategyBisection
//   - Hint:     0
func DefaultOptions() Options {
	return Options{
		Strategy: DefaultStrategy,
		Hint:     DefaultHint,
	}
}
