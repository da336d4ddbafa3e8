// Package search implements bracket location in ordered sample tables.
//
// A bracket for query x in a strictly increasing table xs is the index i
// satisfying xs[i] ≤ x < xs[i+1]. Three routines find it:
//
//   - Linear    — forward scan; O(M), the correctness reference.
//   - Bisection — interval halving; O(log M).
//   - Hunt      — exponential expansion from a previous bracket followed by
//     a bisection restricted to the expanded window; O(log d) for
//     a query d brackets from the hint.
//
// All three agree on every in-table query. Results clamp to the valid
// bracket range [0, M-2]: a query below xs[0] maps to 0 (Linear excepted,
// see ErrBelowTable), a query at or above xs[M-1] maps to M-2. Callers
// relying on brackets beyond the table are extrapolating; that is
// documented behavior, not a fault.
//
// The low-level trio checks only O(1) preconditions (table length, hint
// range) and trusts the monotonicity contract; the Locate facade performs
// the full O(M) validation once per call.

package search

import (
	"errors"
	"fmt"
	"math"
)

// Linear scans from the start of xs and returns the largest i with
// xs[i] ≤ x, clamped to len(xs)-2 above the table. A query below xs[0] has
// no bracket to report and yields ErrBelowTable.
//
// Precondition (unchecked beyond length): xs strictly increasing.
//
// Complexity: O(M) time, O(1) space.
func Linear(xs []float64, x float64) (int, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}
	if x < xs[0] {
		return 0, fmt.Errorf("%w: x=%g < xs[0]=%g", ErrBelowTable, x, xs[0])
	}

	// Walk forward while the next sample still lies at or below x.
	// The i < len(xs)-2 cap clamps x ≥ xs[M-1] to the last bracket.
	i := 0
	for i < len(xs)-2 && xs[i+1] <= x {
		i++
	}

	return i, nil
}

// Bisection returns the bracket of x in xs by interval halving.
//
// Invariant maintained by the loop: xs[lo] ≤ x < xs[hi] whenever x is
// inside the table. Outside the table the result clamps: 0 below xs[0],
// len(xs)-2 at or above xs[len(xs)-1].
//
// Precondition (unchecked beyond length): xs strictly increasing.
//
// Complexity: O(log M) time, O(1) space.
func Bisection(xs []float64, x float64) (int, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}

	lo, hi := 0, len(xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// Hunt returns the bracket of x in xs, starting from a previous bracket
// hint. It expands a window away from the hint with doubling steps
// (1, 2, 4, …) in the direction indicated by comparing x to xs[hint],
// stops once the window brackets x or reaches a table edge, then refines
// with a bisection restricted to that window.
//
// The hint must itself be a valid bracket index, 0 ≤ hint ≤ len(xs)-2;
// anything else is ErrBadHint. The returned index is always a valid hint
// for the next call.
//
// Precondition (unchecked beyond length and hint): xs strictly increasing.
//
// Complexity: O(log d) time for a query d brackets from the hint,
// O(log M) worst case, O(1) space.
func Hunt(xs []float64, x float64, hint int) (int, error) {
	n := len(xs)
	if n < 2 {
		return 0, ErrTooFewPoints
	}
	if hint < 0 || hint > n-2 {
		return 0, fmt.Errorf("%w: hint=%d, want 0..%d", ErrBadHint, hint, n-2)
	}

	lo, hi := hint, 0
	jump := 1
	if x >= xs[lo] {
		// Hunt upward: grow hi until it passes x or hits the top.
		for {
			hi = lo + jump
			if hi >= n-1 {
				hi = n - 1

				break
			}
			if x < xs[hi] {
				break
			}
			lo = hi
			jump <<= 1
		}
	} else {
		// Hunt downward: grow lo backwards until it drops below x or
		// hits the bottom.
		hi = lo
		for {
			lo = hi - jump
			if lo <= 0 {
				lo = 0

				break
			}
			if x >= xs[lo] {
				break
			}
			hi = lo
			jump <<= 1
		}
	}

	// Bisection refinement inside [lo, hi]; same comparison as Bisection,
	// so both strategies return identical brackets.
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// Cursor retains the bracket returned by its previous search so a stream
// of correlated queries can hunt instead of bisecting from scratch.
//
// The zero Cursor is ready to use; its first search seeds the state with a
// plain bisection. A Cursor is owned by one logical caller: concurrent use
// requires external synchronization (last write wins on the retained
// bracket, nothing more is guaranteed).
type Cursor struct {
	last   int  // lower index of the previous bracket
	seeded bool // false until the first successful search
}

// Search returns the bracket of x in xs, hunting from the bracket found by
// the previous call. The result is stored as the next hunt's starting
// point.
func (c *Cursor) Search(xs []float64, x float64) (int, error) {
	if !c.seeded {
		i, err := Bisection(xs, x)
		if err != nil {
			return 0, err
		}
		c.last, c.seeded = i, true

		return i, nil
	}

	// A shorter table than last time would invalidate the retained
	// bracket; clamp rather than surface ErrBadHint for a stale hint.
	if c.last > len(xs)-2 {
		c.last = len(xs) - 2
	}

	i, err := Hunt(xs, x, c.last)
	if err != nil {
		return 0, err
	}
	c.last = i

	return i, nil
}

// Last reports the retained bracket and whether the cursor has been seeded
// by a successful search yet.
func (c *Cursor) Last() (int, bool) {
	return c.last, c.seeded
}

// Reset clears the retained bracket; the next Search seeds with bisection.
func (c *Cursor) Reset() {
	c.last, c.seeded = 0, false
}

// Locate finds the bracket of x in xs using the configured strategy.
// It accepts functional options to customize behavior (WithStrategy,
// WithHint).
//
// Unlike the low-level routines, Locate validates the full table contract
// and normalizes edge behavior across strategies:
//
//  1. len(xs) ≥ 2 (ErrTooFewPoints).
//  2. xs strictly increasing (ErrNotIncreasing).
//  3. Queries below xs[0] clamp to bracket 0 for every strategy, so
//     extrapolation is a documented non-error on this surface.
//
// Complexity: O(M) validation plus the chosen strategy's cost.
func Locate(xs []float64, x float64, opts ...Option) (int, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the table contract once, up front.
	if err := Validate(xs); err != nil {
		return 0, err
	}

	// 3) Dispatch to the chosen strategy.
	switch cfg.Strategy {
	case StrategyLinear:
		i, err := Linear(xs, x)
		if errors.Is(err, ErrBelowTable) {
			// Below-table queries clamp on this surface.
			return 0, nil
		}

		return i, err

	case StrategyBisection:
		return Bisection(xs, x)

	case StrategyHunt:
		hint := cfg.Hint
		if hint < 0 {
			hint = 0
		}
		if hint > len(xs)-2 {
			hint = len(xs) - 2
		}

		return Hunt(xs, x, hint)

	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}
}

// Validate checks the table contract shared by every routine in this
// package: at least two samples, strictly increasing, all finite.
// NaN anywhere in the table breaks ordering comparisons, so it is rejected
// as ErrNotIncreasing together with ±Inf.
//
// Complexity: O(M) time, O(1) space.
func Validate(xs []float64) error {
	if len(xs) < 2 {
		return ErrTooFewPoints
	}
	for i := 0; i < len(xs)-1; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return fmt.Errorf("%w: xs[%d]=%g is not finite", ErrNotIncreasing, i, xs[i])
		}
		if !(xs[i] < xs[i+1]) {
			return fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, i, xs[i], i+1, xs[i+1])
		}
	}
	last := len(xs) - 1
	if math.IsNaN(xs[last]) || math.IsInf(xs[last], 0) {
		return fmt.Errorf("%w: xs[%d]=%g is not finite", ErrNotIncreasing, last, xs[last])
	}

	return nil
}
