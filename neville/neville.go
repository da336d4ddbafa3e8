// Package neville implements Neville's polynomial interpolation with an
// error estimate.
//
// Algorithm outline (one Evaluate call, window order n over table size M):
//
//  1. Seat a window of n consecutive samples around the query x: bracket
//     search via the configured strategy, shift the window so it centers
//     on the bracket, clamp it into [0, M-n].
//  2. Copy the window's ordinates into two correction arrays c and d, and
//     seed the accumulator y with the ordinate of the in-window sample
//     nearest to x.
//  3. For each order ord = 1 … n-1, update the shrinking active window:
//     ho = xs[i]-x, hp = xs[i+ord]-x, w = c[i+1]-d[i], den = ho-hp,
//     f = w/den, then d[i] = hp·f and c[i] = ho·f. A zero den means two
//     numerically identical abscissas — the tableau is singular and the
//     call fails with ErrCoincidentNodes.
//  4. Accumulate y += (one correction per order), choosing the C or D
//     branch by the tableau zig-zag rule: take c[ns+1] while
//     2·(ns+1) < n-ord, else take d[ns] and step ns down. The rule keeps
//     the path balanced toward the side with more remaining support; it
//     is reproduced verbatim because the exact branch order decides the
//     floating-point result.
//  5. The last correction added is the error estimate: returned with the
//     value and retained behind LastEstimate.
//
// Complexity: O(n²) time, O(n) scratch space, plus the bracket search.

package neville

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/interpol/search"
)

// Interpolator evaluates the polynomial through a fixed sample table.
//
// The table is referenced, not copied, and never mutated; callers must not
// modify it while the interpolator is alive. One logical caller per
// instance: Evaluate updates the last error estimate and, under
// StrategyHunt, the internal cursor.
type Interpolator struct {
	xs, ys []float64 // sample table, read-only after New
	order  int       // window size, 1..len(xs)

	strategy search.Strategy
	cursor   search.Cursor // hunting state; used only under StrategyHunt

	lastEst float64 // most recent correction, see LastEstimate

	c, d []float64 // tableau scratch, reused across calls
}

// New builds an Interpolator over the table (xs, ys). It accepts
// functional options to customize behavior (WithOrder, WithStrategy).
//
// Preconditions and validation (in order):
//  1. len(xs) == len(ys)                       (ErrLengthMismatch).
//  2. len(xs) ≥ 2                              (ErrTooFewPoints).
//  3. xs strictly increasing; exactly equal neighbors are reported as
//     ErrCoincidentNodes, anything else unordered (including NaN/±Inf)
//     as ErrNotIncreasing.
//  4. resolved order within [1, len(xs)]       (ErrBadOrder).
//  5. known search strategy                    (search.ErrUnknownStrategy).
func New(xs, ys []float64, opts ...Option) (*Interpolator, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the table.
	if err := validateTable(xs, ys); err != nil {
		return nil, err
	}

	// 3) Resolve and validate the order. 0 means the full table.
	order := cfg.Order
	if order == DefaultOrder {
		order = len(xs)
	}
	if order < 1 || order > len(xs) {
		return nil, fmt.Errorf("%w: order=%d, table size %d", ErrBadOrder, order, len(xs))
	}

	// 4) Validate the strategy up front, not on first Evaluate.
	switch cfg.Strategy {
	case search.StrategyLinear, search.StrategyBisection, search.StrategyHunt:
	default:
		return nil, fmt.Errorf("%w: %d", search.ErrUnknownStrategy, cfg.Strategy)
	}

	return &Interpolator{
		xs:       xs,
		ys:       ys,
		order:    order,
		strategy: cfg.Strategy,
		c:        make([]float64, order),
		d:        make([]float64, order),
	}, nil
}

// Len returns the number of samples in the table.
func (ip *Interpolator) Len() int { return len(ip.xs) }

// Order returns the resolved local interpolation order.
func (ip *Interpolator) Order() int { return ip.order }

// LastEstimate returns the error estimate of the most recent Evaluate:
// the magnitude-signed value of the last correction added. It is a
// heuristic convergence signal, not a rigorous bound. Zero before the
// first evaluation and for order-1 interpolation.
func (ip *Interpolator) LastEstimate() float64 { return ip.lastEst }

// Evaluate computes the interpolating polynomial of the local window at x.
//
// Returns:
//
//   - value:    the interpolated (or, outside the table, extrapolated)
//     polynomial value.
//   - estimate: the last correction added — the conventional error proxy
//     for value.
//   - err:      ErrCoincidentNodes if a tableau denominator is exactly
//     zero; nil otherwise.
//
// Queries outside [xs[0], xs[M-1]] clamp the window to the table edge and
// extrapolate; accuracy there is explicitly not guaranteed.
func (ip *Interpolator) Evaluate(x float64) (value, estimate float64, err error) {
	n := ip.order

	// 1) Seat the window: bracket x, center, clamp into [0, M-n].
	j, err := ip.bracket(x)
	if err != nil {
		return 0, 0, err
	}
	lo := j - (n-1)/2
	if lo > len(ip.xs)-n {
		lo = len(ip.xs) - n
	}
	if lo < 0 {
		lo = 0
	}
	xw, yw := ip.xs[lo:lo+n], ip.ys[lo:lo+n]

	// 2) Seed the accumulator from the in-window sample nearest to x and
	//    copy the ordinates into the correction arrays.
	ns := 0
	dif := math.Abs(x - xw[0])
	for i := 1; i < n; i++ {
		if d := math.Abs(x - xw[i]); d < dif {
			ns, dif = i, d
		}
	}
	copy(ip.c, yw)
	copy(ip.d, yw)
	value = yw[ns]
	ns--

	// 3) Walk the tableau one order at a time.
	for ord := 1; ord < n; ord++ {
		for i := 0; i < n-ord; i++ {
			ho := xw[i] - x
			hp := xw[i+ord] - x
			w := ip.c[i+1] - ip.d[i]
			den := ho - hp
			if den == 0 {
				return 0, 0, fmt.Errorf("%w: xs[%d] == xs[%d]", ErrCoincidentNodes, lo+i, lo+i+ord)
			}
			f := w / den
			ip.d[i] = hp * f
			ip.c[i] = ho * f
		}

		// 4) Zig-zag branch rule; the exact comparison decides the
		//    floating-point result and is copied, not re-derived.
		if 2*(ns+1) < n-ord {
			estimate = ip.c[ns+1]
		} else {
			estimate = ip.d[ns]
			ns--
		}
		value += estimate
	}

	// 5) Retain the last correction as the queryable error estimate.
	ip.lastEst = estimate

	return value, estimate, nil
}

// EvaluateAll evaluates the interpolator at every target in order. An
// optional output slice can be supplied to avoid the allocation; it must
// have the same length as targets (ErrLengthMismatch otherwise).
//
// Evaluation stops at the first error. Under StrategyHunt the shared
// cursor makes a sorted target sweep the cheapest access pattern.
func (ip *Interpolator) EvaluateAll(targets []float64, out ...[]float64) ([]float64, error) {
	var dst []float64
	if len(out) > 0 {
		if len(out[0]) != len(targets) {
			return nil, fmt.Errorf("%w: out has %d slots for %d targets",
				ErrLengthMismatch, len(out[0]), len(targets))
		}
		dst = out[0]
	} else {
		dst = make([]float64, len(targets))
	}

	for i, x := range targets {
		y, _, err := ip.Evaluate(x)
		if err != nil {
			return nil, err
		}
		dst[i] = y
	}

	return dst, nil
}

// bracket seats the query in the table using the configured strategy,
// clamping below-table queries so extrapolation stays a non-error.
func (ip *Interpolator) bracket(x float64) (int, error) {
	switch ip.strategy {
	case search.StrategyLinear:
		i, err := search.Linear(ip.xs, x)
		if errors.Is(err, search.ErrBelowTable) {
			return 0, nil
		}

		return i, err

	case search.StrategyHunt:
		return ip.cursor.Search(ip.xs, x)

	default: // StrategyBisection, validated in New
		return search.Bisection(ip.xs, x)
	}
}

// validateTable enforces the shared table contract for New and Lagrange.
func validateTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return ErrTooFewPoints
	}
	for i := 0; i < len(xs)-1; i++ {
		switch {
		case xs[i] == xs[i+1]:
			return fmt.Errorf("%w: xs[%d] == xs[%d] == %g", ErrCoincidentNodes, i, i+1, xs[i])
		case !(xs[i] < xs[i+1]):
			return fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, i, xs[i], i+1, xs[i+1])
		}
	}
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: xs[%d]=%g is not finite", ErrNotIncreasing, i, v)
		}
	}

	return nil
}
