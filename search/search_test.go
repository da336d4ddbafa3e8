package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/interpol/search"
)

// nonUniformTable returns a strictly increasing table with irregular
// spacing, so uniform-stride shortcuts cannot accidentally pass.
func nonUniformTable() []float64 {
	return []float64{-3.5, -1.25, -0.4, 0, 0.17, 1, 2.5, 2.75, 6, 11, 30}
}

// TestBisection_CanonicalLookup pins the canonical lookup: ten samples
// 0,10,…,90 and query 45 must land in bracket 4 (40 ≤ 45 < 50).
func TestBisection_CanonicalLookup(t *testing.T) {
	xs := floats.Span(make([]float64, 10), 0, 90)

	i, err := search.Bisection(xs, 45)
	require.NoError(t, err)
	assert.Equal(t, 4, i, "xs[4]=40 ≤ 45 < 50=xs[5]")
}

// TestBisection_Boundaries resolves the table-edge behavior explicitly:
// lower boundary inclusive, upper boundary clamped to the last bracket,
// out-of-range queries clamped to the nearest edge bracket.
func TestBisection_Boundaries(t *testing.T) {
	xs := nonUniformTable()
	m := len(xs)

	cases := []struct {
		name string
		x    float64
		want int
	}{
		{"at lower boundary", xs[0], 0},
		{"at upper boundary", xs[m-1], m - 2},
		{"below table", xs[0] - 100, 0},
		{"above table", xs[m-1] + 100, m - 2},
		{"just inside top bracket", xs[m-1] - 1e-9, m - 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, err := search.Bisection(xs, tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.want, i)
		})
	}
}

// TestLinear_Basic verifies the reference scan against the bracket
// invariant across every bracket of a non-uniform table.
func TestLinear_Basic(t *testing.T) {
	xs := nonUniformTable()

	for k := 0; k < len(xs)-1; k++ {
		x := (xs[k] + xs[k+1]) / 2 // strictly interior to bracket k
		i, err := search.Linear(xs, x)
		require.NoError(t, err)
		assert.Equal(t, k, i, "midpoint of bracket %d", k)
	}

	// At and above the top the scan clamps to the last bracket.
	i, err := search.Linear(xs, xs[len(xs)-1])
	require.NoError(t, err)
	assert.Equal(t, len(xs)-2, i)
}

// TestLinear_BelowTable verifies that the linear scan reports the one
// configuration where it has no bracket: a query before the first sample.
func TestLinear_BelowTable(t *testing.T) {
	xs := nonUniformTable()

	_, err := search.Linear(xs, xs[0]-1)
	assert.ErrorIs(t, err, search.ErrBelowTable)
}

// TestStrategies_AgreeOnInterior checks the required identity: linear,
// bisection and hunt (from every valid hint) return the same bracket for
// every in-table query.
func TestStrategies_AgreeOnInterior(t *testing.T) {
	xs := nonUniformTable()
	m := len(xs)

	// Dense probe grid across [xs[0], xs[M-1]), plus every sample point.
	probes := floats.Span(make([]float64, 97), xs[0], xs[m-1]-1e-9)
	probes = append(probes, xs[:m-1]...)

	for _, x := range probes {
		ref, err := search.Linear(xs, x)
		require.NoError(t, err)

		bi, err := search.Bisection(xs, x)
		require.NoError(t, err)
		assert.Equal(t, ref, bi, "bisection vs linear at x=%g", x)

		for hint := 0; hint <= m-2; hint++ {
			hu, err := search.Hunt(xs, x, hint)
			require.NoError(t, err)
			assert.Equal(t, ref, hu, "hunt(hint=%d) vs linear at x=%g", hint, x)
		}
	}
}

// TestHunt_BadHint ensures out-of-range hints fail fast with ErrBadHint.
func TestHunt_BadHint(t *testing.T) {
	xs := nonUniformTable()

	_, err := search.Hunt(xs, 0, -1)
	assert.ErrorIs(t, err, search.ErrBadHint, "negative hint")

	_, err = search.Hunt(xs, 0, len(xs)-1)
	assert.ErrorIs(t, err, search.ErrBadHint, "hint beyond last bracket")
}

// TestHunt_ResultIsValidHint walks a zig-zag query sequence and checks
// every returned bracket is usable as the next hint, including queries
// outside the table.
func TestHunt_ResultIsValidHint(t *testing.T) {
	xs := nonUniformTable()
	m := len(xs)

	queries := []float64{0.1, 0.2, 2.6, 11.5, 29, xs[m-1] + 5, xs[0] - 5, -1, 6}
	hint := 0
	for _, x := range queries {
		i, err := search.Hunt(xs, x, hint)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, i, 0)
		assert.LessOrEqual(t, i, m-2)
		hint = i
	}
}

// TestCursor_ReusesLocality verifies the cursor seeds with bisection,
// stores each result, and keeps agreeing with the stateless routines.
func TestCursor_ReusesLocality(t *testing.T) {
	xs := nonUniformTable()

	var cur search.Cursor
	_, seeded := cur.Last()
	assert.False(t, seeded, "zero cursor starts unseeded")

	for _, x := range []float64{0.05, 0.18, 0.9, 1.5, 2.74, 2.9, -2} {
		got, err := cur.Search(xs, x)
		require.NoError(t, err)

		want, err := search.Bisection(xs, x)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cursor vs bisection at x=%g", x)

		last, seeded := cur.Last()
		assert.True(t, seeded)
		assert.Equal(t, got, last, "cursor retains its own result")
	}
}

// TestCursor_Reset confirms Reset returns the cursor to its unseeded state.
func TestCursor_Reset(t *testing.T) {
	xs := nonUniformTable()

	var cur search.Cursor
	_, err := cur.Search(xs, 1)
	require.NoError(t, err)

	cur.Reset()
	_, seeded := cur.Last()
	assert.False(t, seeded)
}

// TestLocate_Validation exercises the facade's table validation.
func TestLocate_Validation(t *testing.T) {
	_, err := search.Locate([]float64{1}, 1)
	assert.ErrorIs(t, err, search.ErrTooFewPoints, "single sample")

	_, err = search.Locate(nil, 1)
	assert.ErrorIs(t, err, search.ErrTooFewPoints, "nil table")

	_, err = search.Locate([]float64{0, 2, 1}, 1)
	assert.ErrorIs(t, err, search.ErrNotIncreasing, "decreasing pair")

	_, err = search.Locate([]float64{0, 1, 1, 2}, 1)
	assert.ErrorIs(t, err, search.ErrNotIncreasing, "duplicate abscissa")
}

// TestLocate_ClampsBelowTable verifies the facade clamps below-table
// queries to bracket 0 for every strategy, linear included.
func TestLocate_ClampsBelowTable(t *testing.T) {
	xs := nonUniformTable()
	x := xs[0] - 42.0

	for _, s := range []search.Strategy{
		search.StrategyLinear, search.StrategyBisection, search.StrategyHunt,
	} {
		i, err := search.Locate(xs, x, search.WithStrategy(s))
		require.NoError(t, err, "strategy %v", s)
		assert.Equal(t, 0, i, "strategy %v clamps to the first bracket", s)
	}
}

// TestLocate_HuntHintClamped confirms a stale oversized hint is clamped
// rather than rejected on the facade surface.
func TestLocate_HuntHintClamped(t *testing.T) {
	xs := nonUniformTable()

	i, err := search.Locate(xs, 0.5,
		search.WithStrategy(search.StrategyHunt),
		search.WithHint(1000),
	)
	require.NoError(t, err)

	want, err := search.Bisection(xs, 0.5)
	require.NoError(t, err)
	assert.Equal(t, want, i)
}

// TestLocate_UnknownStrategy rejects strategy values outside the enum.
func TestLocate_UnknownStrategy(t *testing.T) {
	_, err := search.Locate(nonUniformTable(), 0, search.WithStrategy(search.Strategy(99)))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

// TestTooFewPoints covers the O(1) length check on every low-level routine.
func TestTooFewPoints(t *testing.T) {
	short := []float64{1}

	_, err := search.Linear(short, 1)
	assert.ErrorIs(t, err, search.ErrTooFewPoints)

	_, err = search.Bisection(short, 1)
	assert.ErrorIs(t, err, search.ErrTooFewPoints)

	_, err = search.Hunt(short, 1, 0)
	assert.ErrorIs(t, err, search.ErrTooFewPoints)
}
