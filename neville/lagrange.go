package neville

// Lagrange evaluates the degree-(M-1) polynomial through the full table
// (xs, ys) at x by direct summation of the Lagrange basis:
//
//	L(x) = Σₖ ys[k] · Πᵢ≠ₖ (x - xs[i]) / (xs[k] - xs[i])
//
// It is the textbook closed form that Neville's recursion reorganizes;
// both produce the same polynomial, so Lagrange doubles as an independent
// cross-check for Interpolator results. Unlike Evaluate it offers no
// error estimate and no local windows, and its O(M²) cost is paid on
// every call with no locality to exploit.
//
// The same table contract as New applies; duplicated abscissas are
// reported as ErrCoincidentNodes before any arithmetic runs.
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if err := validateTable(xs, ys); err != nil {
		return 0, err
	}

	var sum float64
	for k := range xs {
		term := ys[k]
		for i := range xs {
			if i == k {
				continue
			}
			term *= (x - xs[i]) / (xs[k] - xs[i])
		}
		sum += term
	}

	return sum, nil
}
