package curve

import "math"

// Sample evaluates f on the equally spaced grid t0, t0+dt, … over the
// half-open span [t0, tEnd): the end point itself is excluded, so the
// sample count is ⌈(tEnd−t0)/dt⌉. An empty span yields an empty
// series.
//
// dt must be positive and finite and tEnd must not precede t0;
// violations return ErrInvalidSpan before f is evaluated.
func Sample(f func(float64) float64, t0, tEnd, dt float64) ([]Point, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, ErrInvalidSpan
	}
	if math.IsNaN(t0) || math.IsNaN(tEnd) || tEnd < t0 {
		return nil, ErrInvalidSpan
	}

	n := int(math.Ceil((tEnd - t0) / dt))
	out := make([]Point, n)
	for j := range out {
		// Multiply instead of accumulating so rounding does not drift
		// over long grids.
		tj := t0 + float64(j)*dt
		out[j] = Point{T: tj, Value: f(tj)}
	}

	return out, nil
}
