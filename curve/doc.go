// Package curve carries sampled time-series records between the
// inverters, the analytic references and whatever sits downstream
// (plotting, reporting, regression checks); it renders nothing itself.
//
// 🚀 What lives here?
//
//   - Point and Curve — plain data: a labelled, styleable series of
//     (t, value) pairs
//   - Sample — turn any f(t) into an equally spaced series with
//     half-open-interval semantics (the end point is excluded)
//   - Deviations, Compare, CompareSeries — absolute-deviation
//     statistics between a series and a reference, the workhorse of
//     "is this inversion within tolerance" checks
//
// ⚙️ Usage:
//
//	pts, err := curve.Sample(func(t float64) float64 { return math.Exp(-t) }, 0, 2, 0.1)
//	dev, err := curve.Compare(pts, someReference)
//	if dev.Max > 1e-6 { ... }
//
// Errors:
//
//   - ErrInvalidSpan    — dt not positive finite, or tEnd before t0
//   - ErrEmptySeries    — comparison over zero points
//   - ErrLengthMismatch — series of different lengths
package curve
