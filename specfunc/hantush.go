package specfunc

import "math"

const (
	// eps32 is the float32 machine epsilon; arguments below it are
	// treated as zero where a cheaper closed form exists.
	eps32 = 1.1920929e-07

	// maxSeriesTerms caps the Hantush series. For extreme parameter
	// ratios the stop criterion can underflow past what 512 terms
	// resolve; the cap trades a last few digits for termination.
	maxSeriesTerms = 512
)

// Hantush is the leaky-aquifer well function
//
//	W(z, u) = 1/(4π) ∫_1^∞ e^{-z·y − u/(4z·y)} / y dy
//
// in the split form of Hantush (1956): depending on which of z and
// u/4z dominates, the value is built from the series directly or as
// the complement of K0(√u)/2π, keeping the alternating series
// convergent in both regimes. z at or below float32 resolution
// collapses to the non-leaky Theis kernel K0(√u)/2π.
//
// Meaningful for z ≥ 0 and u > 0.
func Hantush(z, u float64) float64 {
	if z < eps32 {
		return K0(math.Sqrt(u)) / (2.0 * math.Pi)
	}

	if math.Abs(z) < math.Abs(u/(4.0*z)) {
		return K0(math.Sqrt(u))/(2.0*math.Pi) - hantushSeries(z, u/(4.0*z))
	}

	return hantushSeries(u/(4.0*z), z)
}

// hantushSeries sums 1/(4π) Σ_{n≥0} (-1)ⁿ/n! · pⁿ · E_{n+1}(q) using
// the upward recurrence E_{n+1}(q) = (e^{-q} − q·E_n(q))/n. Returns
// +Inf when q is not positive, where E1 has no finite value.
func hantushSeries(p, q float64) float64 {
	if q <= 0 {
		return math.Inf(1)
	}

	result := 0.0
	factor := 1.0
	e := E1(q)
	eps := math.Min(eps32, math.Exp(-p)*e)

	term := math.Inf(1)
	for n := 1; math.Abs(term) > eps && n <= maxSeriesTerms; n++ {
		term = factor * e
		result += term

		factor = -factor * p / float64(n)
		e = (math.Exp(-q) - q*e) / float64(n)
	}

	return result / (4.0 * math.Pi)
}
