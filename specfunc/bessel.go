// SPDX-License-Identifier: MIT
package specfunc

import "math"

// I0 is the modified Bessel function of the first kind, order zero.
//
// The polynomial fits are Abramowitz & Stegun 9.8.1 (|x| < 3.75) and
// 9.8.2 (beyond); the function is even in x. Relative error stays
// below 2e-7.
func I0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		t := x / 3.75
		t *= t
		return 1.0 + t*(3.5156229+t*(3.0899424+t*(1.2067492+t*(0.2659732+t*(0.0360768+t*0.0045813)))))
	}

	t := 3.75 / ax
	poly := 0.39894228 + t*(0.01328592+t*(0.00225319+t*(-0.00157565+t*(0.00916281+
		t*(-0.02057706+t*(0.02635537+t*(-0.01647633+t*0.00392377)))))))

	return math.Exp(ax) / math.Sqrt(ax) * poly
}

// K0 is the modified Bessel function of the second kind, order zero.
//
// x must be positive: K0(0) is +Inf and negative or NaN arguments
// yield NaN. The fits are Abramowitz & Stegun 9.8.5 (x ≤ 2, which
// leans on I0) and 9.8.6; absolute error stays below 4e-8.
func K0(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	}

	if x <= 2.0 {
		t := x * x / 4.0
		poly := -0.57721566 + t*(0.42278420+t*(0.23069756+t*(0.03488590+t*(0.00262698+
			t*(0.00010750+t*0.00000740)))))

		return -math.Log(x/2.0)*I0(x) + poly
	}

	t := 2.0 / x
	poly := 1.25331414 + t*(-0.07832358+t*(0.02189568+t*(-0.01062446+t*(0.00587872+
		t*(-0.00251540+t*0.00053208)))))

	return math.Exp(-x) / math.Sqrt(x) * poly
}
