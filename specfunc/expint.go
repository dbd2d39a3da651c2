package specfunc

import "math"

// E1 is the exponential integral of order one,
//
//	E1(x) = ∫_x^∞ e^{-u}/u du,  x > 0.
//
// The value is +Inf at x = 0 and NaN for negative or NaN arguments.
//
// Evaluation follows the Abramowitz & Stegun fits: the series-based
// polynomial 5.1.53 on (0, 1] (absolute error below 2.5e-7) and the
// rational approximation 5.1.56 beyond (relative error of the bracket
// below 1e-8).
func E1(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case x <= 1:
		p := -0.57721566 + x*(0.99999193+x*(-0.24991055+x*(0.05519968+x*(-0.00976004+x*0.00107857))))
		return p - math.Log(x)
	}

	num := 0.2677737343 + x*(8.6347608925+x*(18.0590169730+x*(8.5733287401+x)))
	den := 3.9584969228 + x*(21.0996530827+x*(25.6329561486+x*(9.5733223454+x)))

	return num / den * math.Exp(-x) / x
}
