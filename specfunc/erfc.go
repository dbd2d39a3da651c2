package specfunc

import "math"

// invSqrtPi is 1/√π, the Gaussian normalisation shared by the erfc
// integrals.
const invSqrtPi = 0.5641895835477563

// Ierfc is the first repeated integral of the complementary error
// function (Abramowitz & Stegun 7.2.1):
//
//	ierfc(x) = e^{-x²}/√π − x·erfc(x)
func Ierfc(x float64) float64 {
	return invSqrtPi*math.Exp(-x*x) - x*math.Erfc(x)
}

// I2erfc is the second repeated integral of erfc:
//
//	i²erfc(x) = (erfc(x) − 2x·ierfc(x)) / 4
func I2erfc(x float64) float64 {
	return 0.25 * (math.Erfc(x) - 2.0*x*Ierfc(x))
}

// Inerfc is the n-th repeated integral of erfc, evaluated through the
// two-term recurrence 2n·iⁿerfc(x) = iⁿ⁻²erfc(x) − 2x·iⁿ⁻¹erfc(x)
// (Abramowitz & Stegun 7.2.5).
//
// n = 0 is erfc itself and n = -1 the Gaussian e^{-x²}/√π; orders
// below -1 are outside the family and yield NaN.
func Inerfc(n int, x float64) float64 {
	switch {
	case n < -1:
		return math.NaN()
	case n == -1:
		return invSqrtPi * math.Exp(-x*x)
	case n == 0:
		return math.Erfc(x)
	case n == 1:
		return Ierfc(x)
	case n == 2:
		return I2erfc(x)
	}

	prev2, prev1 := Ierfc(x), I2erfc(x)
	for k := 3; k <= n; k++ {
		prev2, prev1 = prev1, (0.5*prev2-x*prev1)/float64(k)
	}

	return prev1
}
