package specfunc

import "math"

// Hantush's depletion functions (Hantush, "Nonsteady Flow to Flowing
// Wells in Leaky Aquifers", J. Geophys. Res. 64, 1959). Both collapse
// to e^{-α} as z → 0; the explicit branch below float64 resolution
// keeps that limit exact.

// Cerfc is the diffusion cosine, Hantush's first depletion function:
//
//	cerfc(z, α) = (e^{-α}·erfc(z − α/2z) + e^{α}·erfc(z + α/2z)) / 2
//
// Large α overflows the e^{α} factor faster than erfc decays; the
// function is only meaningful while e^{α}·erfc(z + α/2z) stays finite.
func Cerfc(z, alpha float64) float64 {
	if math.Abs(z) < eps64 {
		return math.Exp(-alpha)
	}

	lower := z - 0.5*alpha/z
	upper := z + 0.5*alpha/z

	return 0.5 * (math.Exp(-alpha)*math.Erfc(lower) + math.Exp(alpha)*math.Erfc(upper))
}

// Serfc is the diffusion sine, Hantush's second depletion function:
//
//	serfc(z, α) = (e^{-α}·erfc(z − α/2z) − e^{α}·erfc(z + α/2z)) / 2
func Serfc(z, alpha float64) float64 {
	if math.Abs(z) < eps64 {
		return math.Exp(-alpha)
	}

	lower := z - 0.5*alpha/z
	upper := z + 0.5*alpha/z

	return 0.5 * (math.Exp(-alpha)*math.Erfc(lower) - math.Exp(alpha)*math.Erfc(upper))
}

// Aerfc is the areal error function, named for its role in drawdown
// formulas of linear and areal intakes in homogeneous aquifers. It is
// the original of the image e^{-z·sqrt(p/a+g²)} / (p·(p/a+g²)) up to
// the 1/g² factor:
//
//	aerfc(z, α) = cerfc(z, α) − e^{-α²/4z²}·erfc(z)
func Aerfc(z, alpha float64) float64 {
	return Cerfc(z, alpha) - math.Exp(-0.25*alpha*alpha/(z*z))*math.Erfc(z)
}

// eps64 is the float64 machine epsilon.
const eps64 = 0x1p-52
