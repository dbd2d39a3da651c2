// Package specfunc collects the special functions that show up in
// closed-form Laplace images of diffusion and well-flow problems:
// repeated integrals of the complementary error function, Hantush's
// depletion functions, the exponential integral E1, the modified
// Bessel functions I0 and K0, and Hantush's leaky-aquifer well
// function.
//
// 🚀 Why a dedicated package?
//
//	The inverters in stehfest and iseger only need a callable image;
//	these are the building blocks such images are assembled from in
//	groundwater and heat-conduction work, plus the matching
//	time-domain originals used to cross-check an inversion.
//
// ✨ Accuracy:
//   - E1, I0 and K0 use the Abramowitz & Stegun polynomial fits; the
//     absolute error stays below 2.5e-7 (E1) and 4e-8 (I0, K0 for
//     moderate arguments), which is plenty next to the noise floor of
//     a Stehfest inversion
//   - the erfc family delegates to math.Erfc and is accurate to a few
//     ulp
//   - Hantush truncates its series at 512 terms; extreme parameter
//     ratios degrade gracefully instead of looping forever
//
// ⚙️ Conventions:
//
//	Functions are plain float64→float64 with no error returns, like
//	the math package they extend: domain violations yield NaN, poles
//	yield ±Inf. E1(0) and K0(0) are +Inf; negative arguments to either
//	are NaN; Inerfc below order -1 is NaN.
package specfunc
