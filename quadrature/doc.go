// Package quadrature supplies the fixed numeric data both Laplace
// inverters are built on: Den Iseger's contour-quadrature node tables
// and Gaver–Stehfest's order-dependent weighting coefficients.
//
// 🚀 What lives here?
//
//	Two kinds of coefficient sets, both immutable once produced:
//	  • Iseger node tables — three hard-coded (weight, abscissa) tables
//	    of degree 16, 32 and 48, published for Den Iseger's method.
//	  • Stehfest coefficients — derived on demand from an even
//	    integration order via exact rational arithmetic.
//
// ✨ Key properties:
//   - tables are package constants: no mutation path exists, every
//     lookup returns a fresh copy
//   - Stehfest derivation is deterministic: the same order always
//     yields bit-identical coefficients
//   - factorial ratios are evaluated in math/big rationals, so high
//     orders do not overflow float64 intermediates (the float64
//     rounding happens exactly once, per coefficient)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/laplace/quadrature"
//
//	nodes, err := quadrature.Nodes(32)          // Iseger table lookup
//	coeffs, err := quadrature.StehfestCoefficients(14)
//
// Errors:
//
//   - ErrUnsupportedDegree — degree other than 16, 32, 48
//   - ErrInvalidOrder      — order not a positive even integer
//
// Accuracy note: Stehfest coefficients of high order are exact here,
// but the inversion they feed loses significance from the alternating
// signs; orders beyond ~20 rarely improve results. That cancellation
// is a property of the method, not of this derivation.
package quadrature
