package quadrature

import "math/big"

// StehfestCoefficients derives the Gaver–Stehfest weighting
// coefficients V_1..V_NV for a given integration order.
//
// Description:
//
//	Stehfest's inversion approximates f(t) ≈ ln2/t · Σ V_i · F(i·ln2/t).
//	The V_i follow from nested combinatorial sums over factorial
//	ratios (Stehfest 1970, algorithm 368). With N2 = order/2 and
//	NV = 2·N2, entry i (0-based) accumulates, for
//	k in [⌊(i+2)/2⌋, min(i+1, N2)]:
//
//	  term(k) = k^N2/k! · (2k)!/(2k−i−1)! / (N2−k)! / (k−1)! / (i+1−k)!
//
//	and the accumulated sum is multiplied by a sign that starts at
//	−1 for odd N2 (+1 otherwise) and flips at the top of every i,
//	before use.
//
// Numerics:
//
//	Factorials explode quickly: order 20 already touches 20! ≈ 2.4e18.
//	The ratios are therefore formed in exact big.Rat arithmetic and
//	rounded to float64 once, at the very end, per coefficient. The
//	derivation itself never overflows; the well-known accuracy ceiling
//	of high Stehfest orders comes from the alternating-sign
//	cancellation at inversion time and is left untouched here.
//
// Contracts:
//   - order must be even and > 0; anything else yields ErrInvalidOrder.
//   - the result has exactly NV = order entries.
//   - deterministic: equal orders produce bit-identical slices.
//
// Complexity: O(order²) big-rational operations.
func StehfestCoefficients(order int) ([]float64, error) {
	// 1) Validate the order before touching any arithmetic.
	if order < 2 || order%2 != 0 {
		return nil, ErrInvalidOrder
	}

	n2 := order / 2
	nv := 2 * n2

	// 2) Precompute 0!..(2·N2)! once; every term below is a ratio of these.
	factorials := make([]*big.Int, 2*n2+1)
	factorials[0] = big.NewInt(1)
	for i := 1; i <= 2*n2; i++ {
		factorials[i] = new(big.Int).Mul(factorials[i-1], big.NewInt(int64(i)))
	}

	coefficients := make([]float64, nv)

	sign := 1
	if n2%2 != 0 {
		sign = -1
	}

	// 3) Accumulate each coefficient as an exact rational, then round once.
	for i := 0; i < nv; i++ {
		kmin := (i + 2) / 2
		kmax := i + 1
		if kmax > n2 {
			kmax = n2
		}

		sign = -sign

		sum := new(big.Rat)
		for k := kmin; k <= kmax; k++ {
			// numerator   = k^N2 · (2k)!
			// denominator = k! · (2k−i−1)! · (N2−k)! · (k−1)! · (i+1−k)!
			num := new(big.Int).Exp(big.NewInt(int64(k)), big.NewInt(int64(n2)), nil)
			num.Mul(num, factorials[2*k])

			den := new(big.Int).Set(factorials[k])
			den.Mul(den, factorials[2*k-i-1])
			den.Mul(den, factorials[n2-k])
			den.Mul(den, factorials[k-1])
			den.Mul(den, factorials[i+1-k])

			sum.Add(sum, new(big.Rat).SetFrac(num, den))
		}

		if sign < 0 {
			sum.Neg(sum)
		}

		// Float64 rounds the exact rational to the nearest float64,
		// so repeated derivations cannot drift.
		coefficients[i], _ = sum.Float64()
	}

	return coefficients, nil
}
