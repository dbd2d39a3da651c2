// SPDX-License-Identifier: MIT
package stehfest

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/laplace/quadrature"
)

// New constructs an Inverter for the given even, positive order.
//
// The coefficient row is derived once, here, in exact rational
// arithmetic (see quadrature.StehfestCoefficients) and never mutated
// afterwards; changing the order means constructing a new Inverter.
// An invalid order surfaces as quadrature.ErrInvalidOrder.
func New(order int) (*Inverter, error) {
	coeffs, err := quadrature.StehfestCoefficients(order)
	if err != nil {
		return nil, err
	}

	return &Inverter{order: order, coeffs: coeffs}, nil
}

// Order reports the integration order the Inverter was built with.
func (inv *Inverter) Order() int { return inv.order }

// Coefficients returns a copy of the precomputed weight row V_1..V_NV.
// The copy keeps the internal row write-once.
func (inv *Inverter) Coefficients() []float64 {
	return append([]float64(nil), inv.coeffs...)
}

// Invert approximates the original f(t) of image at one time point.
//
// Description:
//
//	ln2t = ln2/t. The image is evaluated at the NV equally spaced real
//	abscissas ln2t, 2·ln2t, …, NV·ln2t, each weighted by its Stehfest
//	coefficient, and the weighted sum is scaled by ln2t:
//
//	  f̂(t) = ln2t · Σ V_i · F(i·ln2t)
//
// Contracts:
//   - t must be positive and finite; otherwise ErrInvalidTime is
//     returned before the image is evaluated even once.
//   - exactly NV image evaluations per call; no state is kept between
//     calls, so distinct calls are independent and concurrency-safe
//     as long as the image itself is.
//   - image outputs are used as-is: failures inside the callable are
//     the caller's to observe (panic or NaN/Inf in the result).
//
// Complexity: O(NV) image evaluations, O(1) extra space.
func (inv *Inverter) Invert(image Image, t float64) (float64, error) {
	// 1) Domain check first: no abscissa is generated for a bad t.
	if !validTime(t) {
		return 0, ErrInvalidTime
	}

	// 2) Weighted real-axis sweep with a cumulative abscissa.
	return inv.invertAt(image, t), nil
}

// InvertBatch approximates the original at every time in ts, fanning
// the independent evaluations out across min(GOMAXPROCS, len(ts))
// goroutines in contiguous chunks.
//
// Contracts:
//   - every time must be positive and finite; the first offender
//     aborts the whole batch with ErrInvalidTime before any image
//     evaluation (no partial work is observable).
//   - the image is called from multiple goroutines; it must be safe
//     for concurrent use. Images with internal state belong in a
//     caller-side loop over Invert instead.
//   - result[i] corresponds to ts[i]; a length-0 batch yields a
//     length-0 result.
//
// Complexity: O(len(ts)·NV) image evaluations, O(len(ts)) space.
func (inv *Inverter) InvertBatch(image Image, ts []float64) ([]float64, error) {
	// 1) Validate the whole batch up front.
	for _, t := range ts {
		if !validTime(t) {
			return nil, ErrInvalidTime
		}
	}

	out := make([]float64, len(ts))
	if len(ts) == 0 {
		return out, nil
	}

	// 2) Chunk the time points across workers; disjoint index ranges
	//    need no synchronization beyond the final Wait.
	workers := runtime.GOMAXPROCS(0)
	if workers > len(ts) {
		workers = len(ts)
	}
	chunk := (len(ts) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(ts))
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = inv.invertAt(image, ts[i])
			}
		}(lo, hi)
	}
	wg.Wait()

	return out, nil
}

// invertAt is the unvalidated core shared by Invert and InvertBatch.
func (inv *Inverter) invertAt(image Image, t float64) float64 {
	ln2t := math.Ln2 / t

	x := 0.0
	y := 0.0
	for _, c := range inv.coeffs {
		x += ln2t
		y += c * image(x)
	}

	return ln2t * y
}

// validTime reports whether t is a usable time argument: positive and
// finite. NaN fails the comparison on its own.
func validTime(t float64) bool {
	return t > 0 && !math.IsInf(t, 1)
}
