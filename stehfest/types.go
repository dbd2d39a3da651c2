// Package stehfest defines the inverter type, its image contract and
// the domain-error sentinel.
package stehfest

import "errors"

// DefaultOrder is Walt Fair's empirical optimum for double precision:
// higher orders usually lose more to cancellation than they gain in
// theoretical convergence.
const DefaultOrder = 14

// Image is a Laplace transform restricted to the positive real axis,
// as Stehfest's method evaluates it: p ↦ F(p).
//
// The engine assumes the callable is deterministic, side-effect free
// and defined at every abscissa i·ln2/t it generates. Outputs are not
// inspected: NaN or ±Inf propagate arithmetically into the result, and
// a panic inside the callable is not recovered.
type Image func(p float64) float64

// Sentinel errors returned by the inverter.
var (
	// ErrInvalidTime indicates a time argument that is not a positive,
	// finite real number. The formula divides by t, so zero and
	// negatives are meaningless, and NaN/±Inf would only launder into
	// nonsense abscissas.
	ErrInvalidTime = errors.New("stehfest: time must be positive and finite")
)

// Inverter carries one order's precomputed coefficient row. It is
// immutable after New: concurrent Invert calls share it freely.
type Inverter struct {
	order  int
	coeffs []float64
}
