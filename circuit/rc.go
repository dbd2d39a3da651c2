// SPDX-License-Identifier: MIT
package circuit

import (
	"errors"
	"math"

	"github.com/katalvlaran/laplace/curve"
)

// Component defaults: 10 kΩ and 100 µF, giving the convenient time
// constant τ = 1 s.
const (
	DefaultResistance  = 10000.0 // Ohm
	DefaultCapacitance = 1e-4    // Farad
)

// ErrNonPositiveComponent - component values must be positive finite numbers.
var ErrNonPositiveComponent = errors.New("circuit: resistance and capacitance must be positive and finite")

// RC is a series resistor-capacitor circuit. Immutable after New; the
// time constant is fixed at construction.
type RC struct {
	resistance  float64
	capacitance float64
	tau         float64
}

// New builds a circuit from explicit component values in SI units.
func New(resistance, capacitance float64) (*RC, error) {
	if !(resistance > 0) || math.IsInf(resistance, 1) ||
		!(capacitance > 0) || math.IsInf(capacitance, 1) {
		return nil, ErrNonPositiveComponent
	}

	return &RC{
		resistance:  resistance,
		capacitance: capacitance,
		tau:         resistance * capacitance,
	}, nil
}

// NewDefault builds the 10 kΩ / 100 µF reference circuit.
func NewDefault() *RC {
	rc, _ := New(DefaultResistance, DefaultCapacitance)
	return rc
}

// TimeConstant reports τ = R·C in seconds.
func (c *RC) TimeConstant() float64 { return c.tau }

// TransferFunction is the circuit's Laplace-domain response
//
//	H(p) = 1 / (1 + p·τ)
//
// evaluable anywhere in the complex plane; it satisfies the inverter
// image signatures as-is.
func (c *RC) TransferFunction(p complex128) complex128 {
	return 1.0 / (1.0 + p*complex(c.tau, 0))
}

// DischargeImage returns the Laplace image of the capacitor discharge
// transient from initial voltage v0,
//
//	V(p) = v0·τ / (1 + p·τ),
//
// whose original is Discharge(v0, ·).
func (c *RC) DischargeImage(v0 float64) func(p complex128) complex128 {
	return func(p complex128) complex128 {
		return complex(v0*c.tau, 0) / (1.0 + p*complex(c.tau, 0))
	}
}

// Discharge is the analytic discharge transient v0·e^{-t/τ}.
func (c *RC) Discharge(v0, t float64) float64 {
	return v0 * math.Exp(-t/c.tau)
}

// SteadyDischarge samples the discharge transient on [0, tEnd) with
// step dt. Span validation is curve.Sample's; a bad span surfaces as
// curve.ErrInvalidSpan.
func (c *RC) SteadyDischarge(v0, tEnd, dt float64) ([]curve.Point, error) {
	return curve.Sample(func(t float64) float64 { return c.Discharge(v0, t) }, 0, tEnd, dt)
}
