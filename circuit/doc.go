// Package circuit models a series RC circuit, the classic worked
// example for Laplace-domain methods: its transfer function is a
// one-pole image with a known closed-form original, which makes it the
// perfect end-to-end check for the inverters.
//
// 🚀 What can it do?
//
//	Build a circuit from component values (or the 10 kΩ / 100 µF
//	default pair with τ = 1 s), expose its transfer function and the
//	capacitor-discharge image for the Laplace side, and the analytic
//	discharge e^{-t/τ} for the time side.
//
// ⚙️ Usage:
//
//	rc := circuit.NewDefault()
//	out, err := iseger.Invert(rc.DischargeImage(5), 0.1, 20)
//	// out[j] ≈ rc.Discharge(5, 0.1*j)
//
// SteadyDischarge samples the analytic transient straight into
// curve.Point records for plotting or comparison.
package circuit
