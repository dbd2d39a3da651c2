// Package laplace recovers time-domain originals from Laplace-domain
// images: numerical transform inversion in pure Go.
//
// 🚀 What is laplace?
//
//	A numerical inversion toolkit that brings together:
//		• Gaver–Stehfest: real-axis inversion point by point, with
//		  coefficient rows derived in exact rational arithmetic
//		• Den Iseger: complex-contour quadrature plus one inverse FFT,
//		  producing whole uniform grids at near machine precision
//		• Special functions: erfc integrals, E1, I0/K0 and Hantush's
//		  well and depletion functions, the building blocks of
//		  diffusion images
//		• Series tooling: sampling, labelled curves, deviation stats
//		• A worked RC-circuit model closing the image→original loop
//
// ✨ Why choose laplace?
//
//   - Predictable – published node tables, exact Stehfest rows,
//     bit-identical reruns
//   - Honest about limits – up-front validation, sentinel errors,
//     documented noise floors per method
//   - Pure Go – the only runtime dependency is the FFT
//   - Concurrent where it pays – opt-in parallel contour sampling and
//     batch inversion
//
// Everything is organized under focused subpackages:
//
//	quadrature/ — Iseger node tables + Stehfest coefficient derivation
//	stehfest/   — real-axis inverter: Inverter, Invert, InvertBatch
//	iseger/     — contour inverter: Invert, OutputLength, options
//	specfunc/   — E1, I0, K0, erfc family, Hantush
//	curve/      — Sample, Curve records, deviation statistics
//	circuit/    — RC toy model wired to the inverters
//
// Quick taste:
//
//	out, _ := iseger.Invert(func(p complex128) complex128 {
//		return 1 / (p + 1)
//	}, 0.1, 20)
//	// out[j] ≈ e^{-0.1·j}
//
// Dive into examples/ for runnable demos: coefficient rows, decay
// inversion with both engines, an RC discharge and a groundwater well
// function.
//
//	go get github.com/katalvlaran/laplace
package laplace
