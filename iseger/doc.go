// Package iseger inverts Laplace transforms numerically with Den
// Iseger's contour-quadrature method: a Gaussian rule collapses the
// Bromwich integral into frequency samples, and one inverse FFT turns
// those into a whole uniform grid of time-domain values at once.
//
// 🚀 What can it do?
//
//	Given an image F evaluable at complex p, Invert reconstructs the
//	original f at t_j = j·Δt for j = 0..OutputLength(count)-1 in a
//	single pass. Accuracy on smooth images reaches near machine
//	precision; the method also tolerates oscillatory originals that
//	defeat real-axis methods such as Gaver–Stehfest.
//
// ✨ Key behaviours:
//   - batch by construction: the FFT produces the full grid, so the
//     cost of one time point and of a whole power-of-two block is the
//     same
//   - the requested count is rounded up to the next power of two; use
//     OutputLength to predict the result length
//   - exponentially growing originals invert correctly once
//     WithCriticalAbscissa moves the contour right of the growth rate
//   - evaluation is serial by default; WithWorkers opts into parallel
//     contour sampling for images that are safe for concurrent use
//
// ⚙️ Usage:
//
//	out, err := iseger.Invert(
//		func(p complex128) complex128 { return 1 / (p + 1) },
//		0.1, 20,
//	)
//	// out[j] ≈ e^{-0.1·j}, len(out) == 32
//
// Errors:
//
//   - ErrInvalidStep                 — Δt not positive finite
//   - ErrInvalidCount                — fewer than two output values
//   - quadrature.ErrUnsupportedDegree — WithDegree outside {16, 32, 48}
//
// Caveat: a singularity right of the contour makes the output garbage
// without any detectable error value. Know your image's rightmost
// singularity and set the critical abscissa above it.
package iseger
