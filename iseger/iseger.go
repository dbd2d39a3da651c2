// SPDX-License-Identifier: MIT
package iseger

import (
	"math"
	"sync"

	"github.com/mjibson/go-dsp/fft"

	"github.com/katalvlaran/laplace/quadrature"
)

// OutputLength reports how many samples Invert returns for a requested
// count: the smallest power of two that is not below it. Counts under
// two are not invertible, but the rounding itself is total and maps
// them to 1.
func OutputLength(count int) int {
	mm := 1
	for mm < count {
		mm <<= 1
	}

	return mm
}

// Invert reconstructs the original f on the uniform grid t_j = j·Δt,
// j = 0..OutputLength(count)-1, from its Laplace image.
//
// Description:
//
//	The Bromwich integral is evaluated on a vertical contour placed at
//	b/Δt (plus the critical abscissa when one is set, see
//	WithCriticalAbscissa). A Gaussian rule from the quadrature package
//	collapses the Fourier-series tail of the integrand into a short
//	weighted sum per output frequency, and a single inverse FFT turns
//	the m2 = 8·OutputLength(count) frequency samples into time samples.
//	A final exponential unwarp removes the contour damping.
//
// Contracts:
//   - Δt must be positive and finite, count at least 2, and the degree
//     one of quadrature.Degrees; violations surface as ErrInvalidStep,
//     ErrInvalidCount and quadrature.ErrUnsupportedDegree, in that
//     order, before the image is evaluated even once.
//   - the image is evaluated (m2+1)·degree/2 times, serially unless
//     WithWorkers raises the worker count.
//   - originals with singularities right of the default contour need
//     WithCriticalAbscissa; without it the damping is insufficient and
//     the output is garbage (no error can be detected numerically).
//
// Complexity: O(m2·degree) image evaluations plus an O(m2·log m2)
// inverse FFT, O(m2) extra space.
func Invert(image Image, deltaT float64, count int, opts ...Option) ([]float64, error) {
	// 1) Resolve options.
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// 2) Validate the run before touching the image: step, count,
	//    then quadrature degree.
	if !(deltaT > 0) || math.IsInf(deltaT, 1) {
		return nil, ErrInvalidStep
	}
	if count < 2 {
		return nil, ErrInvalidCount
	}
	nodes, err := quadrature.Nodes(options.Degree)
	if err != nil {
		return nil, err
	}

	// 3) Fix the frequency grid and the contour. The damping constant
	//    44 sets the series truncation error near e^{-44}, well under
	//    float64 resolution.
	mm := OutputLength(count)
	m2 := 8 * mm
	b := 44.0 / float64(m2)

	abscissa := options.CriticalAbscissa
	sigma := b / deltaT
	if abscissa > 0 {
		sigma = abscissa + b/deltaT
	}

	// 4) Sample the contour: one weighted node sweep per frequency.
	samples := make([]complex128, m2+1)
	sampleAt := func(k int) {
		angle := 2.0 * math.Pi * float64(k) / float64(m2)
		sum := 0.0
		for _, node := range nodes {
			sum += node.Weight * real(image(complex(sigma, (node.Abscissa+angle)/deltaT)))
		}
		samples[k] = complex(2.0*sum/deltaT, 0)
	}
	if options.Workers > 1 {
		sampleAll(sampleAt, m2+1, options.Workers)
	} else {
		for k := 0; k <= m2; k++ {
			sampleAt(k)
		}
	}

	// 5) Fold the wrap-around endpoint and transform back to time.
	samples[0] = (samples[0] + samples[m2]) / 2
	spectrum := fft.IFFT(samples[:m2])

	// 6) Undo the contour damping and the block scaling.
	out := make([]float64, mm)
	scale := float64(m2) / 2.0
	quarter := float64(m2) / 4.0
	for j := range out {
		arg := b * float64(j)
		if abscissa > 0 {
			arg += abscissa * float64(j) * deltaT
		}
		out[j] = real(spectrum[j]) * scale * math.Exp(arg) / quarter
	}

	return out, nil
}

// sampleAll fans sample evaluation out across workers goroutines in
// contiguous chunks; disjoint index ranges need no synchronization
// beyond the final Wait.
func sampleAll(sampleAt func(k int), n, workers int) {
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				sampleAt(k)
			}
		}(lo, hi)
	}
	wg.Wait()
}
