// Package iseger: shared types, tunables and sentinel errors.
package iseger

import "errors"

// DefaultDegree is the quadrature rule used when no WithDegree option
// is supplied. Eight contour nodes already resolve smooth images to
// near machine precision.
const DefaultDegree = 16

var (
	// ErrInvalidStep - the sampling step must be a positive finite number.
	ErrInvalidStep = errors.New("iseger: time step must be positive and finite")
	// ErrInvalidCount - a run must request at least two output values.
	ErrInvalidCount = errors.New("iseger: need at least two output values")
)

// Image is a Laplace image F evaluated on the inversion contour.
//
// Invert calls it at complex points p with a fixed positive real part;
// return values are folded into the sample sum as-is, so NaN or Inf
// outputs poison the whole output grid. Panics are not recovered.
type Image func(p complex128) complex128

// Options bundles the tunables of one inversion run.
type Options struct {
	// CriticalAbscissa shifts the integration contour right by the
	// given amount so it clears the image's rightmost singularity.
	// Values at or below zero keep the default contour, which already
	// lies right of the origin.
	CriticalAbscissa float64
	// Degree selects the quadrature rule: 16, 32 or 48 as listed by
	// quadrature.Degrees.
	Degree int
	// Workers caps the goroutines sampling the contour. With the
	// default of 1 the image is evaluated serially and needs no
	// concurrency guarantees of its own.
	Workers int
}

// DefaultOptions returns the configuration Invert starts from before
// applying functional options.
func DefaultOptions() Options {
	return Options{
		CriticalAbscissa: 0,
		Degree:           DefaultDegree,
		Workers:          1,
	}
}

// Option mutates Options in place; pass any number of them to Invert.
type Option func(*Options)

// WithCriticalAbscissa places the contour right of the image's
// rightmost singularity. Required for originals that grow like e^{σt}:
// pass any value above σ.
func WithCriticalAbscissa(a float64) Option {
	return func(o *Options) { o.CriticalAbscissa = a }
}

// WithDegree selects the quadrature rule. The degree is validated at
// inversion time; unsupported values surface as
// quadrature.ErrUnsupportedDegree before the image is touched.
func WithDegree(degree int) Option {
	return func(o *Options) { o.Degree = degree }
}

// WithWorkers fans the contour sampling out across n goroutines. The
// image must be safe for concurrent use when n > 1. n must be at
// least 1; anything lower panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("iseger: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.Workers = n }
}
