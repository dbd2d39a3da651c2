package specfunc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/laplace/specfunc"
)

// TestE1_KnownValues compares both fit branches against reference
// values; tolerances track the published error of each fit.
func TestE1_KnownValues(t *testing.T) {
	for _, tc := range []struct{ x, want, tol float64 }{
		{0.2, 1.2226505441838929, 1e-8},
		{0.5, 0.5597735947761609, 5e-7},
		{1.0, 0.21938393439552026, 1e-7},
		{2.0, 0.04890051070806106, 1e-8},
		{4.0, 0.003779352409848912, 1e-9},
	} {
		assert.InDelta(t, tc.want, specfunc.E1(tc.x), tc.tol, "x=%v", tc.x)
	}
}

// TestE1_DomainEdges: the integral diverges at zero and has no real
// value left of it.
func TestE1_DomainEdges(t *testing.T) {
	assert.True(t, math.IsInf(specfunc.E1(0), 1))
	assert.True(t, math.IsNaN(specfunc.E1(-0.5)))
	assert.True(t, math.IsNaN(specfunc.E1(math.NaN())))
}

// TestE1_StrictlyDecreasing: E1 falls monotonically on (0, ∞); the fit
// error is orders of magnitude below the decrement at this spacing.
func TestE1_StrictlyDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for i := 1; i <= 50; i++ {
		x := float64(i) * 0.1
		cur := specfunc.E1(x)
		assert.Less(t, cur, prev, "x=%v", x)
		prev = cur
	}
}
