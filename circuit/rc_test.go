package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laplace/circuit"
	"github.com/katalvlaran/laplace/curve"
	"github.com/katalvlaran/laplace/iseger"
)

// TestNew_RejectsBadComponents: components must be positive finite.
func TestNew_RejectsBadComponents(t *testing.T) {
	for _, tc := range []struct{ r, c float64 }{
		{0, 1e-4},
		{-5, 1e-4},
		{10000, 0},
		{10000, -1e-4},
		{math.NaN(), 1e-4},
		{10000, math.NaN()},
		{math.Inf(1), 1e-4},
	} {
		rc, err := circuit.New(tc.r, tc.c)
		require.ErrorIs(t, err, circuit.ErrNonPositiveComponent, "r=%v c=%v", tc.r, tc.c)
		assert.Nil(t, rc, "r=%v c=%v", tc.r, tc.c)
	}
}

// TestNewDefault_TimeConstant: the reference pair lands exactly on
// τ = 1 s.
func TestNewDefault_TimeConstant(t *testing.T) {
	rc := circuit.NewDefault()
	require.NotNil(t, rc)
	assert.Equal(t, 1.0, rc.TimeConstant())
}

// TestTransferFunction_KnownPoints checks the one-pole response at
// hand-computable arguments for τ = 1.
func TestTransferFunction_KnownPoints(t *testing.T) {
	rc := circuit.NewDefault()

	assert.Equal(t, complex(1, 0), rc.TransferFunction(0))
	assert.Equal(t, complex(0.5, 0), rc.TransferFunction(1))

	h := rc.TransferFunction(complex(0, 1)) // 1/(1+i) = (1-i)/2
	assert.InDelta(t, 0.5, real(h), 1e-15)
	assert.InDelta(t, -0.5, imag(h), 1e-15)
}

// TestDischarge_Analytic pins the time-domain transient.
func TestDischarge_Analytic(t *testing.T) {
	rc := circuit.NewDefault()

	assert.Equal(t, 5.0, rc.Discharge(5, 0))
	assert.Equal(t, 5.0*math.Exp(-1), rc.Discharge(5, 1))
	assert.Equal(t, 5.0*math.Exp(-2), rc.Discharge(5, 2))
}

// TestSteadyDischarge_Sampling: the sampled transient agrees with the
// analytic one point for point and forwards span validation.
func TestSteadyDischarge_Sampling(t *testing.T) {
	rc := circuit.NewDefault()

	pts, err := rc.SteadyDischarge(5, 1, 0.25)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	assert.Equal(t, curve.Point{T: 0, Value: 5}, pts[0])

	dev, err := curve.Compare(pts, func(tt float64) float64 { return rc.Discharge(5, tt) })
	require.NoError(t, err)
	assert.Zero(t, dev.Max)

	_, err = rc.SteadyDischarge(5, 1, 0)
	assert.ErrorIs(t, err, curve.ErrInvalidSpan)
}

// TestDischargeImage_InvertsToTransient closes the loop: pushing the
// discharge image through the contour inverter reproduces the analytic
// transient on the whole grid.
func TestDischargeImage_InvertsToTransient(t *testing.T) {
	rc := circuit.NewDefault()
	const v0 = 5.0

	out, err := iseger.Invert(rc.DischargeImage(v0), 0.1, 20)
	require.NoError(t, err)
	require.Len(t, out, 32)

	for j, got := range out {
		assert.InDelta(t, rc.Discharge(v0, 0.1*float64(j)), got, 1e-10, "j=%d", j)
	}
}

// TestTransferFunction_InvertsToImpulseResponse: H(p) itself is the
// image of the impulse response e^{-t/τ}/τ.
func TestTransferFunction_InvertsToImpulseResponse(t *testing.T) {
	rc := circuit.NewDefault()

	out, err := iseger.Invert(rc.TransferFunction, 0.1, 16)
	require.NoError(t, err)

	for j, got := range out {
		want := math.Exp(-0.1*float64(j)) / rc.TimeConstant()
		assert.InDelta(t, want, got, 1e-10, "j=%d", j)
	}
}
