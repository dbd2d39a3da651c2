package quadrature_test

import (
	"testing"

	"github.com/katalvlaran/laplace/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNodes_TableShape checks, per supported degree, the structural
// facts the inverter relies on: degree/2 entries, the first node on
// the real axis with unit weight, strictly increasing abscissas and
// weights never below one.
func TestNodes_TableShape(t *testing.T) {
	for _, degree := range quadrature.Degrees() {
		nodes, err := quadrature.Nodes(degree)
		require.NoError(t, err, "degree %d must resolve", degree)
		require.Len(t, nodes, degree/2, "degree %d table length", degree)

		assert.Equal(t, quadrature.Node{Weight: 1, Abscissa: 0}, nodes[0],
			"degree %d must anchor at the real axis", degree)

		for i := 1; i < len(nodes); i++ {
			assert.Greater(t, nodes[i].Abscissa, nodes[i-1].Abscissa,
				"degree %d: abscissas must increase at %d", degree, i)
			assert.GreaterOrEqual(t, nodes[i].Weight, 1.0,
				"degree %d: weight below one at %d", degree, i)
		}
	}
}

// TestNodes_EarlyAbscissasNearRegularGrid verifies the tables against
// their analytic anchor: the leading abscissas approach 2πk.
func TestNodes_EarlyAbscissasNearRegularGrid(t *testing.T) {
	const twoPi = 6.283185307179586

	for _, degree := range quadrature.Degrees() {
		nodes, err := quadrature.Nodes(degree)
		require.NoError(t, err)

		// The first quarter of each table hugs the regular grid tightly.
		for k := 0; k < len(nodes)/4; k++ {
			assert.InDelta(t, twoPi*float64(k), nodes[k].Abscissa, 1e-2,
				"degree %d, node %d drifts from 2πk", degree, k)
		}
	}
}

// TestNodes_ReturnsCopy makes sure a caller cannot corrupt the shared
// table through the returned slice.
func TestNodes_ReturnsCopy(t *testing.T) {
	first, err := quadrature.Nodes(quadrature.Degree16)
	require.NoError(t, err)

	first[0] = quadrature.Node{Weight: -7, Abscissa: -7}

	second, err := quadrature.Nodes(quadrature.Degree16)
	require.NoError(t, err)
	assert.Equal(t, quadrature.Node{Weight: 1, Abscissa: 0}, second[0],
		"mutating a returned table must not leak into the source data")
}

// TestNodes_UnsupportedDegree rejects every degree outside the three
// published tables.
func TestNodes_UnsupportedDegree(t *testing.T) {
	for _, degree := range []int{0, -16, 8, 17, 24, 64} {
		nodes, err := quadrature.Nodes(degree)
		assert.ErrorIs(t, err, quadrature.ErrUnsupportedDegree, "degree %d must be rejected", degree)
		assert.Nil(t, nodes, "degree %d must not yield nodes", degree)
	}
}

// TestDegrees_SortedAndStable pins the supported set.
func TestDegrees_SortedAndStable(t *testing.T) {
	assert.Equal(t, []int{16, 32, 48}, quadrature.Degrees())
}
