// Package quadrature defines the node/coefficient types shared by the
// Stehfest and Iseger inverters.
package quadrature

import "errors"

// Sentinel errors returned by table lookups and coefficient derivation.
var (
	// ErrUnsupportedDegree indicates a quadrature degree outside {16, 32, 48}.
	ErrUnsupportedDegree = errors.New("quadrature: degree must be 16, 32 or 48")

	// ErrInvalidOrder indicates a Stehfest order that is not a positive even integer.
	ErrInvalidOrder = errors.New("quadrature: order must be a positive even integer")
)

// Node is one Iseger quadrature pair: a summation weight and the
// imaginary-axis offset of the contour point it applies to.
//
// Weight   – multiplier of the image evaluation at this node (≥ 0).
// Abscissa – offset added to the imaginary part of the contour point (≥ 0).
//
// A table of degree d holds d/2 nodes; early abscissas approach the
// regular spacing 2πk, later ones spread out to capture the tail.
type Node struct {
	Weight   float64
	Abscissa float64
}

// Degrees reports the supported Iseger quadrature degrees in
// ascending order. The returned slice is a fresh copy.
func Degrees() []int {
	return []int{Degree16, Degree32, Degree48}
}

// Supported quadrature degrees. The value is the nominal degree of the
// underlying Gaussian rule; the matching table holds degree/2 nodes.
const (
	Degree16 = 16
	Degree32 = 32
	Degree48 = 48
)
