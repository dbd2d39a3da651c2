// Package curve: series records, styling defaults and sentinel errors.
package curve

import "errors"

// Styling defaults applied by New.
const (
	DefaultColor  = "blue"
	DefaultMarker = "."
)

var (
	// ErrInvalidSpan - the sampling span must run forward with a positive finite step.
	ErrInvalidSpan = errors.New("curve: span must run forward with a positive finite step")
	// ErrEmptySeries - deviation statistics need at least one point.
	ErrEmptySeries = errors.New("curve: empty series")
	// ErrLengthMismatch - compared series must have equal length.
	ErrLengthMismatch = errors.New("curve: series length mismatch")
)

// Point is one sample of a time-domain series.
type Point struct {
	T     float64
	Value float64
}

// Kind selects how a renderer should draw a curve.
type Kind int

const (
	KindLine Kind = iota
	KindScatter
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindScatter {
		return "scatter"
	}

	return "line"
}

// Curve is a labelled series with rendering hints. It is plain data;
// packages that draw or export consume it as-is. Marker only matters
// for scatter curves.
type Curve struct {
	Label  string
	Color  string
	Kind   Kind
	Marker string
	Points []Point
}

// New assembles a line curve with the default styling. Adjust the
// fields afterwards for scatter plots or custom colors.
func New(label string, points []Point) Curve {
	return Curve{
		Label:  label,
		Color:  DefaultColor,
		Kind:   KindLine,
		Marker: DefaultMarker,
		Points: points,
	}
}
