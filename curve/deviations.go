package curve

import "math"

// Deviations summarises how far a series strays from its reference.
// All figures are absolute deviations.
type Deviations struct {
	Max   float64 // largest deviation
	MaxAt float64 // where Max occurred: sample time (Compare) or index (CompareSeries)
	Mean  float64 // arithmetic mean
	RMS   float64 // root mean square
}

// Compare measures a sampled series against an analytic reference
// evaluated at each sample time. An empty series returns
// ErrEmptySeries.
func Compare(points []Point, reference func(float64) float64) (Deviations, error) {
	if len(points) == 0 {
		return Deviations{}, ErrEmptySeries
	}

	dev := Deviations{MaxAt: points[0].T}
	var sum, sumSq float64
	for _, pt := range points {
		d := math.Abs(pt.Value - reference(pt.T))
		if d > dev.Max {
			dev.Max, dev.MaxAt = d, pt.T
		}
		sum += d
		sumSq += d * d
	}

	n := float64(len(points))
	dev.Mean = sum / n
	dev.RMS = math.Sqrt(sumSq / n)

	return dev, nil
}

// CompareSeries measures two raw value slices of equal length; MaxAt
// reports the offending index. Mismatched lengths return
// ErrLengthMismatch, zero-length input ErrEmptySeries.
func CompareSeries(got, want []float64) (Deviations, error) {
	if len(got) != len(want) {
		return Deviations{}, ErrLengthMismatch
	}
	if len(got) == 0 {
		return Deviations{}, ErrEmptySeries
	}

	var dev Deviations
	var sum, sumSq float64
	for i := range got {
		d := math.Abs(got[i] - want[i])
		if d > dev.Max {
			dev.Max, dev.MaxAt = d, float64(i)
		}
		sum += d
		sumSq += d * d
	}

	n := float64(len(got))
	dev.Mean = sum / n
	dev.RMS = math.Sqrt(sumSq / n)

	return dev, nil
}
