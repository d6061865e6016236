package rescale

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a slice's defined elements. Count is the number of
// defined elements; Missing is the number of NaN positions. The
// remaining fields are NaN when Count is zero.
type Summary struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	StdDev  float64
}

// Summarize computes summary statistics over the defined elements only.
func Summarize(values []float64) Summary {
	defined := Compact(values)

	s := Summary{
		Count:   len(defined),
		Missing: len(values) - len(defined),
	}

	if len(defined) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.Median, s.StdDev = nan, nan, nan, nan, nan
		return s
	}

	sort.Float64s(defined)

	s.Min = defined[0]
	s.Max = defined[len(defined)-1]
	s.Mean = stat.Mean(defined, nil)
	s.Median = median(defined)
	s.StdDev = stat.StdDev(defined, nil)

	return s
}

// median of a sorted, non-empty slice. Even lengths average the two
// middle elements.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Compact returns the defined (non-NaN) elements in their original order.
func Compact(values []float64) []float64 {
	defined := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	return defined
}

// ClampUnit constrains a value to [0, 1]. NaN passes through.
func ClampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
