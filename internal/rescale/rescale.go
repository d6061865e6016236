// Package rescale contains NA-aware numeric transforms over float64 slices.
// NaN marks a missing value throughout.
package rescale

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rescale01 linearly maps values onto the unit interval using the
// slice's own observed minimum and maximum. Missing (NaN) elements are
// excluded from the range and stay in place. A constant input has zero
// range, so every defined position divides to NaN; that is propagated,
// not treated as an error.
func Rescale01(values []float64) []float64 {
	result := make([]float64, len(values))
	copy(result, values)

	min, max, defined := RangeNA(result)
	if defined == 0 {
		return result
	}

	floats.AddConst(-min, result)
	floats.Scale(1.0/(max-min), result)

	return result
}

// RangeNA returns the minimum and maximum over the defined (non-NaN)
// elements and how many defined elements there are. min and max are NaN
// when defined is zero.
func RangeNA(values []float64) (min, max float64, defined int) {
	min, max = math.NaN(), math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if defined == 0 || v < min {
			min = v
		}
		if defined == 0 || v > max {
			max = v
		}
		defined++
	}

	return min, max, defined
}

// Rescale01Columns applies Rescale01 independently to each column.
func Rescale01Columns(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()

	scaled := mat.NewDense(rows, cols, nil)

	for colIdx := 0; colIdx < cols; colIdx++ {
		colValues := mat.Col(nil, colIdx, m)
		scaled.SetCol(colIdx, Rescale01(colValues))
	}

	return scaled
}
