package service

import (
	"math"

	"github.com/datakit-labs/tidescale/internal/rescale"
)

// ValuesRequest carries one numeric sequence. A null element marks a
// missing value, since JSON has no NaN.
type ValuesRequest struct {
	Values []*float64 `json:"values"`
}

type RescaleResponse struct {
	Values []*float64 `json:"values"`
}

type SummaryResponse struct {
	Count   int      `json:"count"`
	Missing int      `json:"missing"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Mean    *float64 `json:"mean"`
	Median  *float64 `json:"median"`
	StdDev  *float64 `json:"std_dev"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToFloats converts a wire sequence to the library convention,
// null becoming NaN.
func ToFloats(in []*float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	return out
}

// FromFloats converts back to the wire convention. NaN and infinities
// become null, since JSON cannot carry them.
func FromFloats(in []float64) []*float64 {
	out := make([]*float64, len(in))
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		val := v
		out[i] = &val
	}
	return out
}

func floatPtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NewSummaryResponse converts a summary to its wire form.
func NewSummaryResponse(s rescale.Summary) SummaryResponse {
	return SummaryResponse{
		Count:   s.Count,
		Missing: s.Missing,
		Min:     floatPtr(s.Min),
		Max:     floatPtr(s.Max),
		Mean:    floatPtr(s.Mean),
		Median:  floatPtr(s.Median),
		StdDev:  floatPtr(s.StdDev),
	}
}
