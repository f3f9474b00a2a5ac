package evaluation

import "math"

// Summary describes a group of composite scores.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"average_score"`
	StdDev float64 `json:"std_deviation"`
	Min    float64 `json:"min_score"`
	Max    float64 `json:"max_score"`
}

// Summarize computes count, mean, sample standard deviation, min, and max
// of values. A single-element group reports a standard deviation of 0, not
// an error. An empty group yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	var sum float64
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - s.Mean
			sq += d * d
		}
		s.StdDev = math.Sqrt(sq / float64(len(values)-1))
	}

	return s
}
