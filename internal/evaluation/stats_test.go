package evaluation_test

import (
	"math"
	"testing"

	"github.com/valpere/tagasalin/internal/evaluation"
)

func TestSummarize_Empty(t *testing.T) {
	s := evaluation.Summarize(nil)
	if s.Count != 0 || s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}

func TestSummarize_SingleElement(t *testing.T) {
	s := evaluation.Summarize([]float64{87.5})
	if s.Count != 1 {
		t.Errorf("expected count 1, got %d", s.Count)
	}
	if s.Mean != 87.5 || s.Min != 87.5 || s.Max != 87.5 {
		t.Errorf("expected all stats 87.5, got %+v", s)
	}
	// One member: std-dev must be exactly 0, never NaN.
	if s.StdDev != 0 {
		t.Errorf("expected std-dev 0 for single element, got %v", s.StdDev)
	}
	if math.IsNaN(s.StdDev) {
		t.Error("std-dev must not be NaN")
	}
}

func TestSummarize_MultipleElements(t *testing.T) {
	s := evaluation.Summarize([]float64{80, 90, 100})
	if s.Count != 3 {
		t.Errorf("expected count 3, got %d", s.Count)
	}
	if s.Mean != 90 {
		t.Errorf("expected mean 90, got %v", s.Mean)
	}
	if s.Min != 80 || s.Max != 100 {
		t.Errorf("expected min 80 max 100, got %+v", s)
	}
	// Sample standard deviation of {80,90,100} is 10.
	if math.Abs(s.StdDev-10) > 1e-9 {
		t.Errorf("expected std-dev 10, got %v", s.StdDev)
	}
}

func TestSummarize_IdenticalValues(t *testing.T) {
	s := evaluation.Summarize([]float64{50, 50, 50, 50})
	if s.StdDev != 0 {
		t.Errorf("expected std-dev 0 for identical values, got %v", s.StdDev)
	}
}
