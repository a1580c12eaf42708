package analysis

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	history := []float64{1000, 1000, 700, 700, 500}

	c := Summarize(history)

	if c.Initial != 1000 {
		t.Errorf("expected initial 1000, got %f", c.Initial)
	}
	if c.Final != 500 {
		t.Errorf("expected final 500, got %f", c.Final)
	}
	if c.Improvements != 2 {
		t.Errorf("expected 2 improvements, got %d", c.Improvements)
	}
	if c.LastImprovement != 5 {
		t.Errorf("expected last improvement at 5, got %d", c.LastImprovement)
	}
	if math.Abs(c.Gain-0.5) > 1e-12 {
		t.Errorf("expected gain 0.5, got %f", c.Gain)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	c := Summarize(nil)

	if c.Improvements != 0 || c.Initial != 0 || c.Final != 0 {
		t.Errorf("expected zero summary, got %+v", c)
	}
}

func TestSummarizeFlat(t *testing.T) {
	c := Summarize([]float64{468, 468, 468})

	if c.Improvements != 0 {
		t.Errorf("expected no improvements, got %d", c.Improvements)
	}
	if c.LastImprovement != 0 {
		t.Errorf("expected no last improvement, got %d", c.LastImprovement)
	}
	if c.Gain != 0 {
		t.Errorf("expected zero gain, got %f", c.Gain)
	}
}
