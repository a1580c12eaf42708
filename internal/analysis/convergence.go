// Package analysis provides summary statistics over search runs.
package analysis

// Convergence summarizes a best-so-far history.
type Convergence struct {
	Initial         float64
	Final           float64
	Improvements    int
	LastImprovement int // 1-based evaluation index, 0 if none
	Gain            float64
}

// Summarize walks a best-so-far curve and reports how the search
// progressed. Gain is the relative reduction from the first recorded
// best to the final one.
func Summarize(history []float64) Convergence {
	if len(history) == 0 {
		return Convergence{}
	}

	c := Convergence{
		Initial: history[0],
		Final:   history[len(history)-1],
	}

	for i := 1; i < len(history); i++ {
		if history[i] < history[i-1] {
			c.Improvements++
			c.LastImprovement = i + 1
		}
	}

	if c.Initial != 0 {
		c.Gain = (c.Initial - c.Final) / c.Initial
	}

	return c
}
