// Package optim provides search drivers for scalar design objectives.
//
// Each searcher repeatedly calls [objective.Problem.Evaluate] and tracks
// the best candidate seen:
//
//   - [RandomSearch]: uniform sampling within bounds
//   - [Anneal]: simulated annealing with bound-scaled perturbations
//   - [GridSearch]: exhaustive sweep over a discretized grid
//
// Searchers are independent per instance: each owns its random source,
// so separate instances may run concurrently against the same Problem.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/beamopt/internal/objective"
)

// ProgressUpdate reports the state of a running search. Updates are
// sent non-blocking; slow consumers miss intermediate frames rather
// than stalling the search.
type ProgressUpdate struct {
	Phase     string
	Iteration int
	Total     int
	Candidate objective.Vector
	Value     float64
	Best      float64
}

type Options struct {
	// Iterations is the evaluation budget for sampling searchers.
	// GridSearch derives its own budget from the grid shape.
	Iterations int

	// Seed initializes the searcher's private random source.
	Seed int64

	// Progress receives per-evaluation updates when non-nil.
	Progress chan<- ProgressUpdate
}

type Result struct {
	Best        objective.Vector
	BestValue   float64
	History     []float64
	Evaluations int
}

type Searcher interface {
	Name() string
	Search(ctx context.Context, p objective.Problem) (*Result, error)
}

func newResult() *Result {
	return &Result{BestValue: math.Inf(1)}
}

// observe records one evaluation: History gets the best-so-far value,
// one entry per evaluation.
func (r *Result) observe(v objective.Vector, value float64) {
	r.Evaluations++
	if value < r.BestValue {
		r.BestValue = value
		r.Best = v.Clone()
	}
	r.History = append(r.History, r.BestValue)
}

func sendProgress(ch chan<- ProgressUpdate, u ProgressUpdate) {
	if ch == nil {
		return
	}
	select {
	case ch <- u:
	default:
		// Skip update if the consumer is behind.
	}
}
