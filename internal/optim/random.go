package optim

import (
	"context"
	"math/rand"

	"github.com/san-kum/beamopt/internal/objective"
)

// RandomSearch evaluates uniformly sampled candidates. It is the
// baseline every other searcher is judged against.
type RandomSearch struct {
	opts Options
}

func NewRandomSearch(opts Options) *RandomSearch {
	if opts.Iterations <= 0 {
		opts.Iterations = 1000
	}
	return &RandomSearch{opts: opts}
}

func (s *RandomSearch) Name() string { return "random" }

func (s *RandomSearch) Search(ctx context.Context, p objective.Problem) (*Result, error) {
	rng := rand.New(rand.NewSource(s.opts.Seed))
	res := newResult()

	for i := 0; i < s.opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		v := p.Sample(rng)
		value := p.Evaluate(v)
		res.observe(v, value)

		sendProgress(s.opts.Progress, ProgressUpdate{
			Phase:     s.Name(),
			Iteration: i + 1,
			Total:     s.opts.Iterations,
			Candidate: v,
			Value:     value,
			Best:      res.BestValue,
		})
	}

	return res, nil
}
