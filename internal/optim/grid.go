package optim

import (
	"context"

	"github.com/san-kum/beamopt/internal/objective"
)

// GridSearch sweeps a regular grid over the variable bounds. Integer
// variables enumerate every value in range; continuous variables get
// Points evenly spaced values including both endpoints.
type GridSearch struct {
	opts   Options
	Points int
}

func NewGridSearch(opts Options, points int) *GridSearch {
	if points < 2 {
		points = 2
	}
	return &GridSearch{opts: opts, Points: points}
}

func (s *GridSearch) Name() string { return "grid" }

func (s *GridSearch) Search(ctx context.Context, p objective.Problem) (*Result, error) {
	bounds := p.Bounds()
	axes := make([][]float64, len(bounds))
	total := 1
	for i, b := range bounds {
		axes[i] = s.axis(b)
		total *= len(axes[i])
	}

	res := newResult()
	v := make(objective.Vector, len(bounds))
	if err := s.walk(ctx, p, axes, v, 0, total, res); err != nil {
		return res, err
	}
	return res, nil
}

func (s *GridSearch) walk(ctx context.Context, p objective.Problem, axes [][]float64, v objective.Vector, depth, total int, res *Result) error {
	if depth == len(axes) {
		value := p.Evaluate(v)
		res.observe(v, value)

		sendProgress(s.opts.Progress, ProgressUpdate{
			Phase:     s.Name(),
			Iteration: res.Evaluations,
			Total:     total,
			Candidate: v.Clone(),
			Value:     value,
			Best:      res.BestValue,
		})
		return nil
	}

	for _, x := range axes[depth] {
		if err := ctx.Err(); err != nil {
			return err
		}
		v[depth] = x
		if err := s.walk(ctx, p, axes, v, depth+1, total, res); err != nil {
			return err
		}
	}
	return nil
}

func (s *GridSearch) axis(b objective.Bound) []float64 {
	if b.Integer {
		vals := make([]float64, 0, int(b.Max-b.Min)+1)
		for x := b.Min; x <= b.Max; x++ {
			vals = append(vals, x)
		}
		return vals
	}

	vals := make([]float64, s.Points)
	step := b.Span() / float64(s.Points-1)
	for i := range vals {
		vals[i] = b.Min + float64(i)*step
	}
	// Guard against accumulated rounding pushing past Max.
	vals[s.Points-1] = b.Max
	return vals
}
