package optim

import (
	"context"
	"math"
	"math/rand"

	"github.com/san-kum/beamopt/internal/objective"
)

const minTemp = 1e-9

// Anneal is a simulated annealing searcher. Neighbors are gaussian
// perturbations of the current candidate, scaled per variable by its
// bound span and clamped back into range. Worse moves are accepted
// with probability exp(-delta/T) under geometric cooling.
type Anneal struct {
	opts Options

	// Temp is the initial temperature, in objective units.
	Temp float64

	// Cooling is the per-iteration temperature factor in (0, 1).
	Cooling float64

	// Scale is the perturbation width as a fraction of each bound span.
	Scale float64
}

func NewAnneal(opts Options, temp, cooling float64) *Anneal {
	if opts.Iterations <= 0 {
		opts.Iterations = 1000
	}
	if temp <= 0 {
		temp = 50.0
	}
	if cooling <= 0 || cooling >= 1 {
		cooling = 0.995
	}
	return &Anneal{opts: opts, Temp: temp, Cooling: cooling, Scale: 0.1}
}

func (s *Anneal) Name() string { return "anneal" }

func (s *Anneal) Search(ctx context.Context, p objective.Problem) (*Result, error) {
	rng := rand.New(rand.NewSource(s.opts.Seed))
	res := newResult()
	bounds := p.Bounds()

	current := p.Sample(rng)
	currentValue := p.Evaluate(current)
	res.observe(current, currentValue)

	temp := s.Temp
	for i := 0; i < s.opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		next := s.neighbor(rng, current, bounds)
		nextValue := p.Evaluate(next)
		res.observe(next, nextValue)

		if accept(currentValue, nextValue, temp, rng) {
			current = next
			currentValue = nextValue
		}

		temp *= s.Cooling
		if temp < minTemp {
			temp = minTemp
		}

		sendProgress(s.opts.Progress, ProgressUpdate{
			Phase:     s.Name(),
			Iteration: i + 1,
			Total:     s.opts.Iterations,
			Candidate: next,
			Value:     nextValue,
			Best:      res.BestValue,
		})
	}

	return res, nil
}

func (s *Anneal) neighbor(rng *rand.Rand, v objective.Vector, bounds []objective.Bound) objective.Vector {
	next := v.Clone()
	for i, b := range bounds {
		x := next[i] + rng.NormFloat64()*s.Scale*b.Span()
		if b.Integer {
			x = math.Round(x)
		}
		next[i] = b.Clamp(x)
	}
	return next
}

func accept(current, next, temp float64, rng *rand.Rand) bool {
	if next <= current {
		return true
	}
	return rng.Float64() < math.Exp((current-next)/temp)
}
