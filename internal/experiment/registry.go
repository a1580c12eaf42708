package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/beamopt/internal/beam"
	"github.com/san-kum/beamopt/internal/config"
	"github.com/san-kum/beamopt/internal/objective"
	"github.com/san-kum/beamopt/internal/optim"
)

type searcherFactory func(cfg *config.Config, progress chan<- optim.ProgressUpdate) optim.Searcher

type Registry struct {
	problems  map[string]func() objective.Problem
	searchers map[string]searcherFactory
}

func NewRegistry() *Registry {
	r := &Registry{
		problems:  make(map[string]func() objective.Problem),
		searchers: make(map[string]searcherFactory),
	}

	r.problems["beam"] = func() objective.Problem { return beam.NewCantilever() }

	r.searchers["random"] = func(cfg *config.Config, progress chan<- optim.ProgressUpdate) optim.Searcher {
		return optim.NewRandomSearch(optim.Options{
			Iterations: cfg.Iterations,
			Seed:       cfg.Seed,
			Progress:   progress,
		})
	}
	r.searchers["anneal"] = func(cfg *config.Config, progress chan<- optim.ProgressUpdate) optim.Searcher {
		s := optim.NewAnneal(optim.Options{
			Iterations: cfg.Iterations,
			Seed:       cfg.Seed,
			Progress:   progress,
		}, cfg.Anneal.Temp, cfg.Anneal.Cooling)
		if cfg.Anneal.Scale > 0 {
			s.Scale = cfg.Anneal.Scale
		}
		return s
	}
	r.searchers["grid"] = func(cfg *config.Config, progress chan<- optim.ProgressUpdate) optim.Searcher {
		return optim.NewGridSearch(optim.Options{
			Seed:     cfg.Seed,
			Progress: progress,
		}, cfg.Grid.Points)
	}

	return r
}

func (r *Registry) GetProblem(name string) (objective.Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetSearcher(name string, cfg *config.Config, progress chan<- optim.ProgressUpdate) (optim.Searcher, error) {
	fn, ok := r.searchers[name]
	if !ok {
		return nil, fmt.Errorf("unknown searcher: %s", name)
	}
	return fn(cfg, progress), nil
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSearchers() []string {
	names := make([]string, 0, len(r.searchers))
	for name := range r.searchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
