package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/beamopt/internal/config"
	"github.com/san-kum/beamopt/internal/objective"
	"github.com/san-kum/beamopt/internal/optim"
)

// Experiment binds a configured searcher to a problem for one run.
type Experiment struct {
	cfg      *config.Config
	problem  objective.Problem
	searcher optim.Searcher
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(r *Registry, progress chan<- optim.ProgressUpdate) error {
	problem, err := r.GetProblem(e.cfg.Problem)
	if err != nil {
		return err
	}
	searcher, err := r.GetSearcher(e.cfg.Searcher, e.cfg, progress)
	if err != nil {
		return err
	}
	e.problem = problem
	e.searcher = searcher
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*optim.Result, error) {
	if e.problem == nil || e.searcher == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.searcher.Search(ctx, e.problem)
}

func (e *Experiment) Problem() objective.Problem {
	return e.problem
}

func (e *Experiment) Searcher() optim.Searcher {
	return e.searcher
}
