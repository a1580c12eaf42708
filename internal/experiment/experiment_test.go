package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/beamopt/internal/config"
)

func TestRegistryGetProblem(t *testing.T) {
	r := NewRegistry()

	p, err := r.GetProblem("beam")
	if err != nil {
		t.Fatalf("get problem failed: %v", err)
	}
	if p.Dim() != 4 {
		t.Errorf("expected 4 variables, got %d", p.Dim())
	}

	if _, err := r.GetProblem("nonexistent"); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestRegistryGetSearcher(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()

	for _, name := range []string{"random", "anneal", "grid"} {
		s, err := r.GetSearcher(name, cfg, nil)
		if err != nil {
			t.Fatalf("get searcher %s failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("expected searcher name %s, got %s", name, s.Name())
		}
	}

	if _, err := r.GetSearcher("nonexistent", cfg, nil); err == nil {
		t.Error("expected error for unknown searcher")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	if got := r.ListProblems(); len(got) == 0 {
		t.Error("expected at least one problem")
	}
	if got := r.ListSearchers(); len(got) != 3 {
		t.Errorf("expected 3 searchers, got %d", len(got))
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Iterations = 100
	cfg.Seed = 42

	exp := New(cfg)
	if err := exp.Setup(NewRegistry(), nil); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Evaluations != 100 {
		t.Errorf("expected 100 evaluations, got %d", result.Evaluations)
	}
}

func TestExperimentRunWithoutSetup(t *testing.T) {
	exp := New(config.DefaultConfig())
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error for experiment without setup")
	}
}
