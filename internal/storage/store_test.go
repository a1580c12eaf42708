package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/beamopt/internal/objective"
	"github.com/san-kum/beamopt/internal/optim"
)

func testResult() *optim.Result {
	return &optim.Result{
		Best:        objective.Vector{5.0, 7, 5.0, 1.0},
		BestValue:   468.0,
		History:     []float64{1e9, 700.0, 468.0},
		Evaluations: 3,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("beam", "random", 42, 3, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Problem != "beam" {
		t.Errorf("expected problem 'beam', got '%s'", meta.Problem)
	}
	if meta.Searcher != "random" {
		t.Errorf("expected searcher 'random', got '%s'", meta.Searcher)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.BestValue != 468.0 {
		t.Errorf("expected best value 468, got %f", meta.BestValue)
	}
	if len(meta.Best) != 4 {
		t.Errorf("expected 4 best variables, got %d", len(meta.Best))
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(history))
	}
	if history[2] != 468.0 {
		t.Errorf("expected final best 468, got %f", history[2])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("beam", "grid", 1, 0, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("beam", "anneal", 7, 100, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "history.csv")); os.IsNotExist(err) {
		t.Error("history.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("beam", "random", 42, 3, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	history, err := st.LoadHistory(runID)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(outPath, meta, history); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty export")
	}
}
