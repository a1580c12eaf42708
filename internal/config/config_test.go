package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "beam" {
		t.Errorf("expected problem beam, got %s", cfg.Problem)
	}
	if cfg.Searcher != "random" {
		t.Errorf("expected searcher random, got %s", cfg.Searcher)
	}
	if cfg.Iterations <= 0 {
		t.Error("iterations should be positive")
	}
	if cfg.Anneal.Cooling <= 0 || cfg.Anneal.Cooling >= 1 {
		t.Errorf("cooling should be in (0, 1), got %f", cfg.Anneal.Cooling)
	}
	if cfg.Grid.Points < 2 {
		t.Errorf("grid points should be at least 2, got %d", cfg.Grid.Points)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("anneal", "slow-cool")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Anneal.Cooling != 0.999 {
		t.Errorf("expected cooling 0.999, got %f", cfg.Anneal.Cooling)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("anneal", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "quick"); cfg != nil {
		t.Error("expected nil for nonexistent searcher")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("random")
	if len(presets) == 0 {
		t.Error("expected presets for random")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent searcher")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Searcher = "anneal"
	cfg.Iterations = 1234
	cfg.Seed = 42
	cfg.Anneal.Temp = 75.0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Searcher != "anneal" {
		t.Errorf("expected searcher anneal, got %s", loaded.Searcher)
	}
	if loaded.Iterations != 1234 {
		t.Errorf("expected iterations 1234, got %d", loaded.Iterations)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Anneal.Temp != 75.0 {
		t.Errorf("expected temp 75, got %f", loaded.Anneal.Temp)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
