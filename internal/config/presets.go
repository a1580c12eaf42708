package config

var Presets = map[string]map[string]*Config{
	"random": {
		"quick": {
			Problem: "beam", Searcher: "random", Iterations: 500,
		},
		"thorough": {
			Problem: "beam", Searcher: "random", Iterations: 20000,
		},
	},
	"anneal": {
		"quick": {
			Problem: "beam", Searcher: "anneal", Iterations: 1000,
			Anneal: AnnealConfig{Temp: 50.0, Cooling: 0.99, Scale: 0.1},
		},
		"slow-cool": {
			Problem: "beam", Searcher: "anneal", Iterations: 10000,
			Anneal: AnnealConfig{Temp: 100.0, Cooling: 0.999, Scale: 0.1},
		},
		"fine": {
			Problem: "beam", Searcher: "anneal", Iterations: 5000,
			Anneal: AnnealConfig{Temp: 10.0, Cooling: 0.995, Scale: 0.02},
		},
	},
	"grid": {
		"coarse": {
			Problem: "beam", Searcher: "grid",
			Grid: GridConfig{Points: 5},
		},
		"fine": {
			Problem: "beam", Searcher: "grid",
			Grid: GridConfig{Points: 12},
		},
	},
}

func GetPreset(searcher, preset string) *Config {
	searcherPresets, ok := Presets[searcher]
	if !ok {
		return nil
	}
	cfg, ok := searcherPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(searcher string) []string {
	searcherPresets, ok := Presets[searcher]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(searcherPresets))
	for name := range searcherPresets {
		names = append(names, name)
	}
	return names
}
