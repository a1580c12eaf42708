package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID          string    `json:"id"`
	Problem     string    `json:"problem"`
	Searcher    string    `json:"searcher"`
	Seed        int64     `json:"seed"`
	Iterations  int       `json:"iterations"`
	Evaluations int       `json:"evaluations"`
	Best        []float64 `json:"best"`
	BestValue   float64   `json:"best_value"`
	History     []float64 `json:"history"`
}

func exportJSON(w io.Writer, meta *RunMetadata, history []float64) error {
	data := ExportData{
		ID:          meta.ID,
		Problem:     meta.Problem,
		Searcher:    meta.Searcher,
		Seed:        meta.Seed,
		Iterations:  meta.Iterations,
		Evaluations: meta.Evaluations,
		Best:        meta.Best,
		BestValue:   meta.BestValue,
		History:     history,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, meta *RunMetadata, history []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, meta, history)
}

func ExportJSONStdout(meta *RunMetadata, history []float64) error {
	return exportJSON(os.Stdout, meta, history)
}
