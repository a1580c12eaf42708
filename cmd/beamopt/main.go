package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/beamopt/internal/analysis"
	"github.com/san-kum/beamopt/internal/beam"
	"github.com/san-kum/beamopt/internal/config"
	"github.com/san-kum/beamopt/internal/experiment"
	"github.com/san-kum/beamopt/internal/objective"
	"github.com/san-kum/beamopt/internal/optim"
	"github.com/san-kum/beamopt/internal/storage"
	"github.com/san-kum/beamopt/internal/tui"
)

var (
	dataDir     string
	seed        int64
	iters       int
	temp        float64
	cooling     float64
	scale       float64
	points      int
	configFile  string
	preset      string
	sampleCount int
	evalSamples bool
	jsonOut     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamopt",
		Short: "cantilevered I-beam design optimization lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamopt", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [H] [h1] [b1] [b2]",
		Short: "evaluate a candidate design",
		Args:  cobra.ExactArgs(4),
		RunE:  evalCandidate,
	}
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "print report as JSON")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "draw random candidate designs",
		RunE:  sampleCandidates,
	}
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 10, "number of candidates")
	sampleCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	sampleCmd.Flags().BoolVar(&evalSamples, "eval", false, "evaluate each candidate")

	boundsCmd := &cobra.Command{
		Use:   "bounds",
		Short: "print design variable bounds",
		RunE:  printBounds,
	}

	searchCmd := &cobra.Command{
		Use:   "search [searcher]",
		Short: "run a search (random, anneal, grid)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}
	addSearchFlags(searchCmd)

	liveCmd := &cobra.Command{
		Use:   "live [searcher]",
		Short: "run a search with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSearchFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [searcher]",
		Short: "list available presets for a searcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for searcher: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, sampleCmd, boundsCmd, searchCmd, liveCmd,
		listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&iters, "iters", config.DefaultIterations, "evaluation budget")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemp, "anneal initial temperature")
	cmd.Flags().Float64Var(&cooling, "cooling", config.DefaultCooling, "anneal cooling factor")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "anneal perturbation scale")
	cmd.Flags().IntVar(&points, "points", config.DefaultGridPoints, "grid points per continuous variable")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func parseCandidate(args []string) (objective.Vector, error) {
	v := make(objective.Vector, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid variable %q: %w", arg, err)
		}
		v[i] = x
	}
	return v, nil
}

func evalCandidate(cmd *cobra.Command, args []string) error {
	v, err := parseCandidate(args)
	if err != nil {
		return err
	}

	c := beam.NewCantilever()
	rep := c.Analyze(v)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "height\t%.4f\n", rep.Height)
	fmt.Fprintf(w, "flange height\t%.4f\n", rep.FlangeHeight)
	fmt.Fprintf(w, "flange width\t%.4f\n", rep.FlangeWidth)
	fmt.Fprintf(w, "web width\t%.4f\n", rep.WebWidth)
	fmt.Fprintf(w, "inertia\t%.4f\n", rep.Inertia)
	fmt.Fprintf(w, "stress\t%.2f\t(limit 5000, ok=%v)\n", rep.Stress, rep.OKStress)
	fmt.Fprintf(w, "deflection\t%.6f\t(limit 0.10, ok=%v)\n", rep.Deflection, rep.OKDeflection)
	if rep.Feasible {
		fmt.Fprintf(w, "volume\t%.4f\n", rep.Volume)
	} else {
		fmt.Fprintf(w, "rejected\t%s\n", rep.Reason)
	}
	fmt.Fprintf(w, "objective\t%g\n", c.Evaluate(v))
	return w.Flush()
}

func sampleCandidates(cmd *cobra.Command, args []string) error {
	c := beam.NewCantilever()
	rng := rand.New(rand.NewSource(seed))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if evalSamples {
		fmt.Fprintln(w, "H\th1\tb1\tb2\tVALUE")
	} else {
		fmt.Fprintln(w, "H\th1\tb1\tb2")
	}

	for i := 0; i < sampleCount; i++ {
		v := c.Sample(rng)
		if evalSamples {
			fmt.Fprintf(w, "%.4f\t%.0f\t%.4f\t%.4f\t%g\n", v[0], v[1], v[2], v[3], c.Evaluate(v))
		} else {
			fmt.Fprintf(w, "%.4f\t%.0f\t%.4f\t%.4f\n", v[0], v[1], v[2], v[3])
		}
	}

	return w.Flush()
}

func printBounds(cmd *cobra.Command, args []string) error {
	c := beam.NewCantilever()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VAR\tMIN\tMAX\tTYPE")
	for _, b := range c.Bounds() {
		kind := "real"
		if b.Integer {
			kind = "integer"
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\n", b.Name, b.Min, b.Max, kind)
	}
	return w.Flush()
}

// buildConfig resolves the search configuration: preset, then config
// file, then explicit flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	searcher := cfg.Searcher
	if len(args) > 0 {
		searcher = args[0]
	}
	cfg.Searcher = searcher

	if preset != "" {
		p := config.GetPreset(searcher, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(searcher))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Searcher = searcher
		}
	}

	if cmd.Flags().Changed("iters") || cfg.Iterations == 0 {
		cfg.Iterations = iters
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("temp") {
		cfg.Anneal.Temp = temp
	}
	if cmd.Flags().Changed("cooling") {
		cfg.Anneal.Cooling = cooling
	}
	if cmd.Flags().Changed("scale") {
		cfg.Anneal.Scale = scale
	}
	if cmd.Flags().Changed("points") || cfg.Grid.Points == 0 {
		cfg.Grid.Points = points
	}

	return cfg, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry(), nil); err != nil {
		return err
	}

	fmt.Printf("running %s search on %s...\n", cfg.Searcher, cfg.Problem)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Problem, cfg.Searcher, cfg.Seed, cfg.Iterations, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	printResult(exp, result)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	progress := make(chan optim.ProgressUpdate, 256)

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry(), progress); err != nil {
		return err
	}

	resCh := make(chan *optim.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := exp.Run(context.Background())
		close(progress)
		resCh <- result
		errCh <- err
	}()

	m := tui.NewModel(cfg.Problem, progress, beam.Penalty)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	result := <-resCh
	if err := <-errCh; err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Problem, cfg.Searcher, cfg.Seed, cfg.Iterations, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	printResult(exp, result)
	return nil
}

func printResult(exp *experiment.Experiment, result *optim.Result) {
	fmt.Printf("evaluations: %d\n", result.Evaluations)

	if result.BestValue >= beam.Penalty {
		fmt.Println("no feasible design found")
		return
	}

	bounds := exp.Problem().Bounds()
	fmt.Println("\nbest design:")
	for i, b := range bounds {
		fmt.Printf("  %s: %.6f\n", b.Name, result.Best[i])
	}
	fmt.Printf("  volume: %.6f\n", result.BestValue)

	c := analysis.Summarize(result.History)
	fmt.Printf("\nimprovements: %d (last at evaluation %d)\n", c.Improvements, c.LastImprovement)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tSEARCHER\tTIME\tEVALS\tBEST")

	for _, run := range runs {
		best := "-"
		if run.BestValue < beam.Penalty {
			best = strconv.FormatFloat(run.BestValue, 'f', 4, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Problem,
			run.Searcher,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Evaluations,
			best,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}

	// Drop the leading all-infeasible stretch; it would flatten the plot.
	feasible := make([]float64, 0, len(history))
	for _, v := range history {
		if v < beam.Penalty {
			feasible = append(feasible, v)
		}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("searcher: %s\n", meta.Searcher)
	fmt.Printf("evaluations: %d\n\n", meta.Evaluations)

	if len(feasible) < 2 {
		fmt.Println("not enough feasible evaluations to plot")
		return nil
	}

	graph := asciigraph.Plot(feasible,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("best volume vs evaluation"),
	)
	fmt.Println(graph)

	c := analysis.Summarize(history)
	fmt.Printf("\nfinal best: %.6f\n", c.Final)
	fmt.Printf("improvements: %d (last at evaluation %d)\n", c.Improvements, c.LastImprovement)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "best"}); err != nil {
		return err
	}
	for i, best := range history {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(best, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, history)
}
