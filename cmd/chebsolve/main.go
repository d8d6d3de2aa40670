package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/config"
	"github.com/san-kum/chebsolve/internal/problems"
	"github.com/san-kum/chebsolve/internal/storage"
	"github.com/san-kum/chebsolve/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	tolerance     float64
	maxIterations int
	minDegree     int
	maxDegree     int
	damping       string
	samples       int
	noSave        bool
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chebsolve",
		Short: "spectral boundary value problem solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chebsolve", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve a boundary value problem",
		Args:  cobra.ExactArgs(1),
		RunE:  solveProblem,
	}
	solveCmd.Flags().Float64Var(&tolerance, "tolerance", bvp.DefaultTolerance, "newton convergence tolerance")
	solveCmd.Flags().IntVar(&maxIterations, "max-iterations", bvp.DefaultMaxIterations, "newton iteration cap per grid")
	solveCmd.Flags().IntVar(&minDegree, "min-degree", bvp.DefaultMinDegree, "initial collocation degree")
	solveCmd.Flags().IntVar(&maxDegree, "max-degree", bvp.DefaultMaxDegree, "maximum collocation degree")
	solveCmd.Flags().StringVar(&damping, "damping", "linesearch", "damping strategy (linesearch, none)")
	solveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples in saved output")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list available problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := problems.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range registry.List() {
				p, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem]",
		Short: "compare damping strategies on the same problem",
		Args:  cobra.ExactArgs(1),
		RunE:  compareDamping,
	}
	compareCmd.Flags().Float64Var(&tolerance, "tolerance", bvp.DefaultTolerance, "newton convergence tolerance")
	compareCmd.Flags().IntVar(&maxIterations, "max-iterations", bvp.DefaultMaxIterations, "newton iteration cap per grid")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "solve with live iteration view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&tolerance, "tolerance", bvp.DefaultTolerance, "newton convergence tolerance")
	liveCmd.Flags().IntVar(&maxIterations, "max-iterations", bvp.DefaultMaxIterations, "newton iteration cap per grid")
	liveCmd.Flags().StringVar(&damping, "damping", "linesearch", "damping strategy (linesearch, none)")

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, exportCmd, problemsCmd, presetsCmd, compareCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// solverSetup resolves the preset, config file and flags into a problem and
// solver configuration. Flags override the config file, which overrides the
// preset.
func solverSetup(cmd *cobra.Command, name string) (*problems.Preset, *bvp.Problem, bvp.Config, error) {
	registry := problems.NewRegistry()
	p, err := registry.Get(name)
	if err != nil {
		return nil, nil, bvp.Config{}, err
	}

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return nil, nil, bvp.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		tolerance = cfg.Tolerance
		maxIterations = cfg.MaxIterations
		if cfg.MinDegree > 0 {
			minDegree = cfg.MinDegree
		}
		if cfg.MaxDegree > 0 {
			maxDegree = cfg.MaxDegree
		}
		if cfg.Damping != "" {
			damping = cfg.Damping
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, bvp.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("tolerance") {
			tolerance = cfg.Tolerance
		}
		if !cmd.Flags().Changed("max-iterations") {
			maxIterations = cfg.MaxIterations
		}
		if !cmd.Flags().Changed("min-degree") {
			minDegree = cfg.MinDegree
		}
		if !cmd.Flags().Changed("max-degree") {
			maxDegree = cfg.MaxDegree
		}
		if !cmd.Flags().Changed("damping") {
			damping = cfg.Damping
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Samples
		}
	}

	damp, err := bvp.ParseDamping(damping)
	if err != nil {
		return nil, nil, bvp.Config{}, err
	}

	cfg := p.Config
	cfg.Tolerance = tolerance
	cfg.MaxIterations = maxIterations
	cfg.Damping = damp
	if minDegree > 0 {
		cfg.MinDegree = minDegree
	}
	if maxDegree > 0 {
		cfg.MaxDegree = maxDegree
	}

	prob, err := p.Build()
	if err != nil {
		return nil, nil, bvp.Config{}, err
	}
	return p, prob, cfg, nil
}

func solveProblem(cmd *cobra.Command, args []string) error {
	p, prob, cfg, err := solverSetup(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("solving %s...\n", p.Name)
	start := time.Now()

	res, err := bvp.Solve(context.Background(), prob, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	res.Params = p.Reported(res.Params)

	fmt.Printf("completed in %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "degree\t%d\n", res.Degree)
	fmt.Fprintf(w, "iterations\t%d\n", res.Iterations)
	fmt.Fprintf(w, "residual\t%.3e\n", res.Residual)
	for i, param := range res.Params {
		fmt.Fprintf(w, "param %d\t%.15g\n", i, param)
		if p.Reference != nil && i < len(p.Reference) {
			fmt.Fprintf(w, "reference %d\t%.15g (delta %.3e)\n", i, p.Reference[i], res.Params[i]-p.Reference[i])
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.PlotSolution(res.Solution, "u(x)"))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p.Name, cfg, res, samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
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
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tDEGREE\tITER\tRESIDUAL\tDAMPING")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2e\t%s\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Degree,
			run.Iterations,
			run.Residual,
			run.Damping,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	u, err := st.LoadSolution(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("degree: %d\n\n", meta.Degree)

	fmt.Println(viz.PlotSolution(u, "u(x)"))
	fmt.Println()
	fmt.Println(viz.PlotSolution(u.Deriv(), "u'(x)"))
	fmt.Println()
	fmt.Println(viz.PlotCoefficients(u))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func compareDamping(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("comparing damping strategies on %s\n\n", p.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAMPING\tDEGREE\tITER\tRESIDUAL\tTIME\tSTATUS")

	for _, damp := range []bvp.Damping{bvp.DampLineSearch, bvp.DampNone} {
		prob, err := p.Build()
		if err != nil {
			return err
		}

		cfg := p.Config
		cfg.Tolerance = tolerance
		cfg.MaxIterations = maxIterations
		cfg.Damping = damp

		start := time.Now()
		res, err := bvp.Solve(context.Background(), prob, cfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t%v\t%v\n", damp, elapsed, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2e\t%v\tok\n",
			damp, res.Degree, res.Iterations, res.Residual, elapsed)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	p, prob, cfg, err := solverSetup(cmd, args[0])
	if err != nil {
		return err
	}

	feed := make(chan tea.Msg, 64)
	solver := bvp.NewSolver(cfg)
	solver.AddObserver(bvp.ObserverFunc(func(it bvp.Iteration) {
		feed <- viz.IterationMsg(it)
	}))

	go func() {
		res, err := solver.Solve(context.Background(), prob)
		if res != nil {
			res.Params = p.Reported(res.Params)
		}
		feed <- viz.DoneMsg{Result: res, Err: err}
	}()

	program := tea.NewProgram(viz.NewModel(p.Name, feed))
	_, err = program.Run()
	return err
}
