package main

import (
	"fmt"
	"math/cmplx"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/floq/internal/config"
	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/eigen"
	"github.com/san-kum/floq/internal/floquet"
	"github.com/san-kum/floq/internal/store"
	"github.com/san-kum/floq/internal/tui"
)

var (
	dataDir    string
	method     string
	solver     string
	slices     int
	numEig     int
	dt         float64
	tol        float64
	maxDim     int
	configFile string
	preset     string
)

var (
	stableStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	unstableStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floq",
		Short: "floquet multiplier analysis of periodic orbits",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".floq", "data directory")

	multCmd := &cobra.Command{
		Use:   "multipliers [system]",
		Short: "compute floquet multipliers of a demo orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  runMultipliers,
	}
	multCmd.Flags().StringVar(&method, "method", "shooting", "discretization (shooting|trapezoid)")
	multCmd.Flags().StringVar(&solver, "solver", "dense", "eigensolver family (dense|arnoldi|subspace)")
	multCmd.Flags().IntVar(&slices, "slices", 1, "number of time slices")
	multCmd.Flags().IntVar(&numEig, "k", 2, "number of eigenvalues")
	multCmd.Flags().Float64Var(&dt, "dt", 1e-3, "integrator timestep")
	multCmd.Flags().Float64Var(&tol, "tol", 1e-10, "iterative solver tolerance")
	multCmd.Flags().IntVar(&maxDim, "max-dim", 0, "krylov basis limit (0 = auto)")
	multCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	multCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	watchCmd := &cobra.Command{
		Use:   "watch [system]",
		Short: "live view of iterative solver convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&slices, "slices", 4, "number of time slices")
	watchCmd.Flags().IntVar(&numEig, "k", 2, "number of eigenvalues")
	watchCmd.Flags().Float64Var(&dt, "dt", 1e-3, "integrator timestep")
	watchCmd.Flags().Float64Var(&tol, "tol", 1e-10, "iterative solver tolerance")
	watchCmd.Flags().IntVar(&maxDim, "max-dim", 0, "krylov basis limit (0 = auto)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(multCmd, watchCmd, listCmd, showCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func assembleConfig(system string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset == "" && configFile == "" {
		cfg.System = system
		cfg.Method = method
		cfg.Solver = solver
		cfg.Slices = slices
		cfg.K = numEig
		cfg.Dt = dt
		cfg.Tol = tol
		cfg.MaxDim = maxDim
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

func solverConfig(cfg *config.Config) (eigen.Config, error) {
	switch cfg.Solver {
	case "dense":
		return eigen.DenseConfig{}, nil
	case "arnoldi":
		return eigen.ArnoldiConfig{Tol: cfg.Tol, MaxDim: cfg.MaxDim}, nil
	case "subspace":
		return eigen.SubspaceConfig{Tol: cfg.Tol}, nil
	default:
		return nil, fmt.Errorf("unknown solver family: %s", cfg.Solver)
	}
}

func runMultipliers(cmd *cobra.Command, args []string) error {
	cfg, err := assembleConfig(args[0])
	if err != nil {
		return err
	}

	w, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	scfg, err := solverConfig(cfg)
	if err != nil {
		return err
	}

	eng := floquet.Engine{Diag: dynsys.WriterDiag{W: os.Stderr}}
	res, err := eng.Compute(w, scfg, cfg.K)
	if err != nil {
		return err
	}

	printSpectrum(cfg, res)

	st := store.New(cfg.DataDir)
	if err := st.Init(); err == nil {
		if id, err := st.Save(cfg.System, cfg.Method, cfg.Solver, cfg.Slices, res); err == nil {
			fmt.Printf("\nsaved run %s\n", id)
		}
	}
	return nil
}

func printSpectrum(cfg *config.Config, res *floquet.Result) {
	fmt.Printf("floquet spectrum: %s (%s, %s, %d slice(s))\n\n", cfg.System, cfg.Method, cfg.Solver, cfg.Slices)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\texponent\tmultiplier\t|multiplier|")
	mults := res.Multipliers()
	moduli := make([]float64, len(mults))
	for i, e := range res.Exponents {
		m := mults[i]
		moduli[i] = cmplx.Abs(m)
		fmt.Fprintf(tw, "%d\t%+.6f%+.6fi\t%+.6f%+.6fi\t%.6f\n",
			i, real(e), imag(e), real(m), imag(m), moduli[i])
	}
	tw.Flush()

	if len(moduli) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(moduli,
			asciigraph.Height(8),
			asciigraph.Caption("multiplier moduli, descending")))
	}

	fmt.Println()
	switch {
	case !res.Converged:
		fmt.Println(warnStyle.Render(fmt.Sprintf("solver did not converge (%d iterations, residual %.2e)",
			res.Stats.Iterations, res.Stats.Residual)))
	case res.Unstable(1e-6) > 0:
		fmt.Println(unstableStyle.Render(fmt.Sprintf("orbit unstable: %d exponent(s) with positive real part", res.Unstable(1e-6))))
	default:
		fmt.Println(stableStyle.Render("orbit stable: all nontrivial exponents have negative real part"))
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	method = "shooting"
	solver = "arnoldi"
	cfg, err := assembleConfig(args[0])
	if err != nil {
		return err
	}

	w, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	updates := make(chan tea.Msg, 64)
	scfg := eigen.ArnoldiConfig{
		Tol:    cfg.Tol,
		MaxDim: cfg.MaxDim,
		Observer: func(iter int, residual float64) {
			updates <- tui.Update{Iter: iter, Residual: residual}
		},
	}

	go func() {
		eng := floquet.Engine{}
		res, err := eng.Compute(w, scfg, cfg.K)
		done := tui.Done{Err: err}
		if err == nil {
			done.Converged = res.Converged
			done.Exponents = res.Exponents
			done.UnstableN = res.Unstable(1e-6)
			done.Iterations = res.Stats.Iterations
		}
		updates <- done
		close(updates)
	}()

	prog := tea.NewProgram(tui.NewModel(cfg.System, updates))
	_, err = prog.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tsystem\tmethod\tsolver\tk\tconverged\tunstable")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%v\t%d\n",
			r.ID, r.System, r.Method, r.Solver, r.K, r.Converged, r.Unstable)
	}
	return tw.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	spectrum, err := st.Spectrum(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %s (%s, %s) at %s\n\n", meta.ID, meta.System, meta.Method, meta.Solver,
		meta.Timestamp.Format("2006-01-02 15:04:05"))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\texponent\t|multiplier|")
	for i, e := range spectrum {
		fmt.Fprintf(tw, "%d\t%+.6f%+.6fi\t%.6f\n", i, real(e), imag(e), cmplx.Abs(cmplx.Exp(e)))
	}
	return tw.Flush()
}
