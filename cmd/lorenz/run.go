package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/experiment"
	"github.com/san-kum/lorenz/internal/render"
	"github.com/san-kum/lorenz/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dt           float64
	steps        int
	initState    []float64
	params       map[string]string
	preset       string
	configFile   string
	output       string
	theme        string
	save         bool
	preview      bool
	validate     bool
	perturbation float64
)

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model and render its trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addIntegrationFlags(runCmd)
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVarP(&output, "out", "o", "", "output image (png, svg, pdf, jpg, tif)")
	runCmd.Flags().StringVar(&theme, "theme", "", "color theme (logo, cyberpunk, retro, minimal, ocean, sunset)")
	runCmd.Flags().BoolVar(&save, "save", false, "save the trajectory to the data directory")
	runCmd.Flags().BoolVar(&preview, "preview", false, "print a braille preview to the terminal")
	runCmd.Flags().BoolVar(&validate, "validate", false, "stop at the first non-finite state")
	return runCmd
}

func newLyapunovCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the largest lyapunov exponent",
		Args:  cobra.MaximumNArgs(1),
		RunE:  estimateLyapunov,
	}
	addIntegrationFlags(cmd)
	cmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation of the neighbour trajectory")
	return cmd
}

func addIntegrationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of euler steps")
	cmd.Flags().Float64SliceVar(&initState, "init", nil, "initial state, e.g. 1,0,0.1")
	cmd.Flags().StringToStringVar(&params, "param", nil, "model parameter override, e.g. rho=28")
}

// resolveConfig layers defaults, preset, config file, environment and flags,
// in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Model = args[0]
		cfg.Output = config.DefaultOutputFor(args[0])
	}

	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Model))
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("init") {
		cfg.InitState = initState
	}
	if flags.Changed("param") {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(params))
		}
		for name, raw := range params {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("param %s: %w", name, err)
			}
			cfg.Params[name] = v
		}
	}
	if flags.Changed("out") {
		cfg.Output = output
	}
	if flags.Changed("theme") {
		cfg.Style.Theme = theme
	}
	if flags.Changed("validate") {
		cfg.ValidateState = validate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func prepareExperiment(cfg *config.Config) (*experiment.Experiment, error) {
	return experiment.Prepare(experiment.NewRegistry(), experiment.Config{
		Model:         cfg.Model,
		Integrator:    cfg.Integrator,
		InitState:     cfg.InitState,
		Params:        cfg.Params,
		Dt:            cfg.Dt,
		Steps:         cfg.Steps,
		ValidateState: cfg.ValidateState,
	})
}

func runSimulation(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	log := loggerFrom(cmd)

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	style, err := render.NewStyle(cfg.Style)
	if err != nil {
		return err
	}

	exp, err := prepareExperiment(cfg)
	if err != nil {
		return err
	}

	log.Info("integrating", "model", cfg.Model, "integrator", cfg.Integrator, "dt", cfg.Dt, "steps", cfg.Steps)
	start := time.Now()

	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	for _, e := range result.Errors {
		log.Warn("integration stopped early", "error", e)
	}

	if err := render.SaveFile(cfg.Output, result.States, style); err != nil {
		return fmt.Errorf("render %s: %w", cfg.Output, err)
	}
	log.Info("wrote image", "path", cfg.Output)

	fmt.Fprintf(stdout, "completed in %v\n", elapsed)
	fmt.Fprintf(stdout, "states: %d\n", len(result.States))
	fmt.Fprintf(stdout, "final: %s\n", formatState(result.Final()))
	fmt.Fprintf(stdout, "output: %s\n", cfg.Output)
	printMetrics(stdout, result.Metrics)

	if save {
		runID, err := saveRun(cfg, exp, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "run id: %s\n", runID)
	}

	if preview {
		out, err := render.Preview(result.States, style, 80, 24)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	}

	return nil
}

func saveRun(cfg *config.Config, exp *experiment.Experiment, result *dynamo.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}

	spec := storage.RunSpec{
		Model:      cfg.Model,
		Integrator: cfg.Integrator,
		Dt:         cfg.Dt,
		Steps:      cfg.Steps,
		InitState:  result.States[0],
	}
	if c, ok := exp.System().(dynamo.Configurable); ok {
		spec.Params = c.GetParams()
	}

	return st.Save(spec, result)
}

func estimateLyapunov(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := prepareExperiment(cfg)
	if err != nil {
		return err
	}

	integ, err := experiment.NewRegistry().GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	loggerFrom(cmd).Info("estimating lyapunov exponent", "model", cfg.Model, "steps", cfg.Steps, "perturbation", perturbation)
	lambda, err := analysis.LyapunovExponent(exp.System(), integ, exp.InitialState(), cfg.Dt, cfg.Steps, perturbation)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "model: %s\n", cfg.Model)
	fmt.Fprintf(stdout, "largest lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Fprintln(stdout, "trajectory is chaotic")
	} else {
		fmt.Fprintln(stdout, "trajectory is not chaotic")
	}
	return nil
}

func printMetrics(stdout io.Writer, metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(stdout, "\nmetrics:")
	for _, name := range names {
		fmt.Fprintf(stdout, "  %s: %.6f\n", name, metrics[name])
	}
}

func formatState(s dynamo.State) string {
	if len(s) == 0 {
		return "-"
	}
	out := "("
	for i, v := range s {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(v, 'f', 4, 64)
	}
	return out + ")"
}
