package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/logging"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	noColor  bool
	logger   = logging.NewLogger(os.Stderr, logging.Options{NoColor: logging.NoColorRequested()})
)

// main registers the commands and executes the root command. Running with no
// subcommand renders the default Lorenz attractor to lorenz_attractor.png.
// It exits the process with status 1 if command execution returns an error.
func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", tint.Err(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lorenz",
		Short:         "integrate strange attractors and render them to images",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			raw := logLevel
			if !cmd.Flags().Changed("log-level") {
				if v, ok := os.LookupEnv(config.EnvPrefix + "LOG_LEVEL"); ok {
					raw = v
				}
			}
			level, err := logging.ParseLevel(raw)
			if err != nil {
				return err
			}
			logger = logging.NewLogger(os.Stderr, logging.Options{
				Level:   level,
				NoColor: noColor || logging.NoColorRequested(),
				Source:  level < slog.LevelInfo,
			})
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")

	rootCmd.AddCommand(
		newRunCommand(),
		newLyapunovCommand(),
		newPresetsCommand(),
		newListCommand(),
		newPlotCommand(),
		newRenderCommand(),
		newPreviewCommand(),
		newExportCSVCommand(),
	)

	return rootCmd
}

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model (default lorenz)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := config.DefaultModel
			if len(args) > 0 {
				model = args[0]
			}
			stdout := cmd.OutOrStdout()

			presets := config.ListPresets(model)
			if len(presets) == 0 {
				fmt.Fprintf(stdout, "no presets for model: %s\n", model)
				return nil
			}
			fmt.Fprintf(stdout, "presets for %s:\n", model)
			for _, p := range presets {
				cfg := config.GetPreset(model, p)
				fmt.Fprintf(stdout, "  %-8s x0=%v dt=%g steps=%d\n", p, cfg.InitState, cfg.Dt, cfg.Steps)
			}
			return nil
		},
	}
}

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}
