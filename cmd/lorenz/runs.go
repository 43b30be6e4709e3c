package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/render"
	"github.com/san-kum/lorenz/internal/storage"
	"github.com/spf13/cobra"
)

var (
	renderOut   string
	previewCols int
	previewRows int
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func newPlotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot x, y and z of a saved run against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
}

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a saved run to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	cmd.Flags().StringVarP(&renderOut, "out", "o", "", "output image (default <run_id>.png)")
	return cmd
}

func newPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [run_id]",
		Short: "draw a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  previewRun,
	}
	cmd.Flags().IntVar(&previewCols, "cols", 80, "preview width in characters")
	cmd.Flags().IntVar(&previewRows, "rows", 24, "preview height in lines")
	return cmd
}

func newExportCSVCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tSTEPS\tDT\tINIT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%v\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.InitState,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []dynamo.State, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, err
	}

	if len(states) == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}
	return meta, states, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	meta, states, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "run: %s\n", meta.ID)
	fmt.Fprintf(stdout, "model: %s\n", meta.Model)
	fmt.Fprintf(stdout, "samples: %d\n\n", len(states))

	result := &dynamo.Result{States: states}
	for i, name := range []string{"x", "y", "z"} {
		if i >= len(states[0]) {
			break
		}
		graph := asciigraph.Plot(result.Component(i),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Fprintln(stdout, graph)
		fmt.Fprintln(stdout)
	}

	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	meta, states, err := loadRun(args[0])
	if err != nil {
		return err
	}

	style, err := render.NewStyle(config.DefaultStyle())
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = meta.ID + ".png"
	}
	if err := render.SaveFile(out, states, style); err != nil {
		return err
	}

	loggerFrom(cmd).Info("wrote image", "run", meta.ID, "path", out)
	return nil
}

func previewRun(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	meta, states, err := loadRun(args[0])
	if err != nil {
		return err
	}

	out, err := render.Preview(states, render.DefaultStyle(), previewCols, previewRows)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "run: %s (%s)\n", meta.ID, meta.Model)
	fmt.Fprintln(stdout, out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteCSV(cmd.OutOrStdout(), states, times)
}
