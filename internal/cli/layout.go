package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		watch   bool
		cell    geom.Size
		opts    pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Print the computed geometry of a chart",
		Long: `Compute the layout of a chart and print its regions: plot area, axes,
title and legend, plus the resolved margins.

With --watch the layout is recomputed live whenever the terminal is resized
or the chart file changes. The terminal size is converted to pixels with
--cell-width and --cell-height.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return runWatch(cmd.Context(), args[0], cell)
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the layout as JSON to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "override chart width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "override chart height")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "relayout live on resize and file change")
	cmd.Flags().Float64Var(&cell.Width, "cell-width", 8, "pixels per terminal column (--watch)")
	cmd.Flags().Float64Var(&cell.Height, "cell-height", 16, "pixels per terminal row (--watch)")

	return cmd
}

// runLayout computes and prints the layout of input.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	chart, err := chartfile.Import(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	l, hit, err := runner.Layout(ctx, chart, opts)
	if err != nil {
		return err
	}

	printSuccess("Layout of %s", displayName(chart, input))
	fmt.Println(layoutTable(l))
	fmt.Println(statsLine(len(chart.Series), 0, l.Iterations, hit))

	if output != "" {
		data, err := pipeline.MarshalLayout(l)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printFile(output)
		printNextStep("Render", appName+" render "+input)
	}
	return nil
}

// layoutTable renders the regions and margins of l as a table.
func layoutTable(l plot.Layout) string {
	rows := [][]string{
		rectRow("Viewport", geom.Rect{Width: l.Width, Height: l.Height}),
		rectRow("Plot area", l.PlotArea),
		rectRow("Plot + axes", l.PlotAndAxisArea),
		rectRow("Title", l.TitleArea),
		rectRow("Legend", l.LegendArea),
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Region", "Left", "Top", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleTableHeader.Padding(0, 1)
			case row >= len(rows):
				return base
			case col == 0:
				return base.Foreground(colorGray)
			case rows[row][3] == "-":
				return base.Foreground(colorDim)
			default:
				return base.Foreground(colorWhite)
			}
		})

	m := l.ActualMargins
	status := StyleDim.Render("converged")
	if !l.Converged {
		status = StyleWarning.Render("not converged")
	}
	return t.Render() + "\n" +
		fmt.Sprintf("  %s %s  %s %s",
			StyleDim.Render("margins"),
			StyleNumber.Render(fmt.Sprintf("L %.1f  T %.1f  R %.1f  B %.1f", m.Left, m.Top, m.Right, m.Bottom)),
			StyleDim.Render(plural(l.Iterations, "pass", "passes")),
			status)
}

func rectRow(name string, r geom.Rect) []string {
	if r.Width <= 0 && r.Height <= 0 {
		return []string{name, "-", "-", "-", "-"}
	}
	return []string{name,
		fmt.Sprintf("%.1f", r.Left),
		fmt.Sprintf("%.1f", r.Top),
		fmt.Sprintf("%.1f", r.Width),
		fmt.Sprintf("%.1f", r.Height),
	}
}
