package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single format) or base path
	formats string // comma-separated output formats
	noCache bool
	opts    pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart file to SVG, PNG, PDF or layout JSON",
		Long: `Render a chart file to one or more formats.

With a single format, -o names the output file. With several formats, -o (or
the input file name) is the base path and each format gets its extension.

PDF output requires rsvg-convert (librsvg). Results are cached locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.opts.Formats = parseFormats(ro.formats)
			if err := pipeline.ValidateFormats(ro.opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&ro.opts.Width, "width", 0, "override chart width")
	cmd.Flags().Float64Var(&ro.opts.Height, "height", 0, "override chart height")
	cmd.Flags().Float64Var(&ro.opts.Scale, "scale", pipeline.DefaultScale, "PNG pixel ratio")
	cmd.Flags().BoolVar(&ro.opts.Refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender loads the chart, runs the pipeline and writes one file per
// format.
func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	chart, err := chartfile.Import(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := startSpinner(ctx, "Rendering "+input+"...")
	ro.opts.Logger = c.Logger
	res, err := runner.Execute(ctx, chart, ro.opts)
	if err != nil {
		spin.Fail("Render failed")
		return err
	}
	spin.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(input, ro.output, ro.opts.Formats)
	for _, f := range ro.opts.Formats {
		if err := os.WriteFile(paths[f], res.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[f], err)
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(paths), "file", "files")))

	printSuccess("Rendered %s", displayName(chart, input))
	for _, f := range ro.opts.Formats {
		printFile(paths[f])
	}
	fmt.Println(statsLine(res.Stats.SeriesCount, res.Stats.AxisCount, res.Stats.LayoutIterations, res.CacheInfo.RenderHit))
	if !res.Stats.Converged {
		printWarning("Layout did not converge after %d passes; axes may overlap", res.Stats.LayoutIterations)
	}
	return nil
}

// displayName is the chart title, or the input path for untitled charts.
func displayName(c *chartfile.Chart, input string) string {
	if c.Title != "" {
		return c.Title
	}
	return input
}
