package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grzegorzj/easel/pkg/pipeline"
)

// renderCommand creates the render command for producing scene artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene file to SVG, JSON, or DOT",
		Long: `Render a scene file to one or more output formats.

The render command parses the scene, resolves every element's position, and
produces the requested artifacts:

  svg   vector drawing of the scene
  json  resolved boxes and anchors for every element
  dot   position dependency graph in Graphviz DOT syntax

Artifacts are cached locally keyed by scene content, so re-rendering an
unchanged scene is instant. Use --no-cache to bypass the cache entirely or
--refresh to recompute while still updating it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute artifacts even when cached")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background fill for SVG output (e.g. \"#ffffff\")")
	cmd.Flags().BoolVar(&opts.DebugBoxes, "debug-boxes", false, "outline border and content boxes (svg)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include kinds and boxes in DOT labels")

	return cmd
}

// runRender executes the pipeline and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if noCache && opts.Refresh {
		printWarning("--refresh has no effect with --no-cache")
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts.ScenePath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering scene...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := base + "." + format
		data := result.Artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		c.Logger.Debugf("Wrote %s: %d bytes", path, len(data))
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.ElementCount, result.CacheInfo.AllHit())
	printNewline()
	printNextStep("Inspect", "easel inspect "+input)

	return nil
}
