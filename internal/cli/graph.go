package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grzegorzj/easel/pkg/render/depgraph"
	"github.com/grzegorzj/easel/pkg/scene"
)

// graphCommand creates the graph command for exporting position dependencies.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [scene.toml]",
		Short: "Export the position dependency graph",
		Long: `Export the position dependency graph of a scene.

Every element depends on its flow parent, and positioned elements also
depend on their anchor targets. The graph command resolves the scene and
emits those edges in Graphviz DOT syntax, or renders them to SVG with
--format svg.

DOT output goes to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.deps.svg for svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include kinds and boxes in node labels")

	return cmd
}

// runGraph resolves the scene and writes the dependency graph.
func (c *CLI) runGraph(ctx context.Context, input, format, output string, detailed bool) error {
	if format != "dot" && format != "svg" {
		return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", format)
	}

	logger := loggerFromContext(ctx)

	a, err := scene.Load(input)
	if err != nil {
		return err
	}

	dot, err := depgraph.ToDOT(a, depgraph.Options{Detailed: detailed})
	if err != nil {
		return err
	}

	if format == "dot" {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Graph exported")
		printFile(output)
		return nil
	}

	logger.Debug("Rendering dependency graph SVG")
	spinner := newSpinnerWithContext(ctx, "Rendering graph...")
	spinner.Start()

	svg, err := depgraph.RenderSVG(ctx, dot)
	if err != nil {
		spinner.StopWithError("Graph rendering failed")
		return err
	}
	spinner.Stop()

	path := output
	if path == "" {
		path = basePath("", input) + ".deps.svg"
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Graph rendered")
	printFile(path)
	return nil
}
