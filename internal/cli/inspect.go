package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grzegorzj/easel/pkg/scene"
)

// inspectCommand creates the inspect command for examining resolved layouts.
func (c *CLI) inspectCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Print the resolved element tree",
		Long: `Print the resolved element tree of a scene.

The inspect command parses the scene, resolves all positions, and prints
every element with its kind and final border box, indented by tree depth.

With --interactive (-i) the tree opens in a navigable viewer showing the
border box, content box, and all nine anchors of the selected element.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the tree interactively")

	return cmd
}

// runInspect resolves the scene and prints or browses the element tree.
func (c *CLI) runInspect(ctx context.Context, input string, interactive bool) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	a, err := scene.Load(input)
	if err != nil {
		return err
	}

	l, err := scene.Export(a)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d elements", len(l.Elements)))

	if interactive {
		return runInspectTUI(l)
	}

	printTree(l)
	return nil
}

// printTree prints the resolved layout as an indented tree.
func printTree(l scene.Layout) {
	fmt.Println(StyleTitle.Render(l.Artboard.ID) + " " +
		StyleNumber.Render(fmt.Sprintf("%g×%g", l.Artboard.Width, l.Artboard.Height)))

	depths := elementDepths(l)
	for _, el := range l.Elements {
		if el.ID == l.Artboard.ID {
			continue // the root frame is the header line
		}
		b := el.BorderBox
		fmt.Println(strings.Repeat("  ", depths[el.ID]) +
			StyleHighlight.Render(el.ID) + " " +
			StyleDim.Render(el.Kind) + " " +
			StyleValue.Render(fmt.Sprintf("(%g, %g) %g×%g", b.X, b.Y, b.Width, b.Height)))
	}
}

// elementDepths computes each element's depth below the artboard root.
// Elements arrive in depth-first order, so parents are always seen first.
func elementDepths(l scene.Layout) map[string]int {
	depths := make(map[string]int, len(l.Elements))
	for _, el := range l.Elements {
		if el.Parent == "" || el.Parent == l.Artboard.ID {
			depths[el.ID] = 1
			continue
		}
		depths[el.ID] = depths[el.Parent] + 1
	}
	return depths
}
