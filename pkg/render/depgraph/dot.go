// Package depgraph renders an artboard's placement dependency graph as a
// node-link diagram: flow edges from the tree structure, target edges from
// position specs. The diagram is the debugging view for "why is this element
// placed after that one".
package depgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/layout"
)

// Options configures dependency graph rendering.
type Options struct {
	// Detailed includes each element's kind and resolved border box in its
	// label. When false, only the element ID is shown.
	Detailed bool
}

// ToDOT converts the artboard's placement dependency graph to Graphviz DOT.
// The artboard is resolved as a side effect; an unresolvable artboard (cycle,
// unresolved target) fails here the same way a read would.
func ToDOT(a *layout.Artboard, opts Options) (string, error) {
	edges, err := a.DependencyEdges()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	a.Walk(func(e *layout.Element) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", e.ID(), strings.Join(nodeAttrs(e, opts.Detailed), ", "))
		return true
	})

	buf.WriteString("\n")
	for _, edge := range edges {
		if edge.Kind == "target" {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=\"#e63946\", label=\"target\"];\n",
				edge.From, edge.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", edge.From, edge.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeAttrs(e *layout.Element, detailed bool) []string {
	label := e.ID()
	if detailed {
		label = fmt.Sprintf("%s\n%s", e.ID(), e.Kind())
		if box, err := e.BorderBox(); err == nil {
			label += fmt.Sprintf("\n(%.0f, %.0f) %.0fx%.0f", box.X, box.Y, box.Width, box.Height)
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if e.Kind() != layout.KindLeaf {
		attrs = append(attrs, "fillcolor=\"#f1faee\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg tag so the document is anchored
// at the origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
