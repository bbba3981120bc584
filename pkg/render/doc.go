// Package render provides output renderers for resolved artboards.
//
// # Overview
//
// This package groups the renderers that turn a resolved layout tree into
// visual output:
//
//   - SVG drawing (in [svg] subpackage)
//   - Position dependency graphs (in [depgraph] subpackage)
//
// # SVG Drawing
//
// The [svg] subpackage walks the element tree and draws shape and text
// content at its resolved boxes:
//
//	out, err := svg.Render(artboard, svg.Options{Background: "#ffffff"})
//
// Debug mode outlines every border and content box, which makes margin and
// padding mistakes visible at a glance.
//
// # Dependency Graphs
//
// The [depgraph] subpackage exports the placement dependency graph in
// Graphviz DOT syntax. Flow edges connect children to their parents, and
// dashed target edges connect positioned elements to their anchor targets.
//
//	dot, err := depgraph.ToDOT(artboard, depgraph.Options{})
//	img, err := depgraph.RenderSVG(ctx, dot)
//
// [svg]: github.com/grzegorzj/easel/pkg/render/svg
// [depgraph]: github.com/grzegorzj/easel/pkg/render/depgraph
package render
