// Package pkg provides the core libraries for Easel vector diagramming.
//
// # Overview
//
// Easel turns declarative scene descriptions into positioned vector
// diagrams. Elements carry a CSS-like box model, expose nine anchors, and
// are arranged by layout directors (stack, grid, columns, freeform). The
// pkg directory is organized into five main areas:
//
//  1. [layout] - Domain logic (elements, directors, position resolution)
//  2. [scene] - Declarative TOML scene files and layout export
//  3. [render] - Output renderers (SVG drawing, dependency graphs)
//  4. [pipeline] - Orchestration (parse → resolve → render) with caching
//  5. [cache] - Content-addressed artifact cache
//
// # Architecture
//
// The typical data flow through Easel:
//
//	Scene file (TOML)
//	         ↓
//	    [scene] package (parse into an artboard tree)
//	         ↓
//	    [layout] package (measure bottom-up, place top-down)
//	         ↓
//	    [render/svg] / [scene] export / [render/depgraph]
//	         ↓
//	    SVG/JSON/DOT output
//
// # Quick Start
//
// Build an artboard programmatically and render it:
//
//	import (
//	    "github.com/grzegorzj/easel/pkg/layout"
//	    "github.com/grzegorzj/easel/pkg/render/svg"
//	    "github.com/grzegorzj/easel/pkg/shapes"
//	)
//
//	// 1. Create an artboard and a builder
//	a := layout.NewArtboard(840, 620, layout.WithID("poster"))
//	b := a.Builder()
//
//	// 2. Add elements
//	stack, _ := b.Stack(layout.StackConfig{Direction: layout.DirectionVertical})
//	_, _ = b.In(stack).Leaf(layout.LeafConfig{
//	    Content: shapes.Circle{Radius: 60},
//	})
//
//	// 3. Resolve and render
//	out, _ := svg.Render(a, svg.Options{})
//
// # Main Packages
//
// ## Domain Logic
//
// [layout] - Elements, directors, dimensions, and the two-phase resolver.
// Positioned elements reference anchors of other elements and are placed by
// walking the dependency graph in topological order.
//
// [boxmodel] - Margin, border, padding, and the derived box rectangles.
//
// [geom] - Points, sizes, rectangles, and the nine-anchor vocabulary.
//
// ## Content
//
// [shapes] - Vector shapes (circle, rectangle, triangle, polygon) that size
// their own boxes and emit SVG path data.
//
// [textmetrics] - Approximate text measurement and wrapping, so text blocks
// participate in layout without a font renderer.
//
// ## Scenes and Rendering
//
// [scene] - TOML scene schema, strict option validation, and the exported
// layout surface (resolved boxes and anchors as JSON).
//
// [render/svg] - Draws resolved artboards as SVG documents.
//
// [render/depgraph] - Emits the position dependency graph as Graphviz DOT
// and renders it to SVG.
//
// ## Infrastructure
//
// [pipeline] - Complete pipeline (parse → resolve → render) used by the CLI.
// Artifacts are cached keyed by scene content hash.
//
// [cache] - File-backed artifact cache with TTL expiry.
//
// [errors] - Coded errors shared across packages.
//
// [observability] - Global hook registry for layout, render, and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [layout]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/layout
// [boxmodel]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/boxmodel
// [geom]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/geom
// [shapes]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/shapes
// [textmetrics]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/textmetrics
// [scene]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/scene
// [render]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/render/svg
// [render/depgraph]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/render/depgraph
// [pipeline]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/cache
// [errors]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/errors
// [observability]: https://pkg.go.dev/github.com/grzegorzj/easel/pkg/observability
package pkg
