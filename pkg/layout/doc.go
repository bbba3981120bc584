// Package layout implements the box-model layout and positioning engine that
// every easel component is built on.
//
// # Overview
//
// Callers construct a tree of [Element] nodes under an [Artboard] root. Each
// element carries a width/height [Dimension] pair (explicit, percent, or
// auto), a resolved box model (pkg/boxmodel), optional alignment settings,
// and optionally a [PositionSpec] — the declarative instruction "place my
// anchor at that anchor plus an offset".
//
// Every resolved element exposes two boxes: the border box (its full extent)
// and the content box (border box inset by border + padding, where children
// live). Anchors (pkg/geom) are derived from either box.
//
// # Resolution
//
// Resolution runs in strictly separated phases:
//
//  1. Measure (bottom-up): every element's border-box size is computed in
//     local space. Auto dimensions are derived from already-measured children
//     by the container's layout director; explicit dimensions pass through.
//  2. Placement (top-down, dependency-ordered): once a node has an absolute
//     top-left — the root at the origin, or a position spec evaluated against
//     an already-placed target — descendant boxes follow by translation.
//
// Placement order is a pure function of an explicit dependency graph (tree
// edges plus position-spec target edges), not of call order. Cycles are
// detected by a static graph check before any placement happens and reported
// as CYCLIC_POSITION errors; an unresolvable or detached target is an
// UNRESOLVED_TARGET error. Both are raised synchronously at the call that
// triggered resolution.
//
// Resolution is demand-driven and memoized: reading an absolute box resolves
// the artboard once, and repeated reads return the cached result until the
// tree is mutated or re-positioned.
//
// # Container kinds
//
// Four layout directors arrange children inside a container's content box:
// linear stacks (horizontal/vertical with spacing and alignment), grids
// (fixed rows x columns of equal cells with a gutter), column layouts (equal
// fixed-width columns, each itself a vertical stack), and freeform containers
// (children place themselves via position specs; the container's auto size is
// the tight union of their local boxes).
//
// The engine is single-threaded and synchronous: no I/O, no background
// scheduling. An Artboard and its tree must be confined to one goroutine.
package layout
