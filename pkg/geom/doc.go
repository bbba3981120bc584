// Package geom provides the primitive geometry types for the layout engine.
//
// All geometry is float64 and axis-aligned. A [Rect] is an absolute rectangle
// with its origin at the top-left corner; the Y axis grows downward, matching
// common vector output coordinate systems.
//
// The package also implements anchor resolution: every rectangle exposes nine
// named reference points (the four corners, the four edge midpoints, and the
// center) via [Rect.Anchor] and [Anchors]. Anchor resolution is a pure O(1)
// computation with no caching; callers re-derive anchors whenever the
// underlying rectangle changes.
package geom
