package layout

import "github.com/grzegorzj/easel/pkg/geom"

// director is the per-container-kind arrangement strategy. Implementations
// work purely in the container's local content-box coordinate space; they
// never observe absolute positions.
type director interface {
	// measureContent returns the content-box size the container needs to
	// hold its in-flow children. Called only for auto dimensions, after all
	// children have been measured.
	measureContent(e *Element) (geom.Size, error)

	// arrange assigns each in-flow child's local offset (border-box top-left
	// relative to the content-box origin), given the final content size.
	arrange(e *Element, content geom.Size) error
}

// mainAxis splits a size into (main, cross) spans for the given direction.
func mainAxis(s geom.Size, d Direction) (main, cross float64) {
	if d == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// fromAxes rebuilds a point from (main, cross) coordinates.
func fromAxes(main, cross float64, d Direction) geom.Point {
	if d == Horizontal {
		return geom.Point{X: main, Y: cross}
	}
	return geom.Point{X: cross, Y: main}
}

// marginAxes splits an element's margin into main-axis (start, end) and
// cross-axis (start, end) components.
func marginAxes(e *Element, d Direction) (mainStart, mainEnd, crossStart, crossEnd float64) {
	m := e.box.Margin
	if d == Horizontal {
		return m.Left, m.Right, m.Top, m.Bottom
	}
	return m.Top, m.Bottom, m.Left, m.Right
}

// inFlowChildren filters the children the director is responsible for.
func inFlowChildren(e *Element) []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if c.inFlow() {
			out = append(out, c)
		}
	}
	return out
}
