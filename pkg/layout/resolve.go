package layout

import (
	"sort"
	"strings"
	"time"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/observability"
)

// Resolve computes the absolute box of every attached element. It is
// idempotent and memoized: a clean artboard returns immediately, and the
// next mutation (Add, Position, alignment changes) forces the following read
// to resolve again.
//
// The pass runs in three strictly ordered stages:
//
//  1. measure — bottom-up border-box sizes in local space
//  2. arrange — each director assigns local offsets inside its content box
//  3. place — dependency-ordered absolute placement from the root
//
// Stage 3's order comes from an explicit dependency graph; a cycle in it
// fails the whole pass with CYCLIC_POSITION before anything is placed.
func (a *Artboard) Resolve() error {
	if a.clean {
		return nil
	}

	count := len(a.elements)
	observability.Layout().OnResolveStart(a.id, count)
	start := time.Now()

	err := a.resolve()

	observability.Layout().OnResolveComplete(a.id, count, time.Since(start), err)
	if err == nil {
		a.clean = true
	}
	return err
}

func (a *Artboard) resolve() error {
	a.root.Walk(func(e *Element) bool {
		e.placed = false
		e.localPlaced = false
		return true
	})

	count := len(a.elements)
	observability.Layout().OnMeasureStart(a.id, count)
	mstart := time.Now()
	merr := measure(a.root, geom.Size{}, a.strict)
	observability.Layout().OnMeasureComplete(a.id, count, time.Since(mstart), merr)
	if merr != nil {
		return merr
	}
	if err := arrangeTree(a.root); err != nil {
		return err
	}
	order, err := a.placementOrder()
	if err != nil {
		return err
	}
	for _, e := range order {
		a.place(e)
	}
	return nil
}

// measure computes e's border-box size bottom-up. avail carries the parent's
// content size for percent resolution; a zero span means the parent's own
// size is still unknown on that axis.
func measure(e *Element, avail geom.Size, strict bool) error {
	in := e.box.ContentInsets()

	w, wKnown := resolveDim(e.width, avail.Width)
	h, hKnown := resolveDim(e.height, avail.Height)

	var childAvail geom.Size
	if wKnown {
		childAvail.Width = max(0, w-in.Horizontal())
	}
	if hKnown {
		childAvail.Height = max(0, h-in.Vertical())
	}

	for _, c := range e.children {
		if err := measure(c, childAvail, strict); err != nil {
			return err
		}
	}

	if !wKnown || !hKnown {
		content, err := contentSize(e, strict)
		if err != nil {
			return err
		}
		if !wKnown {
			w = content.Width + in.Horizontal()
		}
		if !hKnown {
			h = content.Height + in.Vertical()
		}
	}

	e.size = geom.Size{Width: w, Height: h}
	return nil
}

// resolveDim resolves explicit and percent dimensions; auto stays unknown
// until content is measured.
func resolveDim(d Dimension, available float64) (v float64, known bool) {
	if d.IsAuto() {
		return 0, false
	}
	return d.Resolve(available, 0), true
}

// contentSize derives an auto-sized element's content box from what it
// holds. The default policy for an element with nothing to measure is zero
// size; strict mode turns that into UNMEASURABLE_AUTO_SIZE.
func contentSize(e *Element, strict bool) (geom.Size, error) {
	if e.director != nil {
		if len(e.children) == 0 {
			if strict {
				return geom.Size{}, errors.New(errors.ErrCodeUnmeasurableAutoSize,
					"auto-sized container %q has no children to measure", e.id)
			}
			return geom.Size{}, nil
		}
		return e.director.measureContent(e)
	}
	if e.sizer != nil {
		return e.sizer.IntrinsicSize(), nil
	}
	if strict {
		return geom.Size{}, errors.New(errors.ErrCodeUnmeasurableAutoSize,
			"auto-sized leaf %q has no intrinsic size", e.id)
	}
	return geom.Size{}, nil
}

// arrangeTree walks top-down letting every director assign its children's
// local offsets now that all sizes are known.
func arrangeTree(e *Element) error {
	if e.director != nil && len(e.children) > 0 {
		in := e.box.ContentInsets()
		content := geom.Size{
			Width:  max(0, e.size.Width-in.Horizontal()),
			Height: max(0, e.size.Height-in.Vertical()),
		}
		if err := e.director.arrange(e, content); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := arrangeTree(c); err != nil {
			return err
		}
	}
	return nil
}

// dependency returns the single element that must be placed before e, or nil
// when e can be placed unconditionally (the root, or a literal-point spec).
func (e *Element) dependency() *Element {
	if e.parent == nil {
		return nil
	}
	if e.inFlow() {
		return e.parent
	}
	return e.pos.Target.Element
}

// placementOrder topologically sorts all elements over the dependency
// graph: flow edges (parent before child) and position-spec edges (target
// before positioned element). A cycle is a CYCLIC_POSITION error naming the
// elements involved.
func (a *Artboard) placementOrder() ([]*Element, error) {
	var nodes []*Element
	a.root.Walk(func(e *Element) bool {
		nodes = append(nodes, e)
		return true
	})

	dependents := make(map[*Element][]*Element, len(nodes))
	indegree := make(map[*Element]int, len(nodes))
	for _, e := range nodes {
		indegree[e] = 0
	}
	for _, e := range nodes {
		d := e.dependency()
		if d == nil {
			continue
		}
		if d.artboard != a {
			return nil, errors.New(errors.ErrCodeUnresolvedTarget,
				"position target %q is not attached to this artboard", d.id)
		}
		dependents[d] = append(dependents[d], e)
		indegree[e]++
	}

	queue := make([]*Element, 0, len(nodes))
	for _, e := range nodes {
		if indegree[e] == 0 {
			queue = append(queue, e)
		}
	}

	order := make([]*Element, 0, len(nodes))
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		order = append(order, e)
		for _, dep := range dependents[e] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(nodes) {
		var stuck []string
		for _, e := range nodes {
			if indegree[e] > 0 {
				stuck = append(stuck, e.id)
			}
		}
		sort.Strings(stuck)
		return nil, errors.New(errors.ErrCodeCyclicPosition,
			"position cycle involving: %s", strings.Join(stuck, ", "))
	}
	return order, nil
}

// place computes e's absolute border box. Its dependency is already placed.
func (a *Artboard) place(e *Element) {
	switch {
	case e.parent == nil:
		e.borderBox = geom.RectOf(geom.Point{}, e.size)
	case e.inFlow():
		parentContent := e.parent.borderBox.Inset(e.parent.box.ContentInsets())
		e.borderBox = geom.RectOf(parentContent.Origin().Add(e.localOffset), e.size)
	default:
		spec := *e.pos
		var at geom.Point
		if t := spec.Target.Element; t != nil {
			tr := spec.targetRect(t.borderBox, t.box.ContentInsets())
			at = tr.Anchor(spec.Target.Anchor)
		} else {
			at = spec.Target.Point
		}
		at = at.Add(spec.Offset)
		e.borderBox = geom.RectOf(spec.topLeftFor(e.size, e.box.ContentInsets(), at), e.size)
	}
	e.placed = true
}

// DependencyEdge describes one edge of the placement dependency graph, for
// inspection and diagram export.
type DependencyEdge struct {
	From string // the dependent element
	To   string // the element it waits for
	Kind string // "flow" for parent placement, "target" for a position spec
}

// DependencyEdges resolves the artboard and returns the placement dependency
// graph, flow edges and position-spec edges alike.
func (a *Artboard) DependencyEdges() ([]DependencyEdge, error) {
	if err := a.Resolve(); err != nil {
		return nil, err
	}
	var edges []DependencyEdge
	a.root.Walk(func(e *Element) bool {
		d := e.dependency()
		if d == nil {
			return true
		}
		kind := "flow"
		if !e.inFlow() {
			kind = "target"
		}
		edges = append(edges, DependencyEdge{From: e.id, To: d.id, Kind: kind})
		// Locally placed specs resolve inside the parent's pass, but the
		// dependency on the sibling target is still real; export it.
		if e.inFlow() && e.pos != nil {
			if t := e.pos.Target.Element; t != nil && t != d {
				edges = append(edges, DependencyEdge{From: e.id, To: t.id, Kind: "target"})
			}
		}
		return true
	})
	return edges, nil
}
