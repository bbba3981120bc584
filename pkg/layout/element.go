package layout

import (
	"github.com/google/uuid"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// Kind identifies how a container arranges its children.
type Kind string

const (
	KindLeaf     Kind = "leaf"
	KindStack    Kind = "stack"
	KindGrid     Kind = "grid"
	KindColumns  Kind = "columns"
	KindFreeform Kind = "freeform"
)

// Sizer reports an intrinsic content size. Shape and text providers
// implement it so the engine can treat them as ordinary sized leaves.
type Sizer interface {
	IntrinsicSize() geom.Size
}

// Element is one node of the layout tree.
//
// Elements own their children strictly: a child has exactly one parent and
// the tree has no cycles. An element is created detached, becomes attached
// when added to a parent that descends from an artboard, and obtains its
// absolute box during resolution. The resolved box is cached; mutating the
// tree or re-positioning invalidates it.
//
// Elements are not safe for concurrent use.
type Element struct {
	id       string
	kind     Kind
	width    Dimension
	height   Dimension
	box      boxmodel.Model
	pos      *PositionSpec
	sizer    Sizer
	director director

	parent   *Element
	children []*Element
	artboard *Artboard

	// Resolution state, valid while the owning artboard is clean.
	size        geom.Size  // border-box size from the measure phase
	localOffset geom.Point // border-box top-left within the parent's content box
	localPlaced bool       // offset fixed during freeform auto measurement
	borderBox   geom.Rect  // absolute border box from the placement phase
	placed      bool
}

// ElementConfig carries the settings shared by every element kind.
// The zero value is valid: auto dimensions, zero box model, generated ID.
type ElementConfig struct {
	ID     string
	Width  Dimension
	Height Dimension
	Box    boxmodel.Model
}

func newElement(kind Kind, cfg ElementConfig, d director) *Element {
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Element{
		id:       id,
		kind:     kind,
		width:    cfg.Width,
		height:   cfg.Height,
		box:      cfg.Box,
		director: d,
	}
}

// ID returns the element's stable identifier.
func (e *Element) ID() string { return e.id }

// Kind returns the element's container kind.
func (e *Element) Kind() Kind { return e.kind }

// Parent returns the owning element, or nil for detached nodes and roots.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children. The returned slice is shared;
// callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// BoxModel returns the element's resolved box model.
func (e *Element) BoxModel() boxmodel.Model { return e.box }

// Content returns the leaf's content provider, or nil. Renderers use it to
// recover the shape or text behind a resolved box.
func (e *Element) Content() Sizer { return e.sizer }

// Dimensions returns the element's width and height dimensions.
func (e *Element) Dimensions() (width, height Dimension) {
	return e.width, e.height
}

// Add appends children to the element, taking ownership. It fails if a child
// is already owned, is the element itself, or is one of its ancestors (which
// would create a cycle). Adding invalidates any resolved state.
func (e *Element) Add(children ...*Element) error {
	for _, c := range children {
		if c == nil {
			return errors.New(errors.ErrCodeInternal, "nil child added to %q", e.id)
		}
		if err := c.width.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDimension, err, "element %q width", c.id)
		}
		if err := c.height.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDimension, err, "element %q height", c.id)
		}
		if c.parent != nil {
			return errors.New(errors.ErrCodeInternal, "element %q already has a parent", c.id)
		}
		for a := e; a != nil; a = a.parent {
			if a == c {
				return errors.New(errors.ErrCodeInternal, "adding %q to %q would create a cycle", c.id, e.id)
			}
		}
	}
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
		c.attach(e.artboard)
	}
	e.invalidate()
	return nil
}

// attach propagates artboard membership down a subtree.
func (e *Element) attach(a *Artboard) {
	if a == nil {
		return
	}
	e.artboard = a
	a.register(e)
	for _, c := range e.children {
		c.attach(a)
	}
}

// Position records the element's position spec, replacing any previous one,
// and immediately triggers resolution when the element is attached. Errors —
// an invalid spec, a detached target, a positioning cycle — surface
// synchronously here.
func (e *Element) Position(spec PositionSpec) error {
	if err := spec.validate(); err != nil {
		return err
	}
	if t := spec.Target.Element; t != nil {
		if t == e {
			return errors.New(errors.ErrCodeCyclicPosition, "element %q positioned relative to itself", e.id)
		}
		if t.artboard == nil {
			return errors.New(errors.ErrCodeUnresolvedTarget,
				"position target %q is not attached to any artboard", t.id)
		}
		if e.artboard != nil && t.artboard != e.artboard {
			return errors.New(errors.ErrCodeUnresolvedTarget,
				"position target %q belongs to a different artboard", t.id)
		}
	}
	e.pos = &spec
	e.invalidate()
	if e.artboard != nil {
		return e.artboard.Resolve()
	}
	// Detached elements keep the spec; it is evaluated once they are attached.
	return nil
}

// ClearPosition removes the element's position spec, returning it to the
// parent director's flow.
func (e *Element) ClearPosition() {
	if e.pos != nil {
		e.pos = nil
		e.invalidate()
	}
}

// PositionSpec returns the element's position spec, or nil when the parent's
// director places it.
func (e *Element) PositionSpec() *PositionSpec {
	return e.pos
}

// invalidate marks the owning artboard's resolution state stale.
func (e *Element) invalidate() {
	if e.artboard != nil {
		e.artboard.clean = false
	}
}

// ensure resolves the owning artboard on demand.
func (e *Element) ensure() error {
	if e.artboard == nil {
		return errors.New(errors.ErrCodeDetachedElement,
			"element %q is not attached to an artboard", e.id)
	}
	return e.artboard.Resolve()
}

// AbsolutePosition returns the element's absolute border box, resolving the
// artboard on demand. The result is memoized: repeated calls without
// intervening tree mutation return the identical box.
func (e *Element) AbsolutePosition() (geom.Rect, error) {
	if err := e.ensure(); err != nil {
		return geom.Rect{}, err
	}
	return e.borderBox, nil
}

// BorderBox is an alias for AbsolutePosition.
func (e *Element) BorderBox() (geom.Rect, error) {
	return e.AbsolutePosition()
}

// ContentBox returns the absolute content box: the border box inset by
// border + padding.
func (e *Element) ContentBox() (geom.Rect, error) {
	border, err := e.AbsolutePosition()
	if err != nil {
		return geom.Rect{}, err
	}
	return border.Inset(e.box.ContentInsets()), nil
}

// Anchor returns the absolute position of a named anchor on the element's
// border box.
func (e *Element) Anchor(a geom.Anchor) (geom.Point, error) {
	border, err := e.AbsolutePosition()
	if err != nil {
		return geom.Point{}, err
	}
	return border.Anchor(a), nil
}

// ContentAnchor returns the absolute position of a named anchor on the
// element's content box.
func (e *Element) ContentAnchor(a geom.Anchor) (geom.Point, error) {
	content, err := e.ContentBox()
	if err != nil {
		return geom.Point{}, err
	}
	return content.Anchor(a), nil
}

// Size returns the measured border-box size, resolving on demand.
func (e *Element) Size() (geom.Size, error) {
	if err := e.ensure(); err != nil {
		return geom.Size{}, err
	}
	return e.size, nil
}

// Walk visits the element and its descendants depth-first, parents before
// children. Traversal stops when fn returns false.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// inFlow reports whether the parent's director places this element. Elements
// with a position spec are out of the director's flow; inside freeform
// containers the spec is the flow.
func (e *Element) inFlow() bool {
	if e.pos == nil {
		return true
	}
	return e.parent != nil && e.parent.kind == KindFreeform && e.localCandidate()
}

// localCandidate reports whether the element's spec can be evaluated in its
// parent's local coordinate space: the target chain stays among siblings (or
// ends at the parent itself) and never escapes to artboard coordinates. A
// cyclic sibling chain counts as local; the local placement pass is where
// the cycle gets diagnosed.
func (e *Element) localCandidate() bool {
	seen := make(map[*Element]bool)
	for cur := e; ; {
		if cur.pos == nil {
			return true
		}
		if cur.pos.ref() == RefArtboard {
			return false
		}
		t := cur.pos.Target.Element
		if t == nil {
			// Literal points are artboard coordinates.
			return false
		}
		if t == e.parent {
			return true
		}
		if t.parent != e.parent {
			return false
		}
		if seen[cur] {
			return true
		}
		seen[cur] = true
		cur = t
	}
}
