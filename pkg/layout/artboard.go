package layout

import (
	"github.com/google/uuid"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/geom"
)

// Artboard is the explicit root of one layout tree. It replaces the implicit
// "current artboard" of ad hoc diagramming APIs: elements belong to exactly
// the artboard they were attached to, and nothing is process-global.
//
// An artboard's border box sits at the coordinate origin; all resolved boxes
// are expressed in its coordinate space.
type Artboard struct {
	id     string
	root   *Element
	strict bool

	// clean marks the cached resolution state valid. Any tree mutation
	// clears it; the next read resolves again.
	clean bool

	elements map[string]*Element
}

// ArtboardOption customizes artboard construction.
type ArtboardOption func(*artboardConfig)

type artboardConfig struct {
	id     string
	box    boxmodel.Model
	strict bool
}

// WithID sets the artboard's identifier (a UUID by default).
func WithID(id string) ArtboardOption {
	return func(c *artboardConfig) { c.id = id }
}

// WithBoxModel sets the artboard's own box model; its padding and border
// inset the content box that top-level elements are placed in.
func WithBoxModel(m boxmodel.Model) ArtboardOption {
	return func(c *artboardConfig) { c.box = m }
}

// WithStrictAutoSize makes childless auto-sized containers a hard
// UNMEASURABLE_AUTO_SIZE error instead of measuring zero.
func WithStrictAutoSize() ArtboardOption {
	return func(c *artboardConfig) { c.strict = true }
}

// NewArtboard creates an artboard of the given size. The root behaves as a
// freeform container: top-level elements place themselves via position
// specs, or sit at the content-box origin.
func NewArtboard(width, height float64, opts ...ArtboardOption) *Artboard {
	cfg := artboardConfig{id: uuid.NewString()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Artboard{
		id:       cfg.id,
		strict:   cfg.strict,
		elements: make(map[string]*Element),
	}
	a.root = newElement(KindFreeform, ElementConfig{
		ID:     cfg.id,
		Width:  Fixed(width),
		Height: Fixed(height),
		Box:    cfg.box,
	}, freeformDirector{})
	a.root.artboard = a
	a.register(a.root)
	return a
}

// ID returns the artboard's identifier.
func (a *Artboard) ID() string { return a.id }

// Root returns the artboard's root element.
func (a *Artboard) Root() *Element { return a.root }

// Size returns the artboard's fixed border-box size.
func (a *Artboard) Size() geom.Size {
	return geom.Size{Width: a.root.width.Amount, Height: a.root.height.Amount}
}

// Add attaches top-level elements to the artboard root.
func (a *Artboard) Add(children ...*Element) error {
	return a.root.Add(children...)
}

// Element looks up an attached element by ID.
func (a *Artboard) Element(id string) (*Element, bool) {
	e, ok := a.elements[id]
	return e, ok
}

// Walk visits every attached element depth-first from the root.
func (a *Artboard) Walk(fn func(*Element) bool) {
	a.root.Walk(fn)
}

// Builder returns a builder that attaches new elements to the artboard root,
// preserving "auto-attach to the active root" construction ergonomics
// without global state.
func (a *Artboard) Builder() *Builder {
	return &Builder{parent: a.root}
}

func (a *Artboard) register(e *Element) {
	a.elements[e.id] = e
}

// =============================================================================
// Builder
// =============================================================================

// Builder creates elements pre-attached to a fixed container, so trees read
// top-down at the construction site. All methods surface Add errors
// immediately.
type Builder struct {
	parent *Element
}

// In returns a builder that attaches into the given container instead.
func (b *Builder) In(container *Element) *Builder {
	return &Builder{parent: container}
}

// Leaf creates and attaches a leaf element.
func (b *Builder) Leaf(cfg LeafConfig) (*Element, error) {
	e := NewLeaf(cfg)
	if err := b.parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Stack creates and attaches a stack container.
func (b *Builder) Stack(cfg StackConfig) (*Element, error) {
	e := NewStack(cfg)
	if err := b.parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Grid creates and attaches a grid container.
func (b *Builder) Grid(cfg GridConfig) (*Element, error) {
	e, err := NewGrid(cfg)
	if err != nil {
		return nil, err
	}
	if err := b.parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Columns creates and attaches a columns container.
func (b *Builder) Columns(cfg ColumnsConfig) (*Element, error) {
	e, err := NewColumns(cfg)
	if err != nil {
		return nil, err
	}
	if err := b.parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Freeform creates and attaches a freeform container.
func (b *Builder) Freeform(cfg FreeformConfig) (*Element, error) {
	e := NewFreeform(cfg)
	if err := b.parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}
