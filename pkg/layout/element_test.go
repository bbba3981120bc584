package layout

import (
	"testing"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// fixedSizer is a minimal intrinsic-size provider for tests.
type fixedSizer struct {
	w, h float64
}

func (s fixedSizer) IntrinsicSize() geom.Size {
	return geom.Size{Width: s.w, Height: s.h}
}

// leaf builds an auto-sized leaf with the given intrinsic size.
func leaf(id string, w, h float64) *Element {
	return NewLeaf(LeafConfig{
		ElementConfig: ElementConfig{ID: id},
		Content:       fixedSizer{w: w, h: h},
	})
}

func TestElementIDs(t *testing.T) {
	named := NewLeaf(LeafConfig{ElementConfig: ElementConfig{ID: "note"}})
	if named.ID() != "note" {
		t.Errorf("ID = %q, want note", named.ID())
	}

	anon := NewLeaf(LeafConfig{})
	if anon.ID() == "" {
		t.Error("unnamed element should get a generated ID")
	}
	other := NewLeaf(LeafConfig{})
	if anon.ID() == other.ID() {
		t.Error("generated IDs should be unique")
	}
}

func TestAddOwnership(t *testing.T) {
	parent := NewStack(StackConfig{})
	child := leaf("c", 10, 10)

	if err := parent.Add(child); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if child.Parent() != parent {
		t.Error("child should know its parent")
	}

	// A child has exactly one owner.
	other := NewStack(StackConfig{})
	if err := other.Add(child); err == nil {
		t.Error("adding an owned child should fail")
	}

	// No cycles.
	if err := child.Add(parent); err == nil {
		t.Error("adding an ancestor as child should fail")
	}
	if err := parent.Add(parent); err == nil {
		t.Error("adding an element to itself should fail")
	}
}

func TestAttachPropagates(t *testing.T) {
	a := NewArtboard(100, 100, WithID("board"))

	parent := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "stack"}})
	child := leaf("c", 10, 10)
	if err := parent.Add(child); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	// Attaching the subtree registers every descendant.
	if err := a.Add(parent); err != nil {
		t.Fatalf("artboard Add error: %v", err)
	}
	if _, ok := a.Element("stack"); !ok {
		t.Error("parent should be registered after attach")
	}
	if _, ok := a.Element("c"); !ok {
		t.Error("grandchild should be registered after attach")
	}
}

func TestDetachedReads(t *testing.T) {
	e := leaf("loose", 10, 10)

	_, err := e.AbsolutePosition()
	if !errors.Is(err, errors.ErrCodeDetachedElement) {
		t.Errorf("detached read should fail with DETACHED_ELEMENT, got %v", err)
	}
	if _, err := e.ContentBox(); !errors.Is(err, errors.ErrCodeDetachedElement) {
		t.Errorf("detached ContentBox should fail, got %v", err)
	}
	if _, err := e.Anchor(geom.AnchorCenter); !errors.Is(err, errors.ErrCodeDetachedElement) {
		t.Errorf("detached Anchor should fail, got %v", err)
	}
}

func TestPositionValidation(t *testing.T) {
	a := NewArtboard(100, 100)
	e := leaf("e", 10, 10)
	if err := a.Add(e); err != nil {
		t.Fatal(err)
	}

	// Unknown anchors are rejected.
	err := e.Position(PositionSpec{Self: "middle", Target: At(geom.Point{})})
	if !errors.Is(err, errors.ErrCodeUnknownOption) {
		t.Errorf("bad self anchor should fail with UNKNOWN_OPTION, got %v", err)
	}

	// Unknown box references are rejected.
	err = e.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: At(geom.Point{}),
		Ref:    BoxRef("margin"),
	})
	if !errors.Is(err, errors.ErrCodeUnknownOption) {
		t.Errorf("bad box ref should fail with UNKNOWN_OPTION, got %v", err)
	}

	// Detached targets are rejected at the Position call.
	loose := leaf("loose", 5, 5)
	err = e.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: AnchorOf(loose, geom.AnchorTopLeft),
	})
	if !errors.Is(err, errors.ErrCodeUnresolvedTarget) {
		t.Errorf("detached target should fail with UNRESOLVED_TARGET, got %v", err)
	}

	// Targets on a different artboard are rejected.
	b := NewArtboard(50, 50)
	foreign := leaf("foreign", 5, 5)
	if err := b.Add(foreign); err != nil {
		t.Fatal(err)
	}
	err = e.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: AnchorOf(foreign, geom.AnchorTopLeft),
	})
	if !errors.Is(err, errors.ErrCodeUnresolvedTarget) {
		t.Errorf("cross-artboard target should fail with UNRESOLVED_TARGET, got %v", err)
	}

	// Self-positioning is a degenerate cycle.
	err = e.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: AnchorOf(e, geom.AnchorCenter),
	})
	if !errors.Is(err, errors.ErrCodeCyclicPosition) {
		t.Errorf("self target should fail with CYCLIC_POSITION, got %v", err)
	}
}

func TestContentBoxInsetLaw(t *testing.T) {
	padding := boxmodel.Uniform(10)
	border := boxmodel.Uniform(2)
	box, err := boxmodel.New(padding, border, geom.Insets{})
	if err != nil {
		t.Fatal(err)
	}

	a := NewArtboard(400, 400)
	e := NewLeaf(LeafConfig{
		ElementConfig: ElementConfig{ID: "boxed", Width: Fixed(100), Height: Fixed(60), Box: box},
	})
	if err := a.Add(e); err != nil {
		t.Fatal(err)
	}

	borderBox, err := e.BorderBox()
	if err != nil {
		t.Fatal(err)
	}
	contentBox, err := e.ContentBox()
	if err != nil {
		t.Fatal(err)
	}

	want := borderBox.Inset(padding.Add(border))
	if contentBox != want {
		t.Errorf("contentBox = %v, want borderBox inset by border+padding %v", contentBox, want)
	}

	// With zero padding and border the two boxes coincide.
	plain := NewLeaf(LeafConfig{
		ElementConfig: ElementConfig{ID: "plain", Width: Fixed(50), Height: Fixed(50)},
	})
	if err := a.Add(plain); err != nil {
		t.Fatal(err)
	}
	pb, _ := plain.BorderBox()
	pc, _ := plain.ContentBox()
	if pb != pc {
		t.Errorf("zero box model: borderBox %v != contentBox %v", pb, pc)
	}
}

func TestWalkOrder(t *testing.T) {
	root := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "root"}})
	mid := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "mid"}})
	if err := mid.Add(leaf("deep", 1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := root.Add(mid, leaf("shallow", 1, 1)); err != nil {
		t.Fatal(err)
	}

	var ids []string
	root.Walk(func(e *Element) bool {
		ids = append(ids, e.ID())
		return true
	})

	want := []string{"root", "mid", "deep", "shallow"}
	if len(ids) != len(want) {
		t.Fatalf("visited %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("visited %v, want %v", ids, want)
		}
	}
}
